package gce

import (
	"context"
	"fmt"
)

// MockClient is an in-memory CloudManager for tests. Each method records
// its call in order and delegates to the matching override func when set,
// so tests can assert call counts, arguments and cross-resource ordering.
type MockClient struct {
	Calls []string

	CreateDiskFunc     func(ctx context.Context, opts DiskCreateOpts) error
	DeleteDiskFunc     func(ctx context.Context, name string) error
	CreateInstanceFunc func(ctx context.Context, opts InstanceCreateOpts) error
	DeleteInstanceFunc func(ctx context.Context, name string) error
	ListInstancesFunc  func(ctx context.Context, prefix string) ([]Instance, error)

	// CreatedInstances collects the full create options for inspection.
	CreatedInstances []InstanceCreateOpts
	// CreatedDisks collects the full disk create options for inspection.
	CreatedDisks []DiskCreateOpts
}

// CreateDisk records the call and delegates to CreateDiskFunc if set.
func (m *MockClient) CreateDisk(ctx context.Context, opts DiskCreateOpts) error {
	m.Calls = append(m.Calls, fmt.Sprintf("create-disk:%s", opts.Name))
	m.CreatedDisks = append(m.CreatedDisks, opts)
	if m.CreateDiskFunc != nil {
		return m.CreateDiskFunc(ctx, opts)
	}
	return nil
}

// DeleteDisk records the call and delegates to DeleteDiskFunc if set.
func (m *MockClient) DeleteDisk(ctx context.Context, name string) error {
	m.Calls = append(m.Calls, fmt.Sprintf("delete-disk:%s", name))
	if m.DeleteDiskFunc != nil {
		return m.DeleteDiskFunc(ctx, name)
	}
	return nil
}

// CreateInstance records the call and delegates to CreateInstanceFunc if set.
func (m *MockClient) CreateInstance(ctx context.Context, opts InstanceCreateOpts) error {
	m.Calls = append(m.Calls, fmt.Sprintf("create-instance:%s", opts.Name))
	m.CreatedInstances = append(m.CreatedInstances, opts)
	if m.CreateInstanceFunc != nil {
		return m.CreateInstanceFunc(ctx, opts)
	}
	return nil
}

// DeleteInstance records the call and delegates to DeleteInstanceFunc if set.
func (m *MockClient) DeleteInstance(ctx context.Context, name string) error {
	m.Calls = append(m.Calls, fmt.Sprintf("delete-instance:%s", name))
	if m.DeleteInstanceFunc != nil {
		return m.DeleteInstanceFunc(ctx, name)
	}
	return nil
}

// ListInstances records the call and delegates to ListInstancesFunc if set.
func (m *MockClient) ListInstances(ctx context.Context, prefix string) ([]Instance, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("list-instances:%s", prefix))
	if m.ListInstancesFunc != nil {
		return m.ListInstancesFunc(ctx, prefix)
	}
	return nil, nil
}

// CallsMatching returns the recorded calls with the given operation prefix.
func (m *MockClient) CallsMatching(op string) []string {
	var matched []string
	for _, c := range m.Calls {
		if len(c) >= len(op) && c[:len(op)] == op {
			matched = append(matched, c)
		}
	}
	return matched
}
