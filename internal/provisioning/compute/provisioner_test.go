package compute

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattgen/gridup/internal/config"
	"github.com/mattgen/gridup/internal/platform/gce"
	"github.com/mattgen/gridup/internal/provisioning"
	gridtesting "github.com/mattgen/gridup/internal/testing"
)

func newTestContext(spec *config.ClusterSpec, cloud gce.CloudManager) *provisioning.Context {
	return provisioning.NewContext(context.Background(), spec, cloud)
}

func TestAddMasterHost_AttachesOwnDisksAndMetadata(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().WithResourceSnapshot("bundle-A").Build()
	mock := &gce.MockClient{}
	ctx := newTestContext(spec, mock)

	p := NewProvisioner(false)
	err := p.AddMasterHost(ctx, spec.Masters()[0], false)
	require.NoError(t, err)

	require.Len(t, mock.CreatedInstances, 1)
	inst := mock.CreatedInstances[0]
	assert.Equal(t, "grid-master-0", inst.Name)
	assert.Equal(t, "n2-standard-4", inst.MachineType)

	require.Len(t, inst.Disks, 3)
	assert.Equal(t, gce.AttachedDiskSpec{DiskName: "grid-master-0", Boot: true}, inst.Disks[0])
	assert.Equal(t, gce.AttachedDiskSpec{DiskName: "grid-master-0-data"}, inst.Disks[1])
	assert.Equal(t, gce.AttachedDiskSpec{DiskName: "grid-master-0-resource", ReadOnly: true}, inst.Disks[2])

	assert.Equal(t, "grid-master-0", inst.Metadata[MetadataClusterMaster])
	assert.Contains(t, inst.Metadata[MetadataStartupScript], spec.Bootstrap.AgentURL)
	assert.Equal(t, config.DefaultScopes, inst.Scopes)
}

// The execution host's resource disk is named from the master, never
// from the execution host's own identity.
func TestAddExecutionHost_ResourceDiskNamedFromMaster(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().WithResourceSnapshot("bundle-A").Build()
	mock := &gce.MockClient{}
	ctx := newTestContext(spec, mock)

	p := NewProvisioner(false)
	for _, identity := range spec.Executors() {
		err := p.AddExecutionHost(ctx, identity, spec.MasterNames(), false)
		require.NoError(t, err)
	}

	require.Len(t, mock.CreatedInstances, 3)
	for _, inst := range mock.CreatedInstances {
		require.Len(t, inst.Disks, 3)
		resource := inst.Disks[2]
		assert.Equal(t, "grid-master-0-resource", resource.DiskName)
		assert.True(t, resource.ReadOnly)
		assert.Equal(t, "grid-master-0", inst.Metadata[MetadataClusterMaster])
	}
}

func TestAddExecutionHost_NoMasters(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().Build()
	ctx := newTestContext(spec, &gce.MockClient{})

	err := NewProvisioner(false).AddExecutionHost(ctx, spec.Executors()[0], nil, false)
	require.Error(t, err)
}

func TestAddExecutionHost_NoResourceSnapshot_TwoDisks(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().Build()
	mock := &gce.MockClient{}
	ctx := newTestContext(spec, mock)

	err := NewProvisioner(false).AddExecutionHost(ctx, spec.Executors()[0], spec.MasterNames(), false)
	require.NoError(t, err)
	require.Len(t, mock.CreatedInstances, 1)
	assert.Len(t, mock.CreatedInstances[0].Disks, 2)
}

func TestProvision_CreateFailureAbortsRun(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().Build()
	bootErr := errors.New("quota exceeded")
	mock := &gce.MockClient{
		CreateInstanceFunc: func(_ context.Context, opts gce.InstanceCreateOpts) error {
			if opts.Name == "grid-exec-2" {
				return bootErr
			}
			return nil
		},
	}
	ctx := newTestContext(spec, mock)

	err := NewProvisioner(false).Provision(ctx)
	require.ErrorIs(t, err, bootErr)

	// Fail-fast: exec-3 is never attempted and the final listing is skipped.
	assert.Len(t, mock.CallsMatching("create-instance:"), 3)
	assert.Empty(t, mock.CallsMatching("list-instances:"))
}

// End-to-end scenario: masterCount=1, executionCount=3, snapshot
// "bundle-A", full lifecycle. Exact call counts per host and the final
// prefix-filtered listing.
func TestProvision_UpFullCallCounts(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().
		WithMasterCount(1).
		WithExecutionCount(3).
		WithResourceSnapshot("bundle-A").
		Build()
	mock := &gce.MockClient{}
	ctx := newTestContext(spec, mock)

	err := NewProvisioner(true).Provision(ctx)
	require.NoError(t, err)

	// 1 master boot + 1 master data + 1 resource + 3×(exec boot + data).
	assert.Len(t, mock.CallsMatching("create-disk:"), 9)
	assert.Len(t, mock.CallsMatching("create-instance:"), 4)

	require.Len(t, mock.CreatedInstances, 4)
	assert.Len(t, mock.CreatedInstances[0].Disks, 3)
	for _, inst := range mock.CreatedInstances[1:] {
		assert.Len(t, inst.Disks, 3)
		assert.Equal(t, "grid-master-0-resource", inst.Disks[2].DiskName)
	}

	require.Len(t, mock.CallsMatching("list-instances:"), 1)
	assert.Equal(t, "list-instances:grid", mock.CallsMatching("list-instances:")[0])

	// Masters are created before any execution host.
	assert.Equal(t, "create-instance:grid-master-0", mock.CallsMatching("create-instance:")[0])
}

func TestRenderStartupScript(t *testing.T) {
	script, err := renderStartupScript("https://example.com/gridup-node")
	require.NoError(t, err)

	assert.Contains(t, script, "#!/bin/bash")
	assert.Contains(t, script, "curl -fsSL -o \"$AGENT\" \"https://example.com/gridup-node\"")
	assert.Contains(t, script, "exec \"$AGENT\"")
}
