package gce

import (
	"context"
	"fmt"

	compute "google.golang.org/api/compute/v1"

	"github.com/mattgen/gridup/internal/config"
	"github.com/mattgen/gridup/internal/util/retry"
)

// RealClient implements CloudManager against the Compute Engine API.
// All operations are scoped to one project and zone.
type RealClient struct {
	service  *compute.Service
	project  string
	zone     string
	timeouts *config.Timeouts
}

// NewRealClient creates a client using application default credentials.
func NewRealClient(ctx context.Context, project, zone string) (*RealClient, error) {
	service, err := compute.NewService(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute service: %w", err)
	}
	return &RealClient{
		service:  service,
		project:  project,
		zone:     zone,
		timeouts: config.LoadTimeouts(),
	}, nil
}

// doWithRetry runs a provider call with exponential backoff, marking
// parameter errors as fatal so they are not retried.
func (c *RealClient) doWithRetry(ctx context.Context, call func() (*compute.Operation, error)) error {
	return retry.WithExponentialBackoff(ctx, func() error {
		op, err := call()
		if err != nil {
			if isInvalidParameter(err) {
				return retry.Fatal(err)
			}
			return err
		}
		return c.waitZoneOperation(ctx, op)
	},
		retry.WithMaxRetries(c.timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(c.timeouts.RetryInitialDelay),
	)
}

// waitZoneOperation blocks until a zonal operation finishes and surfaces
// any operation-level error.
func (c *RealClient) waitZoneOperation(ctx context.Context, op *compute.Operation) error {
	name := op.Name
	for op.Status != "DONE" {
		var err error
		op, err = c.service.ZoneOperations.Wait(c.project, c.zone, name).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to wait for operation %s: %w", name, err)
		}
	}

	if op.Error != nil && len(op.Error.Errors) > 0 {
		first := op.Error.Errors[0]
		return retry.Fatal(fmt.Errorf("operation %s failed: %s: %s", name, first.Code, first.Message))
	}
	return nil
}

// diskURL returns the zonal resource path of a disk.
func (c *RealClient) diskURL(name string) string {
	return fmt.Sprintf("projects/%s/zones/%s/disks/%s", c.project, c.zone, name)
}
