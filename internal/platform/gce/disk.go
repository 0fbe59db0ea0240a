package gce

import (
	"context"
	"fmt"

	compute "google.golang.org/api/compute/v1"
)

// CreateDisk creates a new disk from an image, a snapshot, or a size.
// Creating a disk that already exists surfaces the provider conflict
// unmodified; callers decide whether a full lifecycle is appropriate.
func (c *RealClient) CreateDisk(ctx context.Context, opts DiskCreateOpts) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.DiskCreate)
	defer cancel()

	disk := &compute.Disk{
		Name:           opts.Name,
		SourceImage:    opts.SourceImage,
		SourceSnapshot: opts.SourceSnapshot,
		SizeGb:         opts.SizeGB,
	}

	err := c.doWithRetry(ctx, func() (*compute.Operation, error) {
		return c.service.Disks.Insert(c.project, c.zone, disk).Context(ctx).Do()
	})
	if err != nil {
		return fmt.Errorf("failed to create disk %s: %w", opts.Name, err)
	}
	return nil
}

// DeleteDisk deletes a disk by name. Not-found errors are returned as-is
// so callers can treat them as non-fatal during teardown.
func (c *RealClient) DeleteDisk(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Delete)
	defer cancel()

	err := c.doWithRetry(ctx, func() (*compute.Operation, error) {
		return c.service.Disks.Delete(c.project, c.zone, name).Context(ctx).Do()
	})
	if err != nil {
		return fmt.Errorf("failed to delete disk %s: %w", name, err)
	}
	return nil
}
