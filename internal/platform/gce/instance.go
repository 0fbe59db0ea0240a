package gce

import (
	"context"
	"fmt"

	compute "google.golang.org/api/compute/v1"
)

const (
	diskModeReadWrite = "READ_WRITE"
	diskModeReadOnly  = "READ_ONLY"
)

// CreateInstance creates an instance attaching the given pre-existing
// disks in order. The device name of each attachment is set to the disk
// name so nodes can resolve devices through stable by-id symlinks.
func (c *RealClient) CreateInstance(ctx context.Context, opts InstanceCreateOpts) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.InstanceCreate)
	defer cancel()

	disks := make([]*compute.AttachedDisk, 0, len(opts.Disks))
	for _, d := range opts.Disks {
		mode := diskModeReadWrite
		if d.ReadOnly {
			mode = diskModeReadOnly
		}
		disks = append(disks, &compute.AttachedDisk{
			Source:     c.diskURL(d.DiskName),
			DeviceName: d.DiskName,
			Boot:       d.Boot,
			Mode:       mode,
		})
	}

	network := opts.Network
	if network == "" {
		network = "default"
	}

	metadata := &compute.Metadata{}
	for k, v := range opts.Metadata {
		value := v
		metadata.Items = append(metadata.Items, &compute.MetadataItems{
			Key:   k,
			Value: &value,
		})
	}

	instance := &compute.Instance{
		Name:        opts.Name,
		MachineType: fmt.Sprintf("zones/%s/machineTypes/%s", c.zone, opts.MachineType),
		Disks:       disks,
		Metadata:    metadata,
		NetworkInterfaces: []*compute.NetworkInterface{
			{
				Network: fmt.Sprintf("global/networks/%s", network),
				AccessConfigs: []*compute.AccessConfig{
					{Type: "ONE_TO_ONE_NAT", Name: "External NAT"},
				},
			},
		},
		ServiceAccounts: []*compute.ServiceAccount{
			{Email: "default", Scopes: opts.Scopes},
		},
	}

	err := c.doWithRetry(ctx, func() (*compute.Operation, error) {
		return c.service.Instances.Insert(c.project, c.zone, instance).Context(ctx).Do()
	})
	if err != nil {
		return fmt.Errorf("failed to create instance %s: %w", opts.Name, err)
	}
	return nil
}

// DeleteInstance deletes an instance by name.
func (c *RealClient) DeleteInstance(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Delete)
	defer cancel()

	err := c.doWithRetry(ctx, func() (*compute.Operation, error) {
		return c.service.Instances.Delete(c.project, c.zone, name).Context(ctx).Do()
	})
	if err != nil {
		return fmt.Errorf("failed to delete instance %s: %w", name, err)
	}
	return nil
}

// ListInstances returns the instances whose name starts with prefix.
func (c *RealClient) ListInstances(ctx context.Context, prefix string) ([]Instance, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.List)
	defer cancel()

	var instances []Instance
	call := c.service.Instances.List(c.project, c.zone).
		Filter(fmt.Sprintf("name eq %s.*", prefix)).
		Context(ctx)

	err := call.Pages(ctx, func(page *compute.InstanceList) error {
		for _, item := range page.Items {
			instances = append(instances, Instance{
				Name:        item.Name,
				Zone:        c.zone,
				Status:      item.Status,
				MachineType: item.MachineType,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}
	return instances, nil
}
