package gce

import "context"

// DiskCreateOpts holds all parameters for creating a disk.
// Exactly one of SourceImage, SourceSnapshot or SizeGB should be set:
// boot disks come from an image, resource disks from a snapshot, and
// blank data disks from a size.
type DiskCreateOpts struct {
	Name           string
	SourceImage    string
	SourceSnapshot string
	SizeGB         int64
}

// AttachedDiskSpec describes one disk attachment on a new instance.
type AttachedDiskSpec struct {
	DiskName string
	Boot     bool
	ReadOnly bool
}

// InstanceCreateOpts holds all parameters for creating an instance.
type InstanceCreateOpts struct {
	Name        string
	MachineType string
	Network     string
	Disks       []AttachedDiskSpec
	Metadata    map[string]string
	Scopes      []string
}

// Instance is the subset of provider instance state the orchestrator
// reports back to the user.
type Instance struct {
	Name        string
	Zone        string
	Status      string
	MachineType string
}

// DiskManager defines the interface for managing disks.
type DiskManager interface {
	// CreateDisk creates a new disk. Creating a disk that already
	// exists is an error; this layer does not mask provider conflicts.
	CreateDisk(ctx context.Context, opts DiskCreateOpts) error
	DeleteDisk(ctx context.Context, name string) error
}

// InstanceManager defines the interface for managing instances.
type InstanceManager interface {
	CreateInstance(ctx context.Context, opts InstanceCreateOpts) error
	DeleteInstance(ctx context.Context, name string) error
	// ListInstances returns instances whose name starts with prefix.
	ListInstances(ctx context.Context, prefix string) ([]Instance, error)
}

// CloudManager combines all provider interfaces.
type CloudManager interface {
	DiskManager
	InstanceManager
}
