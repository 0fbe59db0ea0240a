// Package disks implements the disk lifecycle for cluster hosts.
package disks

import (
	"fmt"

	"github.com/mattgen/gridup/internal/config"
	"github.com/mattgen/gridup/internal/platform/gce"
	"github.com/mattgen/gridup/internal/provisioning"
	"github.com/mattgen/gridup/internal/util/naming"
)

// Manager creates and deletes the per-host disk set: boot disk from the
// role's image, blank data disk sized per role, and — for the master
// only — the shared resource disk restored from a snapshot.
type Manager struct{}

// NewManager creates a new disk lifecycle manager.
func NewManager() *Manager {
	return &Manager{}
}

// Create provisions the disk set for one host. With full=false no disk
// calls are issued at all. Creation is fail-fast and does not mask
// provider "already exists" conflicts; the caller chooses whether a full
// lifecycle is appropriate.
func (m *Manager) Create(ctx *provisioning.Context, identity config.HostIdentity, full bool) error {
	if !full {
		return nil
	}

	role := ctx.Spec.RoleConfigFor(identity)

	boot := naming.BootDisk(identity.Name)
	ctx.Observer.Printf("Creating boot disk %s from image %s", boot, role.BootImage)
	if err := ctx.Cloud.CreateDisk(ctx, gce.DiskCreateOpts{
		Name:        boot,
		SourceImage: role.BootImage,
	}); err != nil {
		return fmt.Errorf("boot disk for %s: %w", identity.Name, err)
	}

	data := naming.DataDisk(identity.Name)
	ctx.Observer.Printf("Creating data disk %s (%dGB)", data, role.DataDiskGB)
	if err := ctx.Cloud.CreateDisk(ctx, gce.DiskCreateOpts{
		Name:   data,
		SizeGB: role.DataDiskGB,
	}); err != nil {
		return fmt.Errorf("data disk for %s: %w", identity.Name, err)
	}

	// Only the master owns the shared resource disk.
	if identity.Role == config.RoleMaster && ctx.Spec.HasResourceDisk() {
		resource := naming.ResourceDisk(identity.Name)
		ctx.Observer.Printf("Creating resource disk %s from snapshot %s", resource, ctx.Spec.ResourceSnapshot)
		if err := ctx.Cloud.CreateDisk(ctx, gce.DiskCreateOpts{
			Name:           resource,
			SourceSnapshot: ctx.Spec.ResourceSnapshot,
		}); err != nil {
			return fmt.Errorf("resource disk for %s: %w", identity.Name, err)
		}
	}

	return nil
}

// Delete removes the disk set for one host. Each deletion is attempted
// independently and never aborts the sequence: an already-gone disk is
// the expected state on a re-run.
func (m *Manager) Delete(ctx *provisioning.Context, identity config.HostIdentity, full bool) {
	if !full {
		return
	}

	names := []string{
		naming.BootDisk(identity.Name),
		naming.DataDisk(identity.Name),
	}
	if identity.Role == config.RoleMaster && ctx.Spec.HasResourceDisk() {
		names = append(names, naming.ResourceDisk(identity.Name))
	}

	for _, name := range names {
		ctx.Observer.Printf("Deleting disk %s", name)
		if err := ctx.Cloud.DeleteDisk(ctx, name); err != nil {
			if gce.IsNotFound(err) {
				ctx.Observer.Warnf("disk %s does not exist", name)
			} else {
				ctx.Observer.Warnf("failed to delete disk %s: %v", name, err)
			}
		}
	}
}
