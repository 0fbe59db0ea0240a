package bootstrap

import (
	"context"
	"fmt"
	"os"
)

// hasFilesystem probes a device for an existing filesystem. blkid exits
// non-zero for a blank device, which is not an error here.
func (b *Bootstrapper) hasFilesystem(ctx context.Context, device string) bool {
	fsType, err := b.run.Output(ctx, "blkid", "-o", "value", "-s", "TYPE", device)
	return err == nil && fsType != ""
}

// mountDataDisk formats the data disk if it is blank, mounts it at the
// data path and relaxes permissions so non-privileged workloads can
// share it.
func (b *Bootstrapper) mountDataDisk(ctx context.Context, device string) error {
	if !b.hasFilesystem(ctx, device) {
		b.log.Info().Str("device", device).Msg("formatting blank data disk")
		if err := b.run.Run(ctx, "mkfs.ext4", "-F", device); err != nil {
			return fmt.Errorf("failed to format data disk: %w", err)
		}
	}

	b.log.Info().Str("device", device).Str("path", b.paths.DataMount).Msg("mounting data disk")
	if err := b.run.Run(ctx, "mount", device, b.paths.DataMount); err != nil {
		return fmt.Errorf("failed to mount data disk: %w", err)
	}

	if err := os.Chmod(b.paths.DataMount, 0o777); err != nil {
		return fmt.Errorf("failed to relax data mount permissions: %w", err)
	}
	return nil
}

// mountResourceDisk mounts the shared resource disk read-only, if one is
// attached. A missing device link means the cluster has no resource disk.
func (b *Bootstrapper) mountResourceDisk(ctx context.Context, device string) error {
	if !exists(device) {
		b.log.Info().Str("device", device).Msg("no resource disk attached, skipping")
		return nil
	}

	b.log.Info().Str("device", device).Str("path", b.paths.ResourceMount).Msg("mounting resource disk read-only")
	if err := b.run.Run(ctx, "mount", "-o", "ro,noload", device, b.paths.ResourceMount); err != nil {
		return fmt.Errorf("failed to mount resource disk: %w", err)
	}
	return nil
}
