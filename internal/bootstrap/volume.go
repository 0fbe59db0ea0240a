package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mattgen/gridup/internal/util/retry"
)

// volumeName is the shared distributed volume formed by the master.
const volumeName = "gridvol"

// installVolumeServer installs and starts the volume server on the master.
func (b *Bootstrapper) installVolumeServer(ctx context.Context) error {
	b.log.Info().Msg("installing volume server")
	if err := b.run.Run(ctx, "apt-get", "install", "-y", "glusterfs-server"); err != nil {
		return fmt.Errorf("failed to install volume server: %w", err)
	}
	if err := b.run.Run(ctx, "systemctl", "enable", "--now", "glusterd"); err != nil {
		return fmt.Errorf("failed to start volume daemon: %w", err)
	}
	return nil
}

// installVolumeClient installs the volume client on a worker. The volume
// itself already exists, formed by the master.
func (b *Bootstrapper) installVolumeClient(ctx context.Context) error {
	b.log.Info().Msg("installing volume client")
	if err := b.run.Run(ctx, "apt-get", "install", "-y", "glusterfs-client"); err != nil {
		return fmt.Errorf("failed to install volume client: %w", err)
	}
	return nil
}

// formVolume creates and starts the shared volume with a single brick
// rooted at the master's data mount.
func (b *Bootstrapper) formVolume(ctx context.Context, master string) error {
	brick := filepath.Join(b.paths.DataMount, "brick")
	if err := b.run.Run(ctx, "mkdir", "-p", brick); err != nil {
		return fmt.Errorf("failed to create brick directory: %w", err)
	}

	b.log.Info().Str("volume", volumeName).Str("brick", brick).Msg("forming shared volume")
	if err := b.run.Run(ctx, "gluster", "volume", "create", volumeName,
		fmt.Sprintf("%s:%s", master, brick), "force"); err != nil {
		return fmt.Errorf("failed to form volume: %w", err)
	}
	if err := b.run.Run(ctx, "gluster", "volume", "start", volumeName); err != nil {
		return fmt.Errorf("failed to start volume: %w", err)
	}
	return nil
}

// mountShared mounts the distributed volume from the master. This runs on
// every boot, and on a worker it can race the master still forming the
// volume, so it retries with bounded backoff instead of failing once.
func (b *Bootstrapper) mountShared(ctx context.Context, master string) error {
	source := fmt.Sprintf("%s:/%s", master, volumeName)
	b.log.Info().Str("source", source).Str("path", b.paths.SharedMount).Msg("mounting shared volume")

	err := retry.WithExponentialBackoff(ctx, func() error {
		return b.run.Run(ctx, "mount", "-t", "glusterfs", source, b.paths.SharedMount)
	}, b.mountRetry...)
	if err != nil {
		return fmt.Errorf("failed to mount shared volume: %w", err)
	}
	return nil
}

// defaultMountRetry bounds the shared-volume mount retries. Eight
// attempts with capped backoff give the master several minutes to finish
// forming the volume.
func defaultMountRetry() []retry.Option {
	return []retry.Option{
		retry.WithMaxRetries(8),
		retry.WithInitialDelay(5 * time.Second),
		retry.WithMaxDelay(60 * time.Second),
	}
}
