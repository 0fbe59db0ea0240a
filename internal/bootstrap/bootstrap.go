package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mattgen/gridup/internal/config"
	"github.com/mattgen/gridup/internal/util/naming"
	"github.com/mattgen/gridup/internal/util/retry"
)

// Bootstrapper executes the node bring-up sequence.
type Bootstrapper struct {
	log        zerolog.Logger
	run        Runner
	meta       MetadataSource
	paths      Paths
	mountRetry []retry.Option
}

// New creates a Bootstrapper.
func New(logger zerolog.Logger, run Runner, meta MetadataSource, paths Paths) *Bootstrapper {
	return &Bootstrapper{
		log:        logger.With().Str("component", "bootstrap").Logger(),
		run:        run,
		meta:       meta,
		paths:      paths,
		mountRetry: defaultMountRetry(),
	}
}

// Run executes the bring-up sequence. One-time transitions are gated by
// the marker paths; disk and volume mounts happen every boot. Any error
// aborts the sequence, leaving the node manually recoverable.
func (b *Bootstrapper) Run(ctx context.Context) error {
	state := StateOf(b.paths)
	b.log.Info().Stringer("state", state).Msg("starting bring-up")

	// First boot: the data mount path is the only signal distinguishing
	// a fresh host from a restarted one.
	if !exists(b.paths.DataMount) {
		if err := b.installBase(ctx); err != nil {
			return err
		}
		if err := os.MkdirAll(b.paths.DataMount, 0o755); err != nil {
			return fmt.Errorf("failed to create data mount point: %w", err)
		}
	}

	if !exists(b.paths.ResourceMount) {
		if err := os.MkdirAll(b.paths.ResourceMount, 0o755); err != nil {
			return fmt.Errorf("failed to create resource mount point: %w", err)
		}
	}

	master, err := b.meta.ClusterMaster(ctx)
	if err != nil {
		return err
	}
	hostname, err := b.meta.Hostname(ctx)
	if err != nil {
		return err
	}

	role := config.RoleExecution
	if hostname == master {
		role = config.RoleMaster
	}
	b.log.Info().Str("host", hostname).Str("master", master).Str("role", string(role)).Msg("resolved role")

	dataDevice := b.paths.Device(naming.DeviceName(naming.DataDisk(hostname)))
	if err := b.mountDataDisk(ctx, dataDevice); err != nil {
		return err
	}

	resourceDevice := b.paths.Device(naming.DeviceName(naming.ResourceDisk(master)))
	if err := b.mountResourceDisk(ctx, resourceDevice); err != nil {
		return err
	}

	if !exists(b.paths.SharedMount) {
		if role == config.RoleMaster {
			if err := b.installVolumeServer(ctx); err != nil {
				return err
			}
			if err := b.formVolume(ctx, master); err != nil {
				return err
			}
		} else {
			if err := b.installVolumeClient(ctx); err != nil {
				return err
			}
		}
		if err := os.MkdirAll(b.paths.SharedMount, 0o755); err != nil {
			return fmt.Errorf("failed to create shared mount point: %w", err)
		}
	}

	// Every boot, not just the first: a restarted node must re-mount the
	// shared volume even though it must not re-form it.
	if err := b.mountShared(ctx, master); err != nil {
		return err
	}

	if err := b.activateRuntime(ctx); err != nil {
		return err
	}

	b.log.Info().Stringer("state", VolumeJoined).Msg("bring-up complete")
	return nil
}

// installBase performs the one-time host package setup on first boot.
func (b *Bootstrapper) installBase(ctx context.Context) error {
	b.log.Info().Msg("first boot, installing base packages")
	if err := b.run.Run(ctx, "apt-get", "update"); err != nil {
		return fmt.Errorf("failed to update package index: %w", err)
	}
	if err := b.run.Run(ctx, "apt-get", "install", "-y", "e2fsprogs", "curl"); err != nil {
		return fmt.Errorf("failed to install base packages: %w", err)
	}
	return nil
}

// runtimeTarget groups the node's workload services.
const runtimeTarget = "grid-runtime.target"

// activateRuntime starts the node's application runtime environment.
func (b *Bootstrapper) activateRuntime(ctx context.Context) error {
	b.log.Info().Str("unit", runtimeTarget).Msg("activating runtime environment")
	if err := b.run.Run(ctx, "systemctl", "start", runtimeTarget); err != nil {
		return fmt.Errorf("failed to activate runtime: %w", err)
	}
	return nil
}
