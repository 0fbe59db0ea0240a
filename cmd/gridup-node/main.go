// Package main is the entry point for the gridup-node boot agent.
//
// The agent runs on each cluster host via the provider's startup-script
// machinery, on every boot. It resolves the host's role from instance
// metadata, formats and mounts the local disks, forms or joins the
// shared distributed volume, and activates the node's runtime
// environment. It is a one-shot process, not a daemon: any failure
// leaves the node degraded and manually recoverable.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/mattgen/gridup/internal/bootstrap"
)

// bootTimeout bounds the whole bring-up, including the shared-volume
// mount retries while a worker waits for the master.
const bootTimeout = 30 * time.Minute

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	ctx, cancel := context.WithTimeout(context.Background(), bootTimeout)
	defer cancel()

	b := bootstrap.New(logger, bootstrap.ExecRunner{}, bootstrap.GCEMetadata{}, bootstrap.DefaultPaths())
	if err := b.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("bring-up failed")
		os.Exit(1)
	}
}
