// Package handlers implements the business logic for CLI commands.
//
// Handlers are framework-agnostic and can be tested independently of the
// CLI framework. Provider client construction goes through factory
// variables so tests can substitute mocks.
package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/mattgen/gridup/internal/config"
	"github.com/mattgen/gridup/internal/platform/gce"
	"github.com/mattgen/gridup/internal/provisioning"
	"github.com/mattgen/gridup/internal/provisioning/compute"
)

// Factory function variables - can be replaced in tests.
var (
	// loadSpec loads the cluster spec from a file.
	loadSpec = config.LoadFile

	// newCloudClient creates a provider client for the spec's project and zone.
	newCloudClient = func(ctx context.Context, spec *config.ClusterSpec) (gce.CloudManager, error) {
		return gce.NewRealClient(ctx, spec.Project, spec.Zone)
	}
)

// Up handles the up and up-full commands. It provisions every master
// host, then every execution host, and ends by listing the instances
// that now match the cluster prefix.
func Up(ctx context.Context, configPath string, full bool) error {
	spec, err := loadSpec(configPath)
	if err != nil {
		return err
	}

	log.Printf("Bringing up cluster %s (%d master, %d execution, full=%t)",
		spec.ClusterName, spec.Master.Count, spec.Execution.Count, full)

	cloud, err := newCloudClient(ctx, spec)
	if err != nil {
		return err
	}

	pCtx := provisioning.NewContext(ctx, spec, cloud)
	phases := []provisioning.Phase{compute.NewProvisioner(full)}

	if err := provisioning.RunPhases(pCtx, phases); err != nil {
		return fmt.Errorf("up failed: %w", err)
	}

	log.Printf("Cluster %s is up", spec.ClusterName)
	return nil
}
