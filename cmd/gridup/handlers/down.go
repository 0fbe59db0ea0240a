package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/mattgen/gridup/internal/provisioning"
	"github.com/mattgen/gridup/internal/provisioning/destroy"
)

// Down handles the down and down-full commands. Execution hosts are
// deleted before master hosts; disks are destroyed only under full.
func Down(ctx context.Context, configPath string, full bool) error {
	spec, err := loadSpec(configPath)
	if err != nil {
		return err
	}

	log.Printf("Tearing down cluster %s (full=%t)", spec.ClusterName, full)

	cloud, err := newCloudClient(ctx, spec)
	if err != nil {
		return err
	}

	pCtx := provisioning.NewContext(ctx, spec, cloud)
	phases := []provisioning.Phase{destroy.NewProvisioner(full)}

	if err := provisioning.RunPhases(pCtx, phases); err != nil {
		return fmt.Errorf("down failed: %w", err)
	}

	log.Printf("Cluster %s is down", spec.ClusterName)
	return nil
}
