package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/compute/metadata"
)

// metadataKeyClusterMaster is the instance attribute written by the
// orchestrator at creation time.
const metadataKeyClusterMaster = "cluster-master"

// MetadataSource resolves the node's identity and cluster role inputs.
type MetadataSource interface {
	// ClusterMaster returns the master host name from instance metadata.
	ClusterMaster(ctx context.Context) (string, error)
	// Hostname returns the node's own short hostname.
	Hostname(ctx context.Context) (string, error)
}

// GCEMetadata reads from the provider metadata service.
type GCEMetadata struct{}

// ClusterMaster implements MetadataSource.
func (GCEMetadata) ClusterMaster(ctx context.Context) (string, error) {
	value, err := metadata.InstanceAttributeValueWithContext(ctx, metadataKeyClusterMaster)
	if err != nil {
		return "", fmt.Errorf("failed to read %s attribute: %w", metadataKeyClusterMaster, err)
	}
	return strings.TrimSpace(value), nil
}

// Hostname implements MetadataSource. The metadata service reports the
// FQDN, so the short hostname comes from the kernel instead.
func (GCEMetadata) Hostname(_ context.Context) (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("failed to read hostname: %w", err)
	}
	short, _, _ := strings.Cut(hostname, ".")
	return short, nil
}
