package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ClusterSpec holds the immutable cluster configuration for one run.
// It is created once at load time and never mutated.
type ClusterSpec struct {
	ClusterName string `mapstructure:"cluster_name" yaml:"cluster_name" validate:"required,hostname_rfc1123"`
	Project     string `mapstructure:"project" yaml:"project" validate:"required"`
	Zone        string `mapstructure:"zone" yaml:"zone" validate:"required"`
	Network     string `mapstructure:"network" yaml:"network"`

	Master    RoleConfig `mapstructure:"master" yaml:"master"`
	Execution RoleConfig `mapstructure:"execution" yaml:"execution"`

	// ResourceSnapshot names the snapshot the shared read-only resource
	// disk is created from. Empty means no resource disk.
	ResourceSnapshot string `mapstructure:"resource_snapshot" yaml:"resource_snapshot"`

	Bootstrap BootstrapConfig `mapstructure:"bootstrap" yaml:"bootstrap"`
}

// RoleConfig holds the per-role instance and disk parameters.
type RoleConfig struct {
	NamePattern string `mapstructure:"name_pattern" yaml:"name_pattern" validate:"required"`
	Count       int    `mapstructure:"count" yaml:"count" validate:"required,min=1"`
	MachineType string `mapstructure:"machine_type" yaml:"machine_type" validate:"required"`
	BootImage   string `mapstructure:"boot_image" yaml:"boot_image" validate:"required"`
	DataDiskGB  int64  `mapstructure:"data_disk_gb" yaml:"data_disk_gb" validate:"required,min=10"`
}

// BootstrapConfig holds the parameters threaded through to the node
// bootstrap agent via instance metadata.
type BootstrapConfig struct {
	// AgentURL is where the startup script fetches the gridup-node binary.
	AgentURL string `mapstructure:"agent_url" yaml:"agent_url" validate:"required,url"`

	// Scopes are the service-account scopes granted to each instance.
	// Storage read access is needed for the agent fetch.
	Scopes []string `mapstructure:"scopes" yaml:"scopes"`
}

// DefaultScopes are applied when the spec does not set any.
var DefaultScopes = []string{
	"https://www.googleapis.com/auth/devstorage.read_only",
	"https://www.googleapis.com/auth/compute",
}

var validate = validator.New()

// LoadFile reads and parses the cluster spec from a YAML file.
func LoadFile(path string) (*ClusterSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Load(data)
}

// Load parses and validates a cluster spec from raw YAML.
func Load(data []byte) (*ClusterSpec, error) {
	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var spec ClusterSpec
	if err := mapstructure.Decode(rawConfig, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if len(spec.Bootstrap.Scopes) == 0 {
		spec.Bootstrap.Scopes = DefaultScopes
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &spec, nil
}

// Validate checks the spec against its struct tags and verifies the
// host-name patterns up front, so a malformed pattern fails at load
// rather than mid-provisioning.
func (s *ClusterSpec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid cluster spec: %w", err)
	}

	if err := validatePattern("master.name_pattern", s.Master.NamePattern); err != nil {
		return err
	}
	if err := validatePattern("execution.name_pattern", s.Execution.NamePattern); err != nil {
		return err
	}
	return nil
}

// validatePattern requires exactly one %d verb and no other verbs in a
// host-name pattern.
func validatePattern(field, pattern string) error {
	if strings.Count(pattern, "%d") != 1 {
		return fmt.Errorf("%s: pattern %q must contain exactly one %%d", field, pattern)
	}
	if strings.Count(pattern, "%") != 1 {
		return fmt.Errorf("%s: pattern %q contains unsupported format verbs", field, pattern)
	}
	return nil
}

// HasResourceDisk reports whether the spec configures a shared resource disk.
func (s *ClusterSpec) HasResourceDisk() bool {
	return s.ResourceSnapshot != ""
}
