// Package testing provides shared builders for constructing test specs.
package testing

import "github.com/mattgen/gridup/internal/config"

// SpecBuilder provides a fluent interface for constructing test specs.
// Each method returns a new builder (immutable) for chaining.
type SpecBuilder struct {
	spec config.ClusterSpec
}

// NewSpecBuilder creates a SpecBuilder with sensible defaults.
func NewSpecBuilder() *SpecBuilder {
	return &SpecBuilder{
		spec: config.ClusterSpec{
			ClusterName: "grid",
			Project:     "test-project",
			Zone:        "us-central1-b",
			Network:     "default",
			Master: config.RoleConfig{
				NamePattern: "grid-master-%d",
				Count:       1,
				MachineType: "n2-standard-4",
				BootImage:   "projects/debian-cloud/global/images/family/debian-12",
				DataDiskGB:  200,
			},
			Execution: config.RoleConfig{
				NamePattern: "grid-exec-%d",
				Count:       3,
				MachineType: "n2-standard-8",
				BootImage:   "projects/debian-cloud/global/images/family/debian-12",
				DataDiskGB:  100,
			},
			Bootstrap: config.BootstrapConfig{
				AgentURL: "https://storage.googleapis.com/grid-tools/gridup-node",
				Scopes:   config.DefaultScopes,
			},
		},
	}
}

// WithMasterCount sets the number of master hosts.
func (b *SpecBuilder) WithMasterCount(n int) *SpecBuilder {
	nb := b.clone()
	nb.spec.Master.Count = n
	return nb
}

// WithExecutionCount sets the number of execution hosts.
func (b *SpecBuilder) WithExecutionCount(n int) *SpecBuilder {
	nb := b.clone()
	nb.spec.Execution.Count = n
	return nb
}

// WithResourceSnapshot sets the resource disk source snapshot.
func (b *SpecBuilder) WithResourceSnapshot(snapshot string) *SpecBuilder {
	nb := b.clone()
	nb.spec.ResourceSnapshot = snapshot
	return nb
}

// Build returns the constructed spec.
func (b *SpecBuilder) Build() *config.ClusterSpec {
	spec := b.spec
	return &spec
}

func (b *SpecBuilder) clone() *SpecBuilder {
	return &SpecBuilder{spec: b.spec}
}
