package config

import "github.com/mattgen/gridup/internal/util/naming"

// Role identifies the function of a host within the cluster.
type Role string

const (
	// RoleMaster is the host that owns and serves the shared volume.
	RoleMaster Role = "master"
	// RoleExecution is a worker host that joins the shared volume.
	RoleExecution Role = "execution"
)

// HostIdentity is the derived identity of one cluster host. For a fixed
// spec the index-to-name mapping is stable across invocations, which is
// what lets a down run target exactly what up created.
type HostIdentity struct {
	Role  Role
	Index int
	Name  string
}

// Masters enumerates the master host identities in index order.
// Master indices are 0-based.
func (s *ClusterSpec) Masters() []HostIdentity {
	hosts := make([]HostIdentity, 0, s.Master.Count)
	for i := 0; i < s.Master.Count; i++ {
		hosts = append(hosts, HostIdentity{
			Role:  RoleMaster,
			Index: i,
			Name:  naming.MasterHost(s.Master.NamePattern, i),
		})
	}
	return hosts
}

// Executors enumerates the execution host identities in index order.
// Execution indices are 1-based by convention.
func (s *ClusterSpec) Executors() []HostIdentity {
	hosts := make([]HostIdentity, 0, s.Execution.Count)
	for i := 1; i <= s.Execution.Count; i++ {
		hosts = append(hosts, HostIdentity{
			Role:  RoleExecution,
			Index: i,
			Name:  naming.ExecutionHost(s.Execution.NamePattern, i),
		})
	}
	return hosts
}

// Topology returns every host identity for the run, masters first.
// The topology is always computed fresh from the spec; the provider's
// own listing is the source of truth for what currently exists.
func (s *ClusterSpec) Topology() []HostIdentity {
	masters := s.Masters()
	return append(masters, s.Executors()...)
}

// MasterNames returns the ordered master host names.
func (s *ClusterSpec) MasterNames() []string {
	masters := s.Masters()
	names := make([]string, len(masters))
	for i, m := range masters {
		names[i] = m.Name
	}
	return names
}

// RoleConfigFor returns the role configuration for an identity.
func (s *ClusterSpec) RoleConfigFor(identity HostIdentity) RoleConfig {
	if identity.Role == RoleMaster {
		return s.Master
	}
	return s.Execution
}
