// Package destroy handles cluster teardown.
package destroy

import (
	"github.com/mattgen/gridup/internal/config"
	"github.com/mattgen/gridup/internal/platform/gce"
	"github.com/mattgen/gridup/internal/provisioning"
	"github.com/mattgen/gridup/internal/provisioning/disks"
)

// Provisioner deletes cluster hosts and, under a full lifecycle, their
// disks. Teardown is entirely fail-soft: every missing resource is a
// warning, so a down run can be repeated against a partially-torn-down
// cluster.
type Provisioner struct {
	disks *disks.Manager
	full  bool
}

// NewProvisioner creates a new teardown provisioner. With full=false
// only instances are deleted and all disks are preserved; disks are the
// costly stateful resource, so destroying them requires the explicit
// full variant.
func NewProvisioner(full bool) *Provisioner {
	return &Provisioner{disks: disks.NewManager(), full: full}
}

// Name implements provisioning.Phase.
func (p *Provisioner) Name() string { return "destroy" }

// Provision deletes every execution host before any master host. The
// resource disk stays attached read-only to live execution hosts, and
// the provider cannot release a disk that is still attached, so the
// master's disk set can only go last.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	for _, identity := range ctx.Spec.Executors() {
		p.DeleteHost(ctx, identity, p.full)
	}
	for _, identity := range ctx.Spec.Masters() {
		p.DeleteHost(ctx, identity, p.full)
	}
	return nil
}

// DeleteHost deletes one host's instance and, when full, its disks.
func (p *Provisioner) DeleteHost(ctx *provisioning.Context, identity config.HostIdentity, full bool) {
	ctx.Observer.Printf("Deleting %s host %s", identity.Role, identity.Name)
	if err := ctx.Cloud.DeleteInstance(ctx, identity.Name); err != nil {
		if gce.IsNotFound(err) {
			ctx.Observer.Warnf("instance %s does not exist", identity.Name)
		} else {
			ctx.Observer.Warnf("failed to delete instance %s: %v", identity.Name, err)
		}
	}

	p.disks.Delete(ctx, identity, full)
}
