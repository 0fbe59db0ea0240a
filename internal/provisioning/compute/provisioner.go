// Package compute provisions master and execution host instances.
package compute

import (
	"fmt"

	"github.com/mattgen/gridup/internal/config"
	"github.com/mattgen/gridup/internal/platform/gce"
	"github.com/mattgen/gridup/internal/provisioning"
	"github.com/mattgen/gridup/internal/provisioning/disks"
	"github.com/mattgen/gridup/internal/util/naming"
)

// Metadata keys consumed by the node bootstrap agent.
const (
	// MetadataClusterMaster carries the master host name. It is the sole
	// channel through which a node learns its role and master address.
	MetadataClusterMaster = "cluster-master"
	// MetadataStartupScript is the provider's startup-script key.
	MetadataStartupScript = "startup-script"
)

// Provisioner creates cluster host instances with their disk sets and
// bootstrap metadata. Creation is fail-fast: any provider error aborts
// the whole run, and partially-created clusters are cleaned up with a
// down pass. The full flag gates disk creation.
type Provisioner struct {
	disks *disks.Manager
	full  bool
}

// NewProvisioner creates a new instance provisioner.
func NewProvisioner(full bool) *Provisioner {
	return &Provisioner{disks: disks.NewManager(), full: full}
}

// Name implements provisioning.Phase.
func (p *Provisioner) Name() string { return "compute" }

// Provision creates every master host, then every execution host, then
// lists the instances matching the cluster prefix.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	masterNames := ctx.Spec.MasterNames()

	for _, identity := range ctx.Spec.Masters() {
		if err := p.AddMasterHost(ctx, identity, p.full); err != nil {
			return err
		}
	}
	for _, identity := range ctx.Spec.Executors() {
		if err := p.AddExecutionHost(ctx, identity, masterNames, p.full); err != nil {
			return err
		}
	}

	instances, err := ctx.Cloud.ListInstances(ctx, ctx.Spec.ClusterName)
	if err != nil {
		return fmt.Errorf("failed to list cluster instances: %w", err)
	}
	for _, inst := range instances {
		ctx.Observer.Printf("instance %-24s zone=%s status=%s", inst.Name, inst.Zone, inst.Status)
	}
	return nil
}

// AddMasterHost optionally creates the master's disks, then creates the
// master instance attaching boot, data and (when configured) the shared
// resource disk. The metadata names the host itself as cluster master.
func (p *Provisioner) AddMasterHost(ctx *provisioning.Context, identity config.HostIdentity, full bool) error {
	if err := p.disks.Create(ctx, identity, full); err != nil {
		return err
	}
	return p.createInstance(ctx, identity, identity.Name)
}

// AddExecutionHost is symmetric to AddMasterHost, but the attached
// resource disk is named from the master — execution hosts never own a
// resource disk, they only read the master's. The full master name list
// is accepted so multi-master topologies stay representable; metadata
// currently threads the first master through.
func (p *Provisioner) AddExecutionHost(ctx *provisioning.Context, identity config.HostIdentity, masters []string, full bool) error {
	if len(masters) == 0 {
		return fmt.Errorf("execution host %s: no master hosts configured", identity.Name)
	}
	if err := p.disks.Create(ctx, identity, full); err != nil {
		return err
	}
	return p.createInstance(ctx, identity, masters[0])
}

func (p *Provisioner) createInstance(ctx *provisioning.Context, identity config.HostIdentity, masterName string) error {
	role := ctx.Spec.RoleConfigFor(identity)

	attached := []gce.AttachedDiskSpec{
		{DiskName: naming.BootDisk(identity.Name), Boot: true},
		{DiskName: naming.DataDisk(identity.Name)},
	}
	if ctx.Spec.HasResourceDisk() {
		// The resource disk is shared across hosts, so every attachment
		// must be read-only; the provider rejects mixed-mode sharing.
		attached = append(attached, gce.AttachedDiskSpec{
			DiskName: naming.ResourceDisk(masterName),
			ReadOnly: true,
		})
	}

	script, err := renderStartupScript(ctx.Spec.Bootstrap.AgentURL)
	if err != nil {
		return err
	}

	ctx.Observer.Printf("Creating %s host %s (%s)", identity.Role, identity.Name, role.MachineType)
	err = ctx.Cloud.CreateInstance(ctx, gce.InstanceCreateOpts{
		Name:        identity.Name,
		MachineType: role.MachineType,
		Network:     ctx.Spec.Network,
		Disks:       attached,
		Metadata: map[string]string{
			MetadataClusterMaster: masterName,
			MetadataStartupScript: script,
		},
		Scopes: ctx.Spec.Bootstrap.Scopes,
	})
	if err != nil {
		return fmt.Errorf("%s host %s: %w", identity.Role, identity.Name, err)
	}
	return nil
}
