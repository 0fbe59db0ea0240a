package naming

import "fmt"

// Naming functions for cluster resources.
// Host and disk names are derived deterministically so that repeated
// up/down runs against the same spec target the same provider resources.

// MasterHost returns the name of the master host at the given index.
// Master indices are 0-based.
func MasterHost(pattern string, index int) string {
	return fmt.Sprintf(pattern, index)
}

// ExecutionHost returns the name of the execution host at the given index.
// Execution indices are 1-based by convention.
func ExecutionHost(pattern string, index int) string {
	return fmt.Sprintf(pattern, index)
}

// BootDisk returns the boot disk name for a host. The boot disk shares
// the host's name.
func BootDisk(host string) string {
	return host
}

// DataDisk returns the data disk name for a host.
func DataDisk(host string) string {
	return fmt.Sprintf("%s-data", host)
}

// ResourceDisk returns the shared resource disk name. The resource disk
// is owned by the master, so its name is always derived from the master
// host name, never from the host it happens to be attached to.
func ResourceDisk(masterHost string) string {
	return fmt.Sprintf("%s-resource", masterHost)
}

// DeviceName returns the stable by-id device link name the provider
// assigns to an attached disk. Kernel device names (/dev/sdX) are
// assignment-order dependent and must not be used directly.
func DeviceName(diskName string) string {
	return fmt.Sprintf("google-%s", diskName)
}
