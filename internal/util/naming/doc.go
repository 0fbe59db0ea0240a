// Package naming provides consistent naming functions for cluster resources.
//
// Host names follow the role patterns configured in the cluster spec
// (one %d verb each). Disk names derive from host names: the boot disk
// shares the host name, the data disk appends -data, and the shared
// resource disk appends -resource to the master's name regardless of
// which host it is attached to.
package naming
