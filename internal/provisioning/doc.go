// Package provisioning holds the shared context, observer and phase
// pipeline used by the disk, compute and destroy provisioners.
//
// A run is strictly sequential. Creation is fail-fast: the first provider
// error aborts the remaining sequence with no automatic cleanup. Teardown
// is fail-soft per resource: missing resources are warnings and the
// sequence continues, so a down run is safely repeatable against a
// partially-torn-down cluster. This asymmetry is deliberate.
package provisioning
