// Package bootstrap implements the per-host boot-time bring-up sequence.
//
// The sequence runs as a small state machine persisted through marker
// directories (the mount points themselves):
//
//	Unbootstrapped → DataMounted → VolumeReady → VolumeJoined
//
// The existence of the data, resource and shared mount paths is the only
// durable state the node keeps; there is no separate state file. A
// restarted node re-enters at whatever state its markers encode, skips
// the one-time transitions (package install, disk formatting, volume
// creation) and still re-mounts its disks and the shared volume, which a
// fresh boot always needs.
//
// The protocol is single-attempt and fail-fast, with one exception: the
// final shared-volume mount retries with bounded backoff, because a
// worker can boot before the master has finished forming the volume.
package bootstrap
