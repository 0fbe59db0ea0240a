package bootstrap

import (
	"os"
	"path/filepath"
)

// State is the node's bring-up progress, encoded entirely by which
// marker paths exist.
type State int

const (
	// Unbootstrapped means the host has never completed first-boot setup.
	Unbootstrapped State = iota
	// DataMounted means the local mount points exist.
	DataMounted
	// VolumeReady means the shared volume software is installed and, on
	// the master, the volume has been formed.
	VolumeReady
	// VolumeJoined means the shared volume is mounted. This state is
	// re-entered on every boot; it does not survive a restart.
	VolumeJoined
)

func (s State) String() string {
	switch s {
	case Unbootstrapped:
		return "unbootstrapped"
	case DataMounted:
		return "data-mounted"
	case VolumeReady:
		return "volume-ready"
	case VolumeJoined:
		return "volume-joined"
	default:
		return "unknown"
	}
}

// Paths holds the node-local filesystem layout. The three mount paths
// double as the state markers.
type Paths struct {
	DataMount     string
	ResourceMount string
	SharedMount   string
	// DeviceDir is where the provider exposes stable by-id disk links.
	DeviceDir string
}

// DefaultPaths returns the standard node layout.
func DefaultPaths() Paths {
	return Paths{
		DataMount:     "/mnt/data",
		ResourceMount: "/mnt/resource",
		SharedMount:   "/mnt/shared",
		DeviceDir:     "/dev/disk/by-id",
	}
}

// Device returns the stable device path for an attached disk.
func (p Paths) Device(deviceName string) string {
	return filepath.Join(p.DeviceDir, deviceName)
}

// StateOf derives the current state from the marker paths. The shared
// mount marker only proves the volume was set up at some point, not that
// it is currently mounted, so the highest state a restart can observe is
// VolumeReady.
func StateOf(p Paths) State {
	if !exists(p.DataMount) {
		return Unbootstrapped
	}
	if !exists(p.SharedMount) {
		return DataMounted
	}
	return VolumeReady
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
