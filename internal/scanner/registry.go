package scanner

import (
	"context"
	"fmt"
)

// Inventory lists block devices through a platform's native tool.
type Inventory interface {
	// ListDevices returns whole disks only, in the tool's order, with
	// 1-based indices.
	ListDevices(ctx context.Context) ([]Device, error)
	// ListPartitions returns the partitions of a device obtained from
	// ListDevices.
	ListPartitions(ctx context.Context, dev Device) ([]Partition, error)
}

// Tools overrides the native executable names. Empty fields use the
// platform default.
type Tools struct {
	Lsblk    string
	Diskpart string
	Diskutil string
}

// NewInventory builds the inventory for platform p.
func NewInventory(p Platform, runner CommandRunner, tools Tools) (Inventory, error) {
	switch p {
	case PlatformLinux:
		return NewLsblkInventory(runner, tools.Lsblk), nil
	case PlatformWindows:
		return NewDiskpartInventory(runner, tools.Diskpart), nil
	case PlatformDarwin:
		return NewDiskutilInventory(runner, tools.Diskutil), nil
	case PlatformHosted:
		return HostedInventory{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, p)
	}
}
