package scanner

import (
	"context"
	"fmt"
)

// FindDevice returns the device listed with the given 1-based index.
func FindDevice(devices []Device, index int) (Device, error) {
	for _, d := range devices {
		if d.Index == index {
			return d, nil
		}
	}
	return Device{}, fmt.Errorf("%w: %d (%d devices listed)", ErrIndexOutOfRange, index, len(devices))
}

// DevicePartitions lists devices, selects the one at index and lists its
// partitions. Partitions are not read when the index is not listed.
func DevicePartitions(ctx context.Context, inv Inventory, index int) (Device, []Partition, error) {
	devices, err := inv.ListDevices(ctx)
	if err != nil {
		return Device{}, nil, fmt.Errorf("list devices: %w", err)
	}

	dev, err := FindDevice(devices, index)
	if err != nil {
		return Device{}, nil, err
	}

	partitions, err := inv.ListPartitions(ctx, dev)
	if err != nil {
		return Device{}, nil, fmt.Errorf("list partitions of %s: %w", dev.Name, err)
	}
	return dev, partitions, nil
}
