package scanner

import "context"

// HostedInventory stands in for hosted targets that expose no native disk
// inventory tool. Every call fails with ErrNotSupported.
type HostedInventory struct{}

func (HostedInventory) ListDevices(context.Context) ([]Device, error) {
	return nil, ErrNotSupported
}

func (HostedInventory) ListPartitions(context.Context, Device) ([]Partition, error) {
	return nil, ErrNotSupported
}
