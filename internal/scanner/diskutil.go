package scanner

import (
	"context"
	"log/slog"

	"github.com/tinkerbelle-io/tb-blkdev/internal/scanner/parser"
)

// DiskutilInventory reads macOS disks from `diskutil list`.
type DiskutilInventory struct {
	runner CommandRunner
	tool   string
	log    *slog.Logger
}

// NewDiskutilInventory creates a DiskutilInventory. An empty tool means "diskutil".
func NewDiskutilInventory(runner CommandRunner, tool string) *DiskutilInventory {
	if tool == "" {
		tool = "diskutil"
	}
	return &DiskutilInventory{
		runner: runner,
		tool:   tool,
		log:    slog.Default().With("component", "diskutil"),
	}
}

func (inv *DiskutilInventory) ListDevices(ctx context.Context) ([]Device, error) {
	out, err := inv.list(ctx)
	if err != nil {
		return nil, err
	}

	disks, err := parser.ParseDiskutilDisks(out)
	if err != nil {
		return nil, err
	}

	devices := make([]Device, 0, len(disks))
	for _, d := range disks {
		dev := Device{
			Index: d.Index,
			Name:  d.Name,
			Size:  OpaqueSize(d.Size),
		}
		if d.Kind != "" {
			dev.Attributes = map[string]string{"kind": d.Kind}
		}
		devices = append(devices, dev)
	}
	inv.log.Debug("listed devices", "count", len(devices))
	return devices, nil
}

// ListPartitions re-reads the listing and slices out the device's block.
func (inv *DiskutilInventory) ListPartitions(ctx context.Context, dev Device) ([]Partition, error) {
	out, err := inv.list(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := parser.ParseDiskutilPartitions(out, dev.Name)
	if err != nil {
		return nil, err
	}

	partitions := make([]Partition, 0, len(rows))
	for _, r := range rows {
		partitions = append(partitions, Partition{Name: r.Name, Size: OpaqueSize(r.Size)})
	}
	return partitions, nil
}

func (inv *DiskutilInventory) list(ctx context.Context) (string, error) {
	out, err := inv.runner.Run(ctx, Command{Name: inv.tool, Args: []string{"list"}})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
