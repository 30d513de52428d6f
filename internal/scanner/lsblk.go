package scanner

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/tinkerbelle-io/tb-blkdev/internal/scanner/parser"
)

// LsblkInventory reads Linux block devices with `lsblk -P` in byte units.
type LsblkInventory struct {
	runner CommandRunner
	tool   string
	log    *slog.Logger
}

// NewLsblkInventory creates an LsblkInventory. An empty tool means "lsblk".
func NewLsblkInventory(runner CommandRunner, tool string) *LsblkInventory {
	if tool == "" {
		tool = "lsblk"
	}
	return &LsblkInventory{
		runner: runner,
		tool:   tool,
		log:    slog.Default().With("component", "lsblk"),
	}
}

// ListDevices runs `lsblk -dbPp` and keeps type=disk entries.
func (inv *LsblkInventory) ListDevices(ctx context.Context) ([]Device, error) {
	entries, err := inv.run(ctx, "-dbPp")
	if err != nil {
		return nil, err
	}

	devices := []Device{}
	for _, e := range entries {
		if e["type"] != "disk" {
			continue
		}
		devices = append(devices, Device{
			Index:      len(devices) + 1,
			Name:       lsblkName(e),
			Size:       lsblkSize(e),
			Attributes: lsblkAttributes(e),
		})
	}
	inv.log.Debug("listed devices", "count", len(devices))
	return devices, nil
}

// ListPartitions runs `lsblk -bPp <device>` and keeps type=part entries.
func (inv *LsblkInventory) ListPartitions(ctx context.Context, dev Device) ([]Partition, error) {
	entries, err := inv.run(ctx, "-bPp", dev.Name)
	if err != nil {
		return nil, err
	}

	partitions := []Partition{}
	for _, e := range entries {
		if e["type"] != "part" {
			continue
		}
		partitions = append(partitions, Partition{
			Name:       lsblkName(e),
			Size:       lsblkSize(e),
			Attributes: lsblkAttributes(e),
		})
	}
	inv.log.Debug("listed partitions", "device", dev.Name, "count", len(partitions))
	return partitions, nil
}

func (inv *LsblkInventory) run(ctx context.Context, args ...string) ([]map[string]string, error) {
	out, err := inv.runner.Run(ctx, Command{Name: inv.tool, Args: args})
	if err != nil {
		return nil, err
	}
	return parser.ParseLsblkPairs(string(out))
}

func lsblkName(e map[string]string) string {
	if name, ok := e["name"]; ok && name != "" {
		return name
	}
	return unknownName
}

// lsblkSize keeps a size that is not an integer as opaque text rather than
// failing the listing.
func lsblkSize(e map[string]string) Size {
	raw, ok := e["size"]
	if !ok || raw == "" {
		return SizeBytes(0)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return OpaqueSize(raw)
	}
	return SizeBytes(n)
}

func lsblkAttributes(e map[string]string) map[string]string {
	attrs := make(map[string]string, len(e))
	for k, v := range e {
		if k == "name" || k == "size" {
			continue
		}
		attrs[k] = v
	}
	return attrs
}
