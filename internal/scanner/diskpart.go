package scanner

import (
	"context"
	"log/slog"

	"github.com/tinkerbelle-io/tb-blkdev/internal/scanner/parser"
)

const (
	diskpartListDisks = "list disk\nexit"
	// diskpartListPartitions always selects disk 0. Which disk the listing
	// should follow is unresolved, so the requested device is not used.
	diskpartListPartitions = "select disk 0\nlist partition\nexit"
)

// DiskpartInventory reads Windows disks by scripting diskpart over stdin.
type DiskpartInventory struct {
	runner CommandRunner
	tool   string
	log    *slog.Logger
}

// NewDiskpartInventory creates a DiskpartInventory. An empty tool means "diskpart".
func NewDiskpartInventory(runner CommandRunner, tool string) *DiskpartInventory {
	if tool == "" {
		tool = "diskpart"
	}
	return &DiskpartInventory{
		runner: runner,
		tool:   tool,
		log:    slog.Default().With("component", "diskpart"),
	}
}

// ListDevices runs `list disk`.
func (inv *DiskpartInventory) ListDevices(ctx context.Context) ([]Device, error) {
	rows, err := inv.run(ctx, diskpartListDisks)
	if err != nil {
		return nil, err
	}

	devices := make([]Device, 0, len(rows))
	for _, row := range rows {
		devices = append(devices, Device{
			Index:      row.Index,
			Name:       row.Name,
			Size:       OpaqueSize(row.Size),
			Attributes: diskpartAttributes(row),
		})
	}
	return devices, nil
}

// ListPartitions runs `list partition` against disk 0.
func (inv *DiskpartInventory) ListPartitions(ctx context.Context, dev Device) ([]Partition, error) {
	if dev.Name != "Disk 0" {
		inv.log.Warn("diskpart partition listing always selects disk 0", "requested", dev.Name)
	}

	rows, err := inv.run(ctx, diskpartListPartitions)
	if err != nil {
		return nil, err
	}

	partitions := make([]Partition, 0, len(rows))
	for _, row := range rows {
		partitions = append(partitions, Partition{
			Name:       row.Name,
			Size:       OpaqueSize(row.Size),
			Attributes: diskpartAttributes(row),
		})
	}
	return partitions, nil
}

func (inv *DiskpartInventory) run(ctx context.Context, script string) ([]parser.TableRow, error) {
	if !isElevated() {
		inv.log.Warn("diskpart usually requires an elevated prompt")
	}

	out, err := inv.runner.Run(ctx, Command{Name: inv.tool, Stdin: script, CombinedOutput: true})
	if err != nil {
		return nil, err
	}
	return parser.ParseDiskpartTable(string(out))
}

func diskpartAttributes(row parser.TableRow) map[string]string {
	if row.Info == "" {
		return nil
	}
	return map[string]string{"info": row.Info}
}
