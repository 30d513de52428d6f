// Package report renders device and partition listings.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tinkerbelle-io/tb-blkdev/internal/scanner"
)

// Format selects how listings are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: text, json, yaml)", s)
	}
}

// Writer renders listings to an output stream.
type Writer struct {
	out    io.Writer
	format Format
}

// NewWriter creates a Writer.
func NewWriter(out io.Writer, format Format) *Writer {
	return &Writer{out: out, format: format}
}

// Devices renders one entry per device.
func (w *Writer) Devices(devices []scanner.Device) error {
	if w.format == FormatText {
		for _, d := range devices {
			if _, err := fmt.Fprintln(w.out, DeviceLine(d)); err != nil {
				return err
			}
		}
		return nil
	}

	views := make([]deviceView, 0, len(devices))
	for _, d := range devices {
		views = append(views, newDeviceView(d))
	}
	return w.encode(map[string]any{"devices": views})
}

// Partitions renders a device followed by its partitions.
func (w *Writer) Partitions(dev scanner.Device, partitions []scanner.Partition) error {
	if w.format == FormatText {
		if _, err := fmt.Fprintln(w.out, DeviceLine(dev)); err != nil {
			return err
		}
		for _, p := range partitions {
			if _, err := fmt.Fprintln(w.out, PartitionLine(p)); err != nil {
				return err
			}
		}
		return nil
	}

	view := deviceDetailView{
		deviceView: newDeviceView(dev),
		Partitions: make([]partitionView, 0, len(partitions)),
	}
	for _, p := range partitions {
		view.Partitions = append(view.Partitions, newPartitionView(p))
	}
	return w.encode(map[string]any{"device": view})
}

// DeviceLine renders "1. Device: /dev/sda, Size: 465.8 GiB".
func DeviceLine(d scanner.Device) string {
	return fmt.Sprintf("%d. Device: %s, Size: %s", d.Index, d.Name, d.Size)
}

// PartitionLine renders "   Partition: /dev/sda1, Size: 465.8 GiB".
func PartitionLine(p scanner.Partition) string {
	return fmt.Sprintf("   Partition: %s, Size: %s", p.Name, p.Size)
}

func (w *Writer) encode(v any) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", w.format)
	}
}
