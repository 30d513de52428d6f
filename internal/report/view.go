package report

import "github.com/tinkerbelle-io/tb-blkdev/internal/scanner"

// deviceView is the structured output shape of a device.
type deviceView struct {
	Index      int               `json:"index" yaml:"index"`
	Name       string            `json:"name" yaml:"name"`
	Size       string            `json:"size" yaml:"size"`
	Bytes      *uint64           `json:"bytes,omitempty" yaml:"bytes,omitempty"`
	Exact      bool              `json:"exact" yaml:"exact"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// deviceDetailView is a device with its partitions. The partitions key is
// always present, empty or not.
type deviceDetailView struct {
	deviceView `yaml:",inline"`
	Partitions []partitionView `json:"partitions" yaml:"partitions"`
}

type partitionView struct {
	Name       string            `json:"name" yaml:"name"`
	Size       string            `json:"size" yaml:"size"`
	Bytes      *uint64           `json:"bytes,omitempty" yaml:"bytes,omitempty"`
	Exact      bool              `json:"exact" yaml:"exact"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

func newDeviceView(d scanner.Device) deviceView {
	bytes, exact := sizeBytes(d.Size)
	return deviceView{
		Index:      d.Index,
		Name:       d.Name,
		Size:       d.Size.String(),
		Bytes:      bytes,
		Exact:      exact,
		Attributes: d.Attributes,
	}
}

func newPartitionView(p scanner.Partition) partitionView {
	bytes, exact := sizeBytes(p.Size)
	return partitionView{
		Name:       p.Name,
		Size:       p.Size.String(),
		Bytes:      bytes,
		Exact:      exact,
		Attributes: p.Attributes,
	}
}

// sizeBytes returns the byte count when one can be derived; opaque sizes
// yield an approximation and exact=false.
func sizeBytes(s scanner.Size) (*uint64, bool) {
	n, ok := s.ApproxBytes()
	if !ok {
		return nil, false
	}
	return &n, !s.IsOpaque()
}
