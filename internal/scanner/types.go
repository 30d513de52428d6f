// Package scanner enumerates block devices and their partitions through each
// platform's native inventory tool.
package scanner

// Device is one whole disk as reported by the native inventory tool.
type Device struct {
	Index      int
	Name       string
	Size       Size
	Attributes map[string]string
}

// Partition is one logical subdivision of a Device.
type Partition struct {
	Name       string
	Size       Size
	Attributes map[string]string
}

// unknownName is used when the tool reported no name for an entry.
const unknownName = "n/a"
