package parser

import (
	"regexp"
	"strings"
)

// DiskutilDisk is one top-level disk block of `diskutil list`.
type DiskutilDisk struct {
	Index int
	Name  string
	Kind  string // header descriptor, e.g. "internal, physical"
	Size  string
}

// DiskutilPartition is one numbered row inside a disk block.
type DiskutilPartition struct {
	Name string
	Size string
}

var (
	partitionNameRe = regexp.MustCompile(`\s+\d+:(.*) [*+\d.]`)
	partitionSizeRe = regexp.MustCompile(`(\d+\.\d+\s*\w*)`)
)

// ParseDiskutilDisks parses `diskutil list` output into disks. A line
// starting with '/' opens a disk block; the first line in the block that
// contains '*' is the disk's own size row, and the two tokens after the
// '*' are its size. Blocks without a size row are not reported, but still
// consume an index.
func ParseDiskutilDisks(output string) ([]DiskutilDisk, error) {
	var (
		disks   []DiskutilDisk
		current *DiskutilDisk
		emitted bool
		index   int
	)

	for _, line := range splitLines(output) {
		if strings.HasPrefix(line, "/") {
			index++
			name, kind := parseDiskutilHeader(line)
			current = &DiskutilDisk{Index: index, Name: name, Kind: kind}
			emitted = false
			continue
		}

		star := strings.Index(line, "*")
		if star < 0 || emitted {
			continue
		}
		if current == nil {
			return nil, &Error{Tool: "diskutil", Line: line, Reason: "size row outside of a disk block"}
		}

		fields := strings.Fields(line[star+1:])
		if len(fields) < 2 {
			return nil, &Error{Tool: "diskutil", Line: line, Reason: "size row has no value and unit"}
		}
		current.Size = fields[0] + " " + fields[1]
		disks = append(disks, *current)
		emitted = true
	}

	return disks, nil
}

// ParseDiskutilPartitions parses the rows of the block belonging to device.
// Blank lines, the "#:" column header and the disk's own size row (the
// first row containing '*') are skipped; every other row must look like
// "N: name ... size unit".
func ParseDiskutilPartitions(output, device string) ([]DiskutilPartition, error) {
	lines := splitLines(output)

	start := -1
	for i, line := range lines {
		if !strings.HasPrefix(line, "/") {
			continue
		}
		if name, _ := parseDiskutilHeader(line); name == device {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, &Error{Tool: "diskutil", Line: device, Reason: "device not found"}
	}

	partitions := []DiskutilPartition{}
	sizeRowSeen := false
	for _, line := range lines[start+1:] {
		if strings.HasPrefix(line, "/") {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#:") {
			continue
		}
		if !sizeRowSeen && strings.Contains(line, "*") {
			sizeRowSeen = true
			continue
		}

		name := partitionNameRe.FindStringSubmatch(line)
		size := partitionSizeRe.FindStringSubmatch(line)
		if name == nil || size == nil {
			return nil, &Error{Tool: "diskutil", Line: line, Reason: "unrecognized partition row"}
		}
		partitions = append(partitions, DiskutilPartition{
			Name: strings.TrimSpace(name[1]),
			Size: size[1],
		})
	}

	return partitions, nil
}

// parseDiskutilHeader splits "/dev/disk0 (internal, physical):" into the
// device path and the parenthesised descriptor.
func parseDiskutilHeader(line string) (name, kind string) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	name = strings.TrimSuffix(fields[0], ":")

	if open := strings.Index(line, "("); open >= 0 {
		if end := strings.Index(line[open:], ")"); end > 0 {
			kind = line[open+1 : open+end]
		}
	}
	return name, kind
}
