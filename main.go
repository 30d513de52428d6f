// tb-blkdev — block device lister
//
// Lists the disks of the local machine, or the partitions of one disk,
// using the platform's native inventory tool.
//
// Usage:
//
//	tb-blkdev                 # list all disks
//	tb-blkdev 1               # list disk 1 and its partitions
//	tb-blkdev -o json         # structured output
//	tb-blkdev platform        # show the detected platform
package main

import "github.com/tinkerbelle-io/tb-blkdev/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
