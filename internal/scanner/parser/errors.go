// Package parser turns the text output of native disk inventory tools
// (lsblk, diskpart, diskutil) into records.
package parser

import "fmt"

// Error reports tool output that did not have the expected shape.
type Error struct {
	Tool   string
	Line   string
	Reason string
}

func (e *Error) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("parse %s output: %s", e.Tool, e.Reason)
	}
	return fmt.Sprintf("parse %s output: %s: %q", e.Tool, e.Reason, e.Line)
}
