package scanner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tinkerbelle-io/tb-blkdev/internal/scanner/parser"
)

var (
	// ErrUnsupportedPlatform is returned when the host matches no known platform family.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrNotSupported is returned by inventories that cannot enumerate devices at all.
	ErrNotSupported = errors.New("not supported in this environment")
	// ErrIndexOutOfRange is returned when a requested device index was not listed.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ToolError reports a native command that could not be run or exited non-zero.
type ToolError struct {
	Command  string
	ExitCode int // -1 when the process never ran to completion
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("command %q failed", e.Command)
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(" with exit code %d", e.ExitCode)
	}
	if e.Err != nil && e.ExitCode < 0 {
		msg += ": " + e.Err.Error()
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += " (stderr: " + stderr + ")"
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }

// ParseError reports tool output that did not have the expected shape.
type ParseError = parser.Error
