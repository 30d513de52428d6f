package scanner

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Command is one native tool invocation.
type Command struct {
	Name  string
	Args  []string
	Stdin string
	// CombinedOutput captures stderr into the returned output, the way
	// interactive tools such as diskpart are read.
	CombinedOutput bool
}

// String renders the command as a shell-quoted line for logs and errors.
func (c Command) String() string {
	return shellquote.Join(append([]string{c.Name}, c.Args...)...)
}

// CommandRunner abstracts command execution so inventories can be tested
// against captured output.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// LocalRunner executes commands on the local host.
type LocalRunner struct {
	Log *slog.Logger
}

// Run executes the command and returns its stdout. Failures to start and
// non-zero exits are returned as *ToolError.
func (r LocalRunner) Run(ctx context.Context, c Command) ([]byte, error) {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if c.Stdin != "" {
		cmd.Stdin = strings.NewReader(c.Stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if c.CombinedOutput {
		cmd.Stderr = &stdout
	} else {
		cmd.Stderr = &stderr
	}

	log.Debug("running command", "command", c.String())
	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		diag := stderr.String()
		if c.CombinedOutput {
			diag = stdout.String()
		}
		return stdout.Bytes(), &ToolError{
			Command:  c.String(),
			ExitCode: exitCode,
			Stderr:   diag,
			Err:      err,
		}
	}

	log.Debug("command finished", "command", c.String(), "bytes", stdout.Len())
	return stdout.Bytes(), nil
}
