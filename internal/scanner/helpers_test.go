package scanner

import (
	"context"
	"os"
	"testing"
)

func loadTestData(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/" + name)
	if err != nil {
		t.Fatalf("failed to load test data %s: %v", name, err)
	}
	return string(data)
}

// fakeRunner replays canned output keyed by command line and stdin.
type fakeRunner struct {
	outputs map[string]string
	err     error
	calls   []Command
}

func runKey(c Command) string {
	return c.String() + "|" + c.Stdin
}

func (f *fakeRunner) Run(_ context.Context, c Command) ([]byte, error) {
	f.calls = append(f.calls, c)
	if f.err != nil {
		return nil, f.err
	}
	out, ok := f.outputs[runKey(c)]
	if !ok {
		return nil, &ToolError{Command: c.String(), ExitCode: 127, Stderr: "not found"}
	}
	return []byte(out), nil
}
