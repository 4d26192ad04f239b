// Package execx runs external commands and captures their outcome.
//
// Every provisioning step in whisper-setup is a "run a command, look at
// the result" operation. Result carries everything a caller needs to
// decide what to do next: whether the process exited zero, and whatever
// it wrote to stdout and stderr.
package execx

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Result holds the outcome of a single external command invocation.
type Result struct {
	OK     bool
	Stdout string
	Stderr string
	Err    error
}

// RunFunc matches Run's signature so callers can swap the runner in tests.
type RunFunc func(name string, args ...string) Result

// LookPath resolves a binary on PATH. Swappable in tests.
var LookPath = exec.LookPath

// Run executes a command with captured output and no stdin.
func Run(name string, args ...string) Result {
	return RunContext(context.Background(), name, args...)
}

// RunContext executes a command with captured output and no stdin.
// Package-manager invocations are given no deadline: a hung installer
// blocks until it finishes, matching the tool's sequential model.
func RunContext(ctx context.Context, name string, args ...string) Result {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = nil

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return Result{
		OK:     err == nil,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    err,
	}
}

// FirstLine returns the first non-empty output line, preferring stdout.
// Version queries are the main consumer; some tools (older Pythons
// included) print their version banner to stderr.
func (r Result) FirstLine() string {
	out := strings.TrimSpace(r.Stdout)
	if out == "" {
		out = strings.TrimSpace(r.Stderr)
	}
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		out = out[:i]
	}
	return strings.TrimSpace(out)
}

// ErrorDetail returns the most useful diagnostic text from a failed run:
// trimmed stderr when present, otherwise the process error itself.
func (r Result) ErrorDetail() string {
	if detail := strings.TrimSpace(r.Stderr); detail != "" {
		return detail
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return ""
}
