// Package envprobe checks the host for the Python runtime and pip.
//
// Both tools are hard preconditions for every installation step, so the
// setup command aborts before touching the host when either probe fails.
// Absence is treated as a fatal configuration problem, not a transient
// fault: there are no retries.
package envprobe

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/whisper-tools/whisper-setup/internal/execx"
)

// ToolStatus reports the availability of one host tool.
type ToolStatus struct {
	Name    string
	Command string // resolved command name, or the preferred candidate when absent
	Present bool
	Version string // first line of the version banner
	Detail  string // diagnostic text when absent
}

// Prober locates host tools and queries their versions.
type Prober struct {
	Run      execx.RunFunc
	LookPath func(string) (string, error)

	// Preferred binary names; empty entries fall back to the defaults.
	PythonBinary string
	PipBinary    string
}

// New returns a Prober backed by the real PATH and process runner.
func New() *Prober {
	return &Prober{Run: execx.Run, LookPath: exec.LookPath}
}

// Python probes for a usable Python interpreter.
func (p *Prober) Python() ToolStatus {
	return p.probe("Python", candidates(p.PythonBinary, "python3", "python"))
}

// Pip probes for the pip package tool.
func (p *Prober) Pip() ToolStatus {
	return p.probe("pip", candidates(p.PipBinary, "pip3", "pip"))
}

func candidates(configured string, defaults ...string) []string {
	if strings.TrimSpace(configured) != "" {
		return []string{strings.TrimSpace(configured)}
	}
	return defaults
}

// probe tries each candidate in order and returns the first one that
// both resolves on PATH and answers its version query.
func (p *Prober) probe(name string, cands []string) ToolStatus {
	for _, cand := range cands {
		if _, err := p.LookPath(cand); err != nil {
			continue
		}
		res := p.Run(cand, "--version")
		if !res.OK {
			continue
		}
		return ToolStatus{
			Name:    name,
			Command: cand,
			Present: true,
			Version: res.FirstLine(),
		}
	}
	return ToolStatus{
		Name:    name,
		Command: cands[0],
		Detail:  fmt.Sprintf("none of %s found in PATH", strings.Join(cands, ", ")),
	}
}

// PythonAtLeast reports whether a "Python X.Y.Z" version banner meets
// the given minimum. Unparseable banners are treated as too old, which
// surfaces as a hard failure rather than a silent pass.
func PythonAtLeast(banner string, major, minor int) bool {
	fields := strings.Fields(banner)
	if len(fields) < 2 {
		return false
	}
	parts := strings.Split(fields[len(fields)-1], ".")
	if len(parts) < 2 {
		return false
	}
	gotMajor, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	gotMinor, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	if gotMajor != major {
		return gotMajor > major
	}
	return gotMinor >= minor
}
