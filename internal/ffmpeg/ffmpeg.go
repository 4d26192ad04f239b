// Package ffmpeg provisions the ffmpeg binary for the host platform.
package ffmpeg

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/whisper-tools/whisper-setup/internal/execx"
	"github.com/whisper-tools/whisper-setup/internal/platform"
)

// Installer installs ffmpeg via the host's native package manager.
type Installer struct {
	Run      execx.RunFunc
	LookPath func(string) (string, error)
	Category platform.Category
}

// New returns an Installer for the detected host platform.
func New() *Installer {
	return &Installer{
		Run:      execx.Run,
		LookPath: execx.LookPath,
		Category: platform.Detect(),
	}
}

// Installed reports whether ffmpeg already answers its version flag.
// This is the idempotence check: a present binary means Ensure performs
// zero installation invocations.
func (i *Installer) Installed() bool {
	if _, err := i.LookPath("ffmpeg"); err != nil {
		return false
	}
	return i.Run("ffmpeg", "-version").OK
}

// Ensure makes ffmpeg available, installing it when necessary.
// It reports whether ffmpeg is usable after the call. Failures never
// abort the surrounding setup; the caller decides how much they matter.
func (i *Installer) Ensure() bool {
	if i.Installed() {
		fmt.Println("ffmpeg is already installed")
		return true
	}
	fmt.Println("ffmpeg is not installed")

	plan := platform.PlanFor(i.Category)

	if plan.Prerequisite != "" {
		if _, err := i.LookPath(plan.Prerequisite); err != nil {
			printLines(plan.PrereqGuidance)
			return false
		}
	}

	if !plan.Automated() {
		printLines(plan.Guidance)
		return false
	}

	fmt.Printf("Installing ffmpeg (%s)...\n", plan.Category)
	for _, step := range plan.Steps {
		fmt.Printf("  Running %s...\n", step.Name)
		res := i.Run(step.Command, step.Args...)
		if !res.OK {
			if detail := res.ErrorDetail(); detail != "" {
				fmt.Println(color.RedString("  %s failed: %s", step.Name, detail))
			} else {
				fmt.Println(color.RedString("  %s failed", step.Name))
			}
			printLines(plan.Guidance)
			return false
		}
	}

	fmt.Println(color.GreenString("✓ ffmpeg installed"))
	return true
}

func printLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}
