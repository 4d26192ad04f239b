// Package pyinstall installs Python packages through pip.
//
// Installation is best-effort: a failed package is retried exactly once
// with pip's upgrade variant, then reported as a warning. The bulk
// installer never aborts the list on individual failures.
package pyinstall

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/whisper-tools/whisper-setup/internal/execx"
)

// DefaultPackages is the ordered dependency list for openai-whisper.
var DefaultPackages = []string{
	"torch",
	"numpy",
	"tqdm",
	"more-itertools",
	"transformers>=4.19.0",
	"ffmpeg-python",
	"setuptools-rust",
	"openai-whisper",
}

// FasterWhisperPackage is the single package for the accelerated backend.
const FasterWhisperPackage = "faster-whisper"

// Outcome records the result of installing one package.
type Outcome struct {
	Package  string
	OK       bool
	Fallback bool // the --upgrade retry was the invocation that succeeded
	Detail   string
}

// Installer drives pip in non-interactive mode.
type Installer struct {
	Pip      string
	Run      execx.RunFunc
	Progress bool // render a progress bar across bulk installs
}

// New returns an Installer for the given pip command.
func New(pip string) *Installer {
	return &Installer{Pip: pip, Run: execx.Run}
}

// Install installs a single package. On failure it attempts exactly one
// fallback with the upgrade variant before giving up.
func (i *Installer) Install(pkg string) Outcome {
	res := i.Run(i.Pip, "install", pkg)
	if res.OK {
		return Outcome{Package: pkg, OK: true}
	}

	retry := i.Run(i.Pip, "install", "--upgrade", pkg)
	if retry.OK {
		return Outcome{Package: pkg, OK: true, Fallback: true}
	}

	detail := retry.ErrorDetail()
	if detail == "" {
		detail = res.ErrorDetail()
	}
	if detail == "" {
		detail = "install failed"
	}
	return Outcome{Package: pkg, Detail: detail}
}

// InstallAll installs every package in order, one at a time, and
// reports the per-package outcomes. Failures are narrated as warnings
// and do not stop the loop.
func (i *Installer) InstallAll(pkgs []string) []Outcome {
	var bar *progressbar.ProgressBar
	if i.Progress {
		bar = progressbar.NewOptions(len(pkgs),
			progressbar.OptionSetDescription("installing"),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	outcomes := make([]Outcome, 0, len(pkgs))
	for _, pkg := range pkgs {
		fmt.Printf("Installing %s...\n", pkg)
		out := i.Install(pkg)
		if out.OK {
			if out.Fallback {
				fmt.Println(color.GreenString("✓ %s installed (via upgrade)", pkg))
			} else {
				fmt.Println(color.GreenString("✓ %s installed", pkg))
			}
		} else {
			fmt.Println(color.YellowString("Warning: failed to install %s: %s", pkg, firstLineOf(out.Detail)))
		}
		if bar != nil {
			bar.Add(1)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// Failed filters the outcomes down to the packages that did not install.
func Failed(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, out := range outcomes {
		if !out.OK {
			failed = append(failed, out)
		}
	}
	return failed
}

func firstLineOf(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
