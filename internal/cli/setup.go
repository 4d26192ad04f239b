package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/whisper-tools/whisper-setup/internal/config"
	"github.com/whisper-tools/whisper-setup/internal/envprobe"
	"github.com/whisper-tools/whisper-setup/internal/ffmpeg"
	"github.com/whisper-tools/whisper-setup/internal/pyinstall"
	"github.com/whisper-tools/whisper-setup/internal/verify"
)

var (
	// Setup flags
	setupSkipFFmpeg    bool
	setupTest          bool
	setupFasterWhisper bool
	setupYes           bool
)

// setupOptions is the resolved set of choices for one setup run.
type setupOptions struct {
	SkipFFmpeg    bool
	Test          bool
	FasterWhisper bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install Whisper dependencies",
	Long: `Install the Whisper dependency set.

This command will:
  - Check that Python (3.8+) and pip are available
  - Install ffmpeg via the platform's package manager (unless skipped)
  - Install the Python package list, one package at a time
  - Optionally verify the result by importing whisper and loading a model

Python and pip must already be present; their absence aborts the run.
Individual package failures are warnings, not fatal errors.

Examples:
  whisper-setup setup                     # interactive confirmation, then install
  whisper-setup setup -y                  # no confirmation screen
  whisper-setup setup --test              # verify with a model load afterwards
  whisper-setup setup --faster-whisper    # install the accelerated backend instead`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := setupOptions{
			SkipFFmpeg:    setupSkipFFmpeg,
			Test:          setupTest,
			FasterWhisper: setupFasterWhisper,
		}

		if !setupYes && isInteractive() {
			confirmed, chosen, err := runSetupTUI(opts)
			if err == nil {
				if !confirmed {
					fmt.Println("Setup cancelled.")
					return
				}
				opts = chosen
			}
			// A TUI failure (odd terminal, etc.) falls through to a plain run.
		}

		if code := runSetup(opts); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	setupCmd.Flags().BoolVar(&setupSkipFFmpeg, "skip-ffmpeg", false, "skip ffmpeg installation")
	setupCmd.Flags().BoolVar(&setupTest, "test", false, "verify the installation afterwards")
	setupCmd.Flags().BoolVar(&setupFasterWhisper, "faster-whisper", false, "install faster-whisper instead of the openai-whisper package set")
	setupCmd.Flags().BoolVarP(&setupYes, "yes", "y", false, "skip the interactive confirmation screen")
	rootCmd.AddCommand(setupCmd)
}

// runSetup sequences the provisioning steps and returns the process
// exit code: 0 for success or partial success, 1 when a mandatory
// precondition fails or an explicitly requested verification fails.
func runSetup(opts setupOptions) int {
	cfg := config.LoadOrDefault()
	sum := &setupSummary{}

	// Environment probe. Absence of either tool is fatal: nothing has
	// been installed yet, so we stop before touching the host.
	fmt.Println("Checking Python environment...")
	prober := envprobe.New()
	prober.PythonBinary = cfg.Python
	prober.PipBinary = cfg.Pip

	py := prober.Python()
	if !py.Present {
		fmt.Println(color.RedString("✗ Python not found: %s", py.Detail))
		sum.add("Python runtime", stateFail, py.Detail)
		sum.print()
		return 1
	}
	fmt.Println(color.GreenString("✓ %s (%s)", py.Version, py.Command))
	if !envprobe.PythonAtLeast(py.Version, 3, 8) {
		fmt.Println(color.RedString("✗ Python 3.8 or higher is required"))
		sum.add("Python runtime", stateFail, fmt.Sprintf("%s is too old (need 3.8+)", py.Version))
		sum.print()
		return 1
	}
	sum.add("Python runtime", stateOK, py.Version)

	pip := prober.Pip()
	if !pip.Present {
		fmt.Println(color.RedString("✗ pip not found: %s", pip.Detail))
		sum.add("pip", stateFail, pip.Detail)
		sum.print()
		return 1
	}
	fmt.Println(color.GreenString("✓ %s (%s)", pip.Version, pip.Command))
	sum.add("pip", stateOK, pip.Version)

	// ffmpeg. Optional: failure degrades the outcome, never aborts it.
	if opts.SkipFFmpeg {
		sum.add("ffmpeg", stateSkipped, "skipped by flag")
	} else {
		fmt.Println()
		fmt.Println("Checking ffmpeg...")
		if ffmpeg.New().Ensure() {
			sum.add("ffmpeg", stateOK, "")
		} else {
			sum.add("ffmpeg", stateWarn, "not installed; see instructions above")
		}
	}

	// Python packages, strictly one at a time, best-effort. Installs go
	// through the same .venv-aware resolution verification uses, so
	// both steps target one environment.
	installer := pyinstall.New(verify.ResolvePip(pip.Command))
	installer.Progress = isInteractive()

	var packages []string
	if opts.FasterWhisper {
		fmt.Println()
		fmt.Println("Installing faster-whisper for improved transcription performance...")
		packages = []string{pyinstall.FasterWhisperPackage}
	} else {
		fmt.Println()
		fmt.Println("Installing Whisper dependencies...")
		packages = cfg.Packages
		if len(packages) == 0 {
			packages = pyinstall.DefaultPackages
		}
	}

	outcomes := installer.InstallAll(packages)
	if failed := pyinstall.Failed(outcomes); len(failed) > 0 {
		sum.add("Python packages", stateWarn, fmt.Sprintf("%d of %d failed", len(failed), len(outcomes)))
		if opts.FasterWhisper {
			printManualPipSteps()
		}
	} else {
		sum.add("Python packages", stateOK, fmt.Sprintf("%d installed", len(outcomes)))
	}

	checker := verify.New(py.Command)
	module := "whisper"
	if opts.FasterWhisper {
		module = "faster_whisper"
	}

	// tiktoken can be missed when the openai-whisper install fails
	// partway; install it directly when the import check fails. It
	// needs a Rust toolchain to build from source on platforms without
	// wheels, so a failed install gets the Rust hint.
	if !opts.FasterWhisper {
		if checker.ModulePresent("tiktoken") {
			fmt.Println("tiktoken is already installed")
		} else {
			fmt.Println("Installing tiktoken...")
			if out := installer.Install("tiktoken"); out.OK {
				fmt.Println(color.GreenString("✓ tiktoken installed"))
			} else {
				fmt.Println(color.YellowString("Warning: failed to install tiktoken: %s", out.Detail))
				printTiktokenHint()
			}
		}
	}

	// Verification. Advisory unless explicitly requested: a check the
	// user asked for that fails should not report success.
	if opts.Test {
		fmt.Println()
		fmt.Println("Verifying installation...")
		runVerification(checker, module, cfg.Model, opts.FasterWhisper, sum)
	} else {
		sum.add("Verification", stateSkipped, "not requested")
	}

	sum.print()
	if opts.FasterWhisper && sum.exitCode() == 0 {
		printFasterWhisperBenefits()
	}
	return sum.exitCode()
}

// runVerification performs the import check and, for the standard
// whisper package, the deeper model-load check.
func runVerification(checker *verify.Checker, module, model string, fasterWhisper bool, sum *setupSummary) {
	moduleVersion, err := checker.ImportCheck(module)
	if err != nil {
		fmt.Println(color.RedString("✗ %v", err))
		sum.add("Verification", stateFail, fmt.Sprintf("%s is not importable", module))
		return
	}
	fmt.Println(color.GreenString("✓ %s %s imported", module, moduleVersion))

	if fasterWhisper {
		// The accelerated backend downloads models lazily per use; the
		// import check is the whole smoke test.
		sum.add("Verification", stateOK, fmt.Sprintf("%s %s", module, moduleVersion))
		return
	}

	fmt.Printf("Loading model %q (this may take a while the first time)...\n", model)
	if err := checker.ModelCheck(module, model); err != nil {
		fmt.Println(color.RedString("✗ %v", err))
		sum.add("Verification", stateFail, "import ok, model load failed")
		return
	}
	fmt.Println(color.GreenString("✓ model %s loaded", model))
	sum.add("Verification", stateOK, fmt.Sprintf("%s %s, model %s", module, moduleVersion, model))
}

func printTiktokenHint() {
	fmt.Println("tiktoken may need a Rust toolchain to build from source.")
	fmt.Println("Install Rust first, then retry: pip install tiktoken")
	fmt.Println("  https://rustup.rs/")
}

func printManualPipSteps() {
	fmt.Println()
	fmt.Println("Manual installation steps:")
	fmt.Println("  1. Run: pip install faster-whisper")
	fmt.Println("  2. If that fails, try: pip install --user faster-whisper")
}

func printFasterWhisperBenefits() {
	fmt.Println()
	fmt.Println("Performance benefits:")
	fmt.Println("  - 3-5x faster transcription speed")
	fmt.Println("  - Lower memory usage")
	fmt.Println("  - Better GPU utilization (if available)")
}
