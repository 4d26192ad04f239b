package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/whisper-tools/whisper-setup/internal/config"
	"github.com/whisper-tools/whisper-setup/internal/envprobe"
	"github.com/whisper-tools/whisper-setup/internal/verify"
)

var (
	verifyModel  string
	verifyFaster bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the installed transcription library works",
	Long: `Verify an existing installation without changing anything.

Two checks run: importing the package (is it installed at all) and
loading a small reference model (is it functionally usable). The model
is downloaded on first use, so the second check can take a while.

Examples:
  whisper-setup verify
  whisper-setup verify --model tiny.en
  whisper-setup verify --faster-whisper`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyModel, "model", "", "reference model to load (default from config, base.en)")
	verifyCmd.Flags().BoolVar(&verifyFaster, "faster-whisper", false, "verify the faster-whisper package instead")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault()

	prober := envprobe.New()
	prober.PythonBinary = cfg.Python
	py := prober.Python()
	if !py.Present {
		return fmt.Errorf("python not found: %s", py.Detail)
	}

	module := "whisper"
	if verifyFaster {
		module = "faster_whisper"
	}
	model := verifyModel
	if model == "" {
		model = cfg.Model
	}

	checker := verify.New(py.Command)

	fmt.Printf("Checking %s import...\n", module)
	moduleVersion, err := checker.ImportCheck(module)
	if err != nil {
		return err
	}
	fmt.Println(color.GreenString("✓ %s %s imported", module, moduleVersion))

	if verifyFaster {
		return nil
	}

	fmt.Printf("Loading model %q (this may take a while the first time)...\n", model)
	if err := checker.ModelCheck(module, model); err != nil {
		return err
	}
	fmt.Println(color.GreenString("✓ model %s loaded", model))
	return nil
}
