package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/whisper-tools/whisper-setup/internal/config"
	"github.com/whisper-tools/whisper-setup/internal/envprobe"
	"github.com/whisper-tools/whisper-setup/internal/ffmpeg"
	"github.com/whisper-tools/whisper-setup/internal/platform"
	"github.com/whisper-tools/whisper-setup/internal/verify"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every transcription dependency",
	Long: `Probe the host for Python, pip, ffmpeg, and the whisper package
without installing anything, and print a status table.

Exits non-zero when Python or pip is missing, since no installation
can proceed without them.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type statusRow struct {
	tool    string
	present bool
	version string
	note    string
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault()
	prober := envprobe.New()
	prober.PythonBinary = cfg.Python
	prober.PipBinary = cfg.Pip

	py := prober.Python()
	pip := prober.Pip()

	rows := []statusRow{
		{tool: "Python", present: py.Present, version: py.Version, note: py.Detail},
		{tool: "pip", present: pip.Present, version: pip.Version, note: pip.Detail},
	}

	category := platform.Detect()
	ffmpegPresent := ffmpeg.New().Installed()
	ffmpegRow := statusRow{tool: "ffmpeg", present: ffmpegPresent}
	if !ffmpegPresent {
		ffmpegRow.note = fmt.Sprintf("run 'whisper-setup ffmpeg' (%s)", category)
	}
	rows = append(rows, ffmpegRow)

	whisperRow := statusRow{tool: "whisper"}
	if py.Present {
		checker := verify.New(py.Command)
		if moduleVersion, err := checker.ImportCheck("whisper"); err == nil {
			whisperRow.present = true
			whisperRow.version = moduleVersion
		} else {
			whisperRow.note = "run 'whisper-setup setup'"
		}
	} else {
		whisperRow.note = "needs Python"
	}
	rows = append(rows, whisperRow)

	fmt.Printf("Platform: %s\n\n", category)
	fmt.Println(renderStatusTable(rows))

	if !ffmpegPresent {
		plan := platform.PlanFor(category)
		if !plan.Automated() {
			fmt.Println()
			for _, line := range plan.Guidance {
				fmt.Println(line)
			}
		}
	}

	if !py.Present || !pip.Present {
		fmt.Println()
		fmt.Println(color.RedString("Mandatory tools are missing; setup cannot run."))
		return fmt.Errorf("missing mandatory tools")
	}
	return nil
}
