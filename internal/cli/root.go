package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/whisper-tools/whisper-setup/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "whisper-setup",
	Short:         "Provision Whisper speech-transcription dependencies",
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `whisper-setup installs everything a Whisper transcription environment
needs: the Python package set, the optional faster-whisper backend, and
the ffmpeg system binary.

Typical usage:
  whisper-setup setup                 # install everything
  whisper-setup setup --test          # install, then verify with a model load
  whisper-setup setup --skip-ffmpeg   # Python packages only
  whisper-setup status                # show what is present without installing`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// isInteractive reports whether stdout is a terminal. The confirm TUI
// and the progress bar are both gated on this.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
