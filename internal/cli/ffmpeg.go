package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/whisper-tools/whisper-setup/internal/ffmpeg"
)

var ffmpegCmd = &cobra.Command{
	Use:   "ffmpeg",
	Short: "Install the ffmpeg binary for this platform",
	Long: `Install ffmpeg through the platform's native package manager.

Debian/Ubuntu and Arch installs run unattended (via sudo). macOS
requires Homebrew to be present already. Windows and other platforms
get manual instructions; no automated path exists there.

If ffmpeg already responds to 'ffmpeg -version', nothing is installed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !ffmpeg.New().Ensure() {
			fmt.Fprintln(os.Stderr, "Error: ffmpeg is not installed")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ffmpegCmd)
}
