package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whisper-tools/whisper-setup/internal/config"
	"github.com/whisper-tools/whisper-setup/internal/pyinstall"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the whisper-setup configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the built-in defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.Exists() {
			fmt.Printf("Config already exists at %s\n", config.SavePath())
			return nil
		}
		cfg := config.Default()
		cfg.Packages = pyinstall.DefaultPackages
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Printf("Config written to %s\n", config.SavePath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadOrDefault()

		python := cfg.Python
		if python == "" {
			python = "(auto: python3, python)"
		}
		pip := cfg.Pip
		if pip == "" {
			pip = "(auto: pip3, pip)"
		}
		packages := "(built-in list)"
		if len(cfg.Packages) > 0 {
			packages = strings.Join(cfg.Packages, ", ")
		}

		fmt.Printf("  Config:    %s\n", config.SavePath())
		fmt.Printf("  Python:    %s\n", python)
		fmt.Printf("  pip:       %s\n", pip)
		fmt.Printf("  Model:     %s\n", cfg.Model)
		fmt.Printf("  Packages:  %s\n", packages)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.SavePath())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
