package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the built-in default configuration.

Redirect it to a file to start customizing:

  runner config > ~/.runner/configs/runner.yaml

The loader picks up, in order: --config path, ~/.runner/configs/runner.yaml,
./configs/runner.yaml, then the built-in defaults.`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	fmt.Print(string(config.DefaultRunnerYAML()))
}
