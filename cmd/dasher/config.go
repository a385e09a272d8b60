package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dapper-dasher/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.dasher/configs/dasher.yaml or ./configs/dasher.yaml and edit
it to change the game. Changes are picked up on the next restart of a run.

Examples:
  dasher config > configs/dasher.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
