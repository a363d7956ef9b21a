package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/terminal-arcade/goldrush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the default game configuration as YAML.

Redirect the output to a file to create a starting point for a custom
config, then pass it to play with --config.

Examples:
  goldrush config > my-goldrush.yaml
  goldrush play --config ./my-goldrush.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}
