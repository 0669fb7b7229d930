package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after the search order, .env and flags are applied.

Search order: --config, ~/.gridsnake/config.yaml, ./configs/snake.yaml, built-in default.

Examples:
  gridsnake config > ~/.gridsnake/config.yaml
  gridsnake config --difficulty hard`,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.Marshal(app.Config)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}
