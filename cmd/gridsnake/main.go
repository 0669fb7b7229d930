// gridsnake is the classic grid snake game for the terminal, SSH and HTTP.
//
// Usage:
//
//	gridsnake play [variant]   - Play in this terminal (menu if no variant)
//	gridsnake serve            - Start the SSH server
//	gridsnake web              - Start the HTTP API
//	gridsnake scores [variant] - Show high scores
//	gridsnake variants         - List variants
//	gridsnake config           - Print the effective configuration
//
// Global flags:
//
//	--seed <value>         - RNG seed for reproducible food placement
//	--db <path>            - Scores database (default: ~/.gridsnake/scores.db)
//	--config <path>        - Custom YAML config
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	_ "github.com/vovakirdan/gridsnake/internal/games/snake"
)

const defaultDBPath = "~/.gridsnake/scores.db"

var (
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

// app holds what every command needs after flag parsing.
var app *App

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Grid snake - the classic snake game in your terminal",
	Long: `gridsnake is the classic snake game on a 20x20 grid.

Play it locally, host it over SSH, or drive it through a JSON HTTP API.

Examples:
  gridsnake play
  gridsnake play relaxed --difficulty hard
  gridsnake serve --ssh :2222
  gridsnake web --addr :8080
  gridsnake scores classic`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed, incremented per game (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database (env GRIDSNAKE_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML (env GRIDSNAKE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env, builds the logger and resolves the configuration.
// Explicit flags win over environment variables.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env file is normal.
	_ = godotenv.Load()

	flags := cmd.Flags()
	if !flags.Changed("db") {
		if v := os.Getenv("GRIDSNAKE_DB"); v != "" {
			flagDBPath = v
		}
	}
	if !flags.Changed("config") {
		if v := os.Getenv("GRIDSNAKE_CONFIG"); v != "" {
			flagConfig = v
		}
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridsnake",
		Level:           level,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg.ApplyPreset(preset)

	app = NewApp(cfg, logger, flagDBPath, flagSeed)
	logger.Debug("configuration loaded",
		"board", cfg.Board.Size,
		"tick_ms", cfg.Timing.TickMs,
		"collision", cfg.Rules.Collision,
		"difficulty", preset,
	)
	return nil
}
