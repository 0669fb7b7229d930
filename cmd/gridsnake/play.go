package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in this terminal",
	Long: `Play snake in the current terminal.

Without a variant a menu lets you pick one or browse the high scores.

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Space           - Pause
  R                 - Restart (after game over)
  T                 - Toggle dark/light theme
  L (shift+l)       - Next language
  Esc               - Back to menu (when paused or over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at base speed, speed up with score
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty
  fixed  - Constant tick interval

Examples:
  gridsnake play
  gridsnake play classic
  gridsnake play relaxed --difficulty hard
  gridsnake play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	store := app.OpenStore()
	if store != nil {
		defer store.Close()
	}

	prefs := app.Preferences(store)
	width, height := terminalSize()

	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown variant %q, run 'gridsnake variants' to list them", args[0])
		}
		sess, err := app.NewSession("local", args[0], &prefs, store)
		if err != nil {
			return err
		}
		_, err = tui.Run(sess, store, width, height)
		return err
	}

	variant := ""
	for {
		result, err := tui.RunMenu(prefs, width, height)
		if err != nil {
			return err
		}

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, prefs, variant, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			variant = result.Variant
			sess, err := app.NewSession("local", variant, &prefs, store)
			if err != nil {
				return err
			}
			goBack, err := tui.Run(sess, store, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
		}
	}
}
