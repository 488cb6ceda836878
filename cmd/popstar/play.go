package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/popstar/internal/platform/tui"
	"github.com/vovakirdan/popstar/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board (default: popstar).

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Enter/Space       - Pop the group under the cursor
  Mouse click       - Pop the clicked group
  P                 - Pause
  R                 - New board
  Ctrl+S            - Save screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Four colors, large groups
  normal - Palette from config
  hard   - One extra color

Examples:
  popstar play
  popstar play popstar_mini
  popstar play --difficulty hard
  popstar play --seed 42 --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "popstar"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q, run 'popstar list' to see available boards", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating board: %w", err)
	}

	restore := logToFile()
	defer restore()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sound := newSound()
	if sound != nil {
		defer sound.Cleanup()
	}

	logger.Info("starting game", "game", gameID, "seed", flagSeed)
	if err := tui.Run(game, store, terminalConfig(), tui.GameOptions{
		Sound:  sound,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
