package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/popstar/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board interactively",
	Long: `Opens the board picker. Select a board to play it, press Tab for
the scoreboard and Esc in a game to return to the picker.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	if err := tui.RunSession(store, terminalConfig(), tui.GameOptions{
		Sound:  sound,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
