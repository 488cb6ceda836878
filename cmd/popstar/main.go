// popstar is the PopStar tile-matching puzzle for the terminal, SSH and the
// browser.
//
// Usage:
//
//	popstar list              - List available boards
//	popstar play [board]      - Play a board (default: popstar)
//	popstar menu              - Pick a board interactively
//	popstar scores <board>    - Show high scores for a board
//	popstar serve             - Start SSH server for remote play
//	popstar web               - Start HTTP/websocket server
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: timing.tick_rate from config)
//	--seed <value>        - RNG seed for reproducible boards
//	--db <path>           - Database path (default: ~/.popstar/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/popstar/internal/config"
	"github.com/vovakirdan/popstar/internal/games/popstar"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagMute       bool
)

var (
	logger    *log.Logger
	appConfig config.PopstarConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "popstar",
	Short: "PopStar - pop groups of same-colored stars",
	Long: `PopStar is a tile-matching puzzle. Select a group of two or more
orthogonally connected stars of the same color to pop them. A group of n
stars scores n*n. When no group is left, the board clears itself column by
column and play continues.

Available commands:
  list     - Show all available boards
  play     - Play a board directly
  menu     - Interactive board picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  web      - Start HTTP/websocket server

Examples:
  popstar play
  popstar play popstar_mini --difficulty easy
  popstar menu
  popstar serve --ssh :2222
  popstar web --addr :8080`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = timing.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.popstar/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable explosion sounds")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}

// setup validates the global flags, creates the logger and loads the config
// every command shares.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "popstar",
		Level:           level,
	})

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	// An explicit --config must load; the search path falls back silently.
	cfg, err := config.LoadPopstar(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPopstarPreset(&cfg, preset)
	appConfig = cfg

	popstar.SetConfigPath(flagConfig)
	popstar.SetDifficultyPreset(string(preset))

	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Rows, cfg.Board.Cols),
		"palette", cfg.Board.PaletteSize,
		"difficulty", preset,
	)
	return nil
}
