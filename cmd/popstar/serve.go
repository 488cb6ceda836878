package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/popstar/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PopStar SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the board picker.
Scores are stored per server, so all users share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.popstar/host_key

Examples:
  popstar serve                           # Listen on :23234 with auto-generated key
  popstar serve --ssh :2222               # Listen on port 2222
  popstar serve --host-key ./my_host_key  # Use specific host key
  popstar serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		TickRate:    tickRate(),
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("popstar-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting PopStar SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
