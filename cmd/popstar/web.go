package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/popstar/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the PopStar HTTP/websocket server",
	Long: `Start an HTTP server for browser clients.

Endpoints:
  GET /api/games          - Boards with their sizes
  GET /api/scores/:game   - Top scores (?limit=N)
  GET /ws/:game           - Websocket play session (?player=name)

Clients send {"type":"select","row":R,"col":C} or {"type":"reset"} and
receive a snapshot after every change.

Examples:
  popstar web
  popstar web --addr :9000 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := appConfig
	cfg.Timing.TickRate = tickRate()

	srv := web.NewServer(web.Options{
		Address: flagWebAddr,
		Config:  cfg,
		Store:   store,
		Logger:  logger.WithPrefix("popstar-web"),
		Seed:    flagSeed,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting PopStar web server on %s\n", flagWebAddr)
	fmt.Println("Press Ctrl+C to stop")

	return srv.ListenAndServe(ctx)
}
