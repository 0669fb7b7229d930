package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/web"
	"github.com/vovakirdan/gridsnake/internal/session"
)

var (
	flagWebAddr  string
	flagMaxGames int
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the JSON HTTP API",
	Long: `Start an HTTP server that runs games on the server.

Routes:
  POST   /api/games                {"variant":"classic"}
  GET    /api/games/:id
  POST   /api/games/:id/direction  {"direction":"left"}
  POST   /api/games/:id/pause
  POST   /api/games/:id/restart
  DELETE /api/games/:id
  GET    /api/scores/:variant?limit=N
  GET    /api/stats
  GET    /api/variants
  GET    /healthz

With --seed N the first game is seeded with N, the second with N+1 and so on,
so a replayed sequence of requests sees the same food placement.

The listen address defaults to :$PORT when PORT is set (a .env file is read
on startup), else :8080.

Examples:
  gridsnake web
  gridsnake web --addr 127.0.0.1:9000 --max-games 50`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address (default :$PORT or :8080)")
	webCmd.Flags().IntVar(&flagMaxGames, "max-games", 100, "Maximum concurrent games (0 = unlimited)")
}

func webAddr() string {
	if flagWebAddr != "" {
		return flagWebAddr
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

func runWeb(_ *cobra.Command, _ []string) error {
	store := app.OpenStore()
	if store != nil {
		defer store.Close()
	}

	build := func(id, variant string) (*session.Session, error) {
		prefs := app.Config.Preferences
		return app.NewSession(id, variant, &prefs, store)
	}
	manager := session.NewManager(build, flagMaxGames, app.Logger)
	defer manager.Close()

	server := web.NewServer(web.Config{
		Addr:           webAddr(),
		DefaultVariant: app.Config.Variant(),
	}, manager, store, app.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
