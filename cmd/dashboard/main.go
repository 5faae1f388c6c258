package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"go-restaurant/api"
	"go-restaurant/config"
	"go-restaurant/dashboard"
	"go-restaurant/ui"
)

func main() {
	// Failures are shown in the session; the developer log goes to stderr.
	logger := log.New(os.Stderr, "[gorestaurant] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := ui.NewApp(os.Stdin, os.Stdout)
	app.Dashboard = dashboard.New(
		api.NewClient(cfg.APIBaseURL, cfg.APITimeout),
		dashboard.WithLogger(logger),
		dashboard.WithNotifier(app.Notifier()),
	)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal(err)
	}
}
