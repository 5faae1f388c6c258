package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-restaurant/config"
	"go-restaurant/controllers"
	"go-restaurant/routes"
	"go-restaurant/store"
)

func main() {
	logger := log.New(os.Stdout, "[gorestaurant] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage
	foods, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer closeStore()

	if cfg.SeedFile != "" {
		if err := seed(ctx, foods, cfg.SeedFile, logger); err != nil {
			logger.Fatal(err)
		}
	}

	// Setup routes
	r := routes.SetupRoutes(controllers.NewFoodController(foods, logger), logger)
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}()

	logger.Printf("serving /foods on :%s with the %s store", cfg.Port, cfg.StoreDriver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(err)
	}
}

func seed(ctx context.Context, foods store.FoodStore, path string, logger *log.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	n, err := store.Seed(ctx, foods, f)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Printf("seeded %d foods from %s", n, path)
	}
	return nil
}
