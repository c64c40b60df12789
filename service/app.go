package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkpress/app/config"
	"inkpress/app/controllers"
	"inkpress/app/repositories"
	"inkpress/app/routes"
	"inkpress/app/services"
)

// shutdownTimeout bounds how long in-flight requests may take after a
// shutdown signal.
const shutdownTimeout = 30 * time.Second

// RunAppServer starts the blog API server and blocks until SIGINT or SIGTERM.
func RunAppServer(args []string) int {
	flags := newCommandFlags("serve")
	cfg, err := flags.parse(args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	logger, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := Serve(ctx, cfg, nil); err != nil {
		slog.Error("server error", "error", err)
		return 1
	}
	return 0
}

// Serve opens the store, seeds it if configured and serves HTTP until ctx is
// done. ready, if not nil, receives the listening address.
func Serve(ctx context.Context, cfg *config.Config, ready func(addr string)) error {
	store, err := openStore(cfg.Storage)
	if err != nil {
		return err
	}
	repo := repositories.NewRepository(store)
	defer repo.Close()

	if cfg.Storage.Seed {
		seeded, err := services.NewPostService(repositories.NewJSONPostRepository(repo)).SeedSamples()
		if err != nil {
			return err
		}
		if seeded {
			slog.Info("seeded sample posts")
		}
	}

	router := routes.SetupRoutes(repo, routes.Options{
		APIPrefix: cfg.Server.APIPrefix,
		Site: controllers.Site{
			Title:       cfg.Site.Title,
			URL:         cfg.Site.URL,
			Description: cfg.Site.Description,
		},
	})

	listener, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Addr, err)
	}

	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	slog.Info("blog service started",
		"addr", listener.Addr().String(),
		"api_prefix", cfg.Server.APIPrefix,
		"backend", cfg.Storage.Backend,
		"data", cfg.Storage.Path(),
	)
	if ready != nil {
		ready(listener.Addr().String())
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
