// cmd/api-server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-finder/internal/cli"
	"restaurant-finder/internal/common/config"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/common/observability"
	"restaurant-finder/internal/common/places"
	"restaurant-finder/internal/common/store"
	"restaurant-finder/internal/router"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		fmt.Fprint(os.Stderr, cli.Usage)
		os.Exit(2)
	}

	switch opts.Type {
	case cli.CommandHelp:
		fmt.Print(cli.Usage)
	case cli.CommandVersion:
		fmt.Printf("restaurant-finder %s\n", version)
	case cli.CommandServe:
		if err := serve(opts); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}
}

func loadConfig(opts *cli.Options) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.LoadFromFile(opts.ConfigPath)
	}
	return config.Load()
}

func serve(opts *cli.Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	if opts.Port != 0 {
		cfg.Server.Port = opts.Port
	}
	if cfg.App.Version == "" || cfg.App.Version == "dev" {
		cfg.App.Version = version
	}

	zapLog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting restaurant finder api",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Warn("otel metrics disabled", zap.Error(err))
	}

	tracing, err := observability.NewTracing(cfg.Tracing, cfg.App.Version)
	if err != nil {
		zapLog.Warn("tracing disabled", zap.Error(err))
	} else if tracing.Enabled() {
		zapLog.Info("tracing enabled", zap.String("endpoint", cfg.Tracing.JaegerEndpoint))
	}

	engine := router.NewRouter(router.Dependencies{
		Config:        cfg,
		Places:        places.NewClient(cfg.Places),
		Liked:         store.NewLikedSet(),
		Logger:        log,
		Observability: obs,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	serverErr := make(chan error, 1)
	go func() {
		zapLog.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case sig := <-sigCh:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("http server shutdown failed", zap.Error(err))
	}
	if tracing != nil {
		if err := tracing.Shutdown(ctx); err != nil {
			zapLog.Warn("tracer shutdown failed", zap.Error(err))
		}
	}
	if err := obs.Shutdown(ctx); err != nil {
		zapLog.Warn("meter provider shutdown failed", zap.Error(err))
	}

	zapLog.Info("shutdown complete")
	return nil
}
