package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mcoot/mockify/internal/api"
	"github.com/mcoot/mockify/internal/config"
	"github.com/mcoot/mockify/internal/factory"
	"github.com/mcoot/mockify/internal/web"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Create application factory
	app, err := factory.New(factory.ConfigFromServer(cfg, logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		Interviewer: app.Interviewer,
		Analyzer:    app.Analysis,
		Resumes:     app.Resume,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:    logger,
		Storage:   app.Storage,
		Clock:     app.Clock,
		Client:    cfg.Web,
		StaticDir: findStaticDir(),
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.Port
	server := api.NewServer(mux, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.StorageType),
		slog.String("ai_mode", string(app.Interviewer.DefaultMode())),
		slog.String("web_api_base_url", cfg.Web.APIBaseURL),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if err := app.Close(); err != nil {
		logger.Warn("failed to close storage", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}

// findStaticDir returns the static files directory when one exists
func findStaticDir() string {
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}
