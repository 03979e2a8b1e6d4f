package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hsd-hub/ngo-explorer/internal/admin"
	"github.com/hsd-hub/ngo-explorer/internal/app"
	"github.com/hsd-hub/ngo-explorer/internal/observability"
	"github.com/hsd-hub/ngo-explorer/internal/platform/db"
	"github.com/hsd-hub/ngo-explorer/internal/providers"
	"github.com/hsd-hub/ngo-explorer/internal/view"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		return err
	}

	logger := app.NewLogger(cfg)

	storePath := db.StorePath(cfg.DataDir, cfg.DBFile)
	store, err := db.Open(storePath)
	if err != nil {
		logger.Error("open store", slog.Any("error", err))
		return err
	}
	defer store.Close()

	if err := db.Migrate(ctx, store); err != nil {
		logger.Error("migrate store", slog.Any("error", err))
		return err
	}

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		return err
	}

	repo := providers.NewRepository(store)
	service := providers.NewService(repo)
	providersHandler := providers.NewHandler(logger, service)
	pagesHandler := providers.NewPagesHandler(logger, service, templates)
	adminHandler := admin.NewHandler(logger, storePath, cfg.AdminToken, cfg.MaxUploadSize)
	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		ProvidersHandler: providersHandler,
		PagesHandler:     pagesHandler,
		AdminHandler:     adminHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server",
			slog.String("addr", cfg.AppAddr),
			slog.String("store", storePath))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
	return nil
}
