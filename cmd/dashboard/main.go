package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/odyssey-erp/energy-dashboard/internal/app"
	"github.com/odyssey-erp/energy-dashboard/internal/dashboard"
	dashboardhttp "github.com/odyssey-erp/energy-dashboard/internal/dashboard/http"
	"github.com/odyssey-erp/energy-dashboard/internal/energyapi"
	"github.com/odyssey-erp/energy-dashboard/internal/observability"
	"github.com/odyssey-erp/energy-dashboard/internal/view"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	metrics := observability.NewMetrics()
	client := energyapi.NewClient(cfg.EnergyAPIURL, cfg.EnergyAPITimeout)
	controller := dashboard.NewController(logger, client, metrics)
	dashboardHandler := dashboardhttp.NewHandler(logger, controller, templates, cfg.PredictRateLimit)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		DashboardHandler: dashboardHandler,
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
			slog.String("energy_api", cfg.EnergyAPIURL))
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
	for _, canvas := range []dashboard.RegionID{dashboard.RegionHourlyChart, dashboard.RegionDailyChart} {
		controller.Charts().Dispose(canvas)
	}
}
