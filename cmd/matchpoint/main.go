package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"matchpoint/internal/config"
	"matchpoint/internal/export"
	gsheet "matchpoint/internal/export/google"
	apphttp "matchpoint/internal/http"
	"matchpoint/internal/ledger"
	applog "matchpoint/internal/log"
)

func main() {
	// Load .env if present; real env wins.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}

	// The session ledger: created empty, lives exactly as long as the process.
	led := ledger.New()

	var sheetsSink export.Sink
	if cfg.SheetsExportEnabled() {
		cli, err := gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Google Sheets export", applog.FieldError, err)
			os.Exit(1)
		}
		sheetsSink = cli
		logger.Info("Google Sheets export enabled",
			"spreadsheet_id", cfg.GoogleSpreadsheetID,
			"sheet", cfg.GoogleSheetName)
	}

	srv := apphttp.NewServer(":"+cfg.Port, led, led, apphttp.Options{
		Prefs: apphttp.Preferences{
			Theme:      cfg.Theme,
			Language:   cfg.Language,
			Currency:   cfg.CurrencySymbol,
			PlayerName: cfg.PlayerName,
		},
		SheetsSink:         sheetsSink,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting matchpoint server", "port", cfg.Port, "sheets_export", sheetsSink != nil)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
