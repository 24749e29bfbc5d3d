package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafe-pos/internal/catalog"
	"cafe-pos/internal/config"
	"cafe-pos/internal/handler"
	"cafe-pos/internal/metrics"
	"cafe-pos/internal/model"
	"cafe-pos/internal/order"
	"cafe-pos/internal/receipt"
	"cafe-pos/internal/router"
	"cafe-pos/internal/scheduler"
	"cafe-pos/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting cafe-pos API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()
	sched := scheduler.New()
	history := order.NewHistory()

	// Load both menus, from S3 when enabled with local files as fallback
	loader := newCatalogLoader(ctx, cfg.Catalog, logger)

	kioskItems, err := catalog.LoadSource(ctx, loader, catalog.Source{
		Path:     cfg.Catalog.KioskFile,
		Seed:     catalog.KioskSeed,
		Validate: catalog.ValidateKiosk,
	})
	if err != nil {
		return fmt.Errorf("failed to load kiosk catalog: %w", err)
	}

	terminalItems, err := catalog.LoadSource(ctx, loader, catalog.Source{
		Path:     cfg.Catalog.TerminalFile,
		Seed:     catalog.TerminalSeed,
		Validate: catalog.ValidateTerminal,
	})
	if err != nil {
		return fmt.Errorf("failed to load terminal menu: %w", err)
	}

	logger.Info().
		Int("kiosk_items", len(kioskItems)).
		Int("terminal_items", len(terminalItems)).
		Msg("catalogs loaded")

	kioskMenu := catalog.NewKioskMenu(kioskItems)
	terminalMenu := catalog.NewMenu(terminalItems, catalog.ValidateItem)

	// Receipt output
	printers, err := newPrinters(ctx, cfg.Receipt, logger)
	if err != nil {
		return err
	}
	formatter := receipt.DefaultFormatter()
	formatter.StoreName = cfg.Receipt.StoreName
	formatter.Footer = "Thank you for choosing " + cfg.Receipt.StoreName
	formatter.Currency = map[model.Channel]string{
		model.ChannelKiosk:    cfg.Kiosk.Currency,
		model.ChannelTerminal: cfg.Terminal.Currency,
	}
	dispatcher := receipt.NewDispatcher(formatter, printers, m, logger)

	// Initialize services
	kioskService := service.NewKioskService(kioskMenu, history, sched, service.KioskOptions{
		TaxRate:        cfg.Kiosk.TaxRate,
		AddedIndicator: cfg.Kiosk.AddedIndicator,
		ReturnToMenu:   cfg.Kiosk.ReturnToMenu,
	}, m, logger)
	terminalService := service.NewTerminalService(terminalMenu, history, dispatcher, receipt.NewLogDrawer(logger), sched, service.TerminalOptions{
		TaxRate:     cfg.Terminal.TaxRate,
		DrawerDelay: cfg.Terminal.DrawerDelay,
		AutoPrint:   cfg.Terminal.AutoPrint,
	}, m, logger)
	menuService := service.NewMenuService(terminalMenu, logger)

	// Initialize router
	mux := router.New(router.Handlers{
		Kiosk:    handler.NewKioskHandler(kioskService, logger),
		Terminal: handler.NewTerminalHandler(terminalService, logger),
		Menu:     handler.NewMenuHandler(menuService, logger),
	}, m, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Int("orders", history.Len()).Msg("server shutdown completed")
	}

	return nil
}

// newCatalogLoader returns a local file loader, fronted by S3 when enabled.
func newCatalogLoader(ctx context.Context, cfg config.CatalogConfig, logger zerolog.Logger) catalog.Loader {
	fileLoader := catalog.NewFileLoader(logger)
	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for catalog files (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 catalog loader, falling back to local file system only")
		return fileLoader
	}
	return catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
}

// newPrinters builds the receipt outputs: the log always, plus the spool
// directory and the S3 archive when configured.
func newPrinters(ctx context.Context, cfg config.ReceiptConfig, logger zerolog.Logger) ([]receipt.Printer, error) {
	printers := []receipt.Printer{receipt.NewLogPrinter(logger)}

	if cfg.SpoolDir != "" {
		filePrinter, err := receipt.NewFilePrinter(cfg.SpoolDir, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize receipt spool: %w", err)
		}
		printers = append(printers, filePrinter)
	}

	if cfg.S3.Enabled {
		archiver, err := receipt.NewS3Archiver(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise S3 receipt archive, continuing without it")
		} else {
			printers = append(printers, archiver)
		}
	}

	return printers, nil
}
