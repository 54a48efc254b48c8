package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/dloman/sbhx-store/internal/app"
	"github.com/dloman/sbhx-store/internal/clock"
	"github.com/dloman/sbhx-store/internal/config"
	"github.com/dloman/sbhx-store/internal/domain"
	"github.com/dloman/sbhx-store/internal/payment/braintree"
	"github.com/dloman/sbhx-store/internal/storage/jsonfile"
	transporthttp "github.com/dloman/sbhx-store/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	if cfg.LogLevel != "" {
		if lvl, err := charmlog.ParseLevel(cfg.LogLevel); err == nil {
			logger.SetLevel(lvl)
		}
	}

	// Stores load once at boot; a missing or malformed backing file means
	// the process must not serve any requests against it.
	inventory, err := jsonfile.Load[domain.Item](cfg.InventoryFile)
	if err != nil {
		logger.Fatal("load inventory store", "err", err)
	}
	fundraisers, err := jsonfile.Load[domain.Fundraiser](cfg.FundraisersFile)
	if err != nil {
		logger.Fatal("load fundraisers store", "err", err)
	}

	gateway := braintree.New(braintree.Config{
		Environment: cfg.Environment,
		MerchantID:  cfg.MerchantID,
		PublicKey:   cfg.PublicKey,
		PrivateKey:  cfg.PrivateKey,
		BaseURL:     cfg.GatewayBaseURL,
	})

	processor := app.NewProcessor(gateway, clock.NewSystem(), logger)
	handler := transporthttp.NewHandler(processor, gateway, inventory, fundraisers, logger)
	router := transporthttp.NewRouter(handler, transporthttp.RouterConfig{
		AssetsDir:   cfg.AssetsDir,
		CORSOrigins: cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	logger.Info("store listening", "port", cfg.Port, "environment", cfg.Environment)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", "err", err)
	}
	logger.Info("server stopped")
}
