// Package main runs the wallet history synchronization daemon.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/app"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/service/historysync"
)

type config struct {
	app.Options

	Addresses  []string `long:"address" env:"WALLETSYNC_ADDRESSES" env-delim:"," description:"address to follow, repeatable"`
	APIAddr    string   `long:"api-addr" env:"WALLETSYNC_API_ADDR" description:"HTTP API and metrics listen address" default:":8080"`
	GapRefresh string   `long:"gap-refresh" env:"WALLETSYNC_GAP_REFRESH" description:"cron spec re-running gap sync, empty to disable" default:"@every 10m"`
	LogJSON    bool     `long:"log-json" env:"WALLETSYNC_LOG_JSON" description:"production JSON logging"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("walletsync failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wallet, err := app.Build(ctx, cfg.Options, logger)
	if err != nil {
		return fmt.Errorf("init wallet: %w", err)
	}
	defer func() {
		if err := wallet.Close(); err != nil {
			logger.Error("close store", zap.Error(err))
		}
	}()
	svc := wallet.Service

	credits := make(historysync.CreditSignals, len(cfg.Addresses))
	runners := make([]*historysync.Runner, 0, len(cfg.Addresses))
	for _, address := range cfg.Addresses {
		credit := &historysync.CreditSignal{}
		r, err := historysync.NewRunner(svc, address, credit.C(), logger.Named("runner"))
		if err != nil {
			return fmt.Errorf("init runner: %w", err)
		}
		credits[address] = credit
		runners = append(runners, r)
	}

	if cfg.GapRefresh != "" && len(cfg.Addresses) > 0 {
		scheduler, err := historysync.NewGapScheduler(ctx, svc, cfg.Addresses, cfg.GapRefresh, logger)
		if err != nil {
			return fmt.Errorf("init gap scheduler: %w", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	handler, err := transport.NewHistoryHandler(svc, credits, logger)
	if err != nil {
		return err
	}
	server := transport.NewServer(cfg.APIAddr, transport.NewRouter(handler, logger))
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	var wg sync.WaitGroup
	for _, r := range runners {
		wg.Add(1)
		go func(r *historysync.Runner) {
			defer wg.Done()
			if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("runner stopped", zap.Error(err))
			}
		}(r)
	}

	logger.Info("Starting HTTP server",
		zap.String("addr", cfg.APIAddr),
		zap.Strings("addresses", cfg.Addresses),
		zap.String("store", cfg.Store),
	)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		cancel()
		wg.Wait()
		return fmt.Errorf("listen and serve: %w", err)
	}
	wg.Wait()
	return nil
}
