package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/lumen"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/parser"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/repository"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/repository/memory"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/repository/redis"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/repository/sqlite"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/service/historysync"
)

const chainName = "lumen"

// Wallet owns the service and the resources behind it.
type Wallet struct {
	Service *historysync.Service
	closers []io.Closer
}

// Close releases the store.
func (w *Wallet) Close() error {
	var err error
	for _, c := range w.closers {
		err = multierr.Append(err, c.Close())
	}
	return err
}

// Build connects the store and the node client and returns the service.
func Build(ctx context.Context, opts Options, logger *zap.Logger) (*Wallet, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Wallet{}

	kv, err := openKV(ctx, opts, w)
	if err != nil {
		return nil, err
	}

	storeMetrics := metrics.NewStore(opts.Store)
	store, err := repository.NewTransactionStore(kv, opts.MaxHistory, storeMetrics, logger.Named("store"))
	if err != nil {
		return nil, multierr.Append(err, w.Close())
	}
	checkpoints, err := repository.NewCheckpointTracker(kv, storeMetrics, logger.Named("checkpoints"))
	if err != nil {
		return nil, multierr.Append(err, w.Close())
	}

	p, err := parser.New(parser.Config{AddressPrefix: opts.AddressPrefix, Denom: opts.Denomination()})
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("init parser: %w", err), w.Close())
	}

	client, err := lumen.NewClient(lumen.Config{
		RPCURL:            opts.RPCURL,
		RESTURL:           opts.RESTURL,
		RequestsPerSecond: opts.RequestsPerSecond,
		Timeout:           opts.HTTPTimeout,
	}, metrics.NewRPCClient(chainName), logger.Named("lumen"))
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("init node client: %w", err), w.Close())
	}

	svc, err := historysync.NewService(
		client,
		store,
		checkpoints,
		p,
		metrics.NewHeartbeat(chainName),
		metrics.NewGapSync(chainName),
		clock.Real{},
		opts.SyncConfig(),
		logger.Named("historysync"),
	)
	if err != nil {
		return nil, multierr.Append(err, w.Close())
	}
	w.Service = svc
	return w, nil
}

func openKV(ctx context.Context, opts Options, w *Wallet) (repository.KV, error) {
	switch opts.Store {
	case StoreSQLite:
		if opts.SQLitePath == "" {
			return nil, errors.New("sqlite path is required")
		}
		repo, err := sqlite.Open(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		w.closers = append(w.closers, repo)
		return repo, nil
	case StoreRedis:
		kv, err := redis.Dial(ctx, opts.RedisURL, opts.RedisPrefix)
		if err != nil {
			return nil, err
		}
		w.closers = append(w.closers, kv)
		return kv, nil
	case StoreMemory:
		return memory.NewKV(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Store)
	}
}
