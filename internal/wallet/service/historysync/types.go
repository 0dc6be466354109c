package historysync

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/chain"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlockResults(ctx context.Context, height uint64) (*chain.BlockResults, error)
		FetchBlock(ctx context.Context, height uint64) (*chain.RawBlock, error)
		SearchTransfersTo(ctx context.Context, address string, limit int, order chain.Order) ([]chain.SearchHit, error)
	}
	TransactionStore interface {
		Get(ctx context.Context, address string) ([]model.Transaction, error)
		Put(ctx context.Context, address string, tx model.Transaction) (bool, error)
		PutMany(ctx context.Context, address string, txs []model.Transaction) (int, error)
	}
	CheckpointTracker interface {
		Get(ctx context.Context, address string) (uint64, error)
		Set(ctx context.Context, address string, height uint64) error
		Advance(ctx context.Context, address string, height uint64) (bool, error)
	}
	// HeightScanner extracts the records of one address from one block height.
	HeightScanner interface {
		ScanHeight(ctx context.Context, address string, height uint64) ([]model.Transaction, error)
	}
	HeartbeatMetrics interface {
		ObserveHead(err error, started time.Time)
		ObserveWindow(err error, forced bool, heights int, started time.Time)
		ObserveHeight(err error, strategy string, started time.Time)
		ObserveAdded(source string, count int)
	}
	GapSyncMetrics interface {
		ObserveSearch(err error, hits int, started time.Time)
		ObserveAdded(source string, count int)
	}
)
