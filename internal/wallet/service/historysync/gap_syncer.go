package historysync

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/chain"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/parser"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/workerpool"
	"go.uber.org/zap"
)

// gapSyncer backfills the most recent incoming transfers with one indexed
// search instead of replaying every height since the checkpoint.
type gapSyncer struct {
	source      ChainSource
	store       TransactionStore
	checkpoints CheckpointTracker
	parser      *parser.Parser
	clock       clock.Clock
	metrics     GapSyncMetrics
	cfg         Config
	logger      *zap.Logger
}

func (g *gapSyncer) Sync(ctx context.Context, address string) (GapReport, error) {
	report := GapReport{Address: address}
	logger := g.logger.With(zap.String("address", address))

	started := time.Now()
	hits, err := g.source.SearchTransfersTo(ctx, address, g.cfg.GapLimit, chain.OrderDesc)
	g.metrics.ObserveSearch(err, len(hits), started)
	if err != nil {
		logger.Warn("transfer search failed, gap sync skipped", zap.Error(err))
		report.Skipped = "search unavailable"
		return report, nil
	}
	report.Hits = len(hits)
	if len(hits) == 0 {
		logger.Debug("no indexed transfers")
		return report, nil
	}

	times := g.blockTimes(ctx, hits)

	txs := make([]model.Transaction, 0, len(hits))
	for _, hit := range hits {
		if hit.Height > report.MaxHeight {
			report.MaxHeight = hit.Height
		}
		t, amount, ok := g.parser.TransferTo(hit.Events, address)
		if !ok {
			continue
		}
		ts, ok := times[hit.Height]
		if !ok {
			ts = g.clock.Now()
		}
		txs = append(txs, model.Transaction{
			Hash:         hitHash(hit, t),
			Height:       hit.Height,
			Timestamp:    ts,
			Type:         model.TxReceive,
			Amount:       amount,
			Denom:        g.parser.Denom().Display,
			Counterparty: counterparty(g.parser, t.Sender),
			Status:       statusFromCode(hit.Code),
		})
	}
	report.Matched = len(txs)

	added, err := g.store.PutMany(ctx, address, txs)
	g.metrics.ObserveAdded(sourceGap, added)
	if err != nil {
		logger.Error("persist gap sync results failed", zap.Error(err))
		return report, fmt.Errorf("persist gap sync results: %w", err)
	}
	report.Added = added

	if _, err := g.checkpoints.Advance(ctx, address, report.MaxHeight); err != nil {
		return report, fmt.Errorf("advance checkpoint: %w", err)
	}
	checkpoint, err := g.checkpoints.Get(ctx, address)
	if err != nil {
		return report, fmt.Errorf("load checkpoint: %w", err)
	}
	report.Checkpoint = checkpoint

	logger.Info("gap sync finished",
		zap.Int("hits", report.Hits),
		zap.Int("added", report.Added),
		zap.Uint64("checkpoint", checkpoint))
	return report, nil
}

// blockTimes resolves the header time of every distinct hit height
// concurrently. Heights whose block could not be fetched are absent.
func (g *gapSyncer) blockTimes(ctx context.Context, hits []chain.SearchHit) map[uint64]time.Time {
	seen := make(map[uint64]struct{}, len(hits))
	heights := make([]uint64, 0, len(hits))
	for _, hit := range hits {
		if _, ok := seen[hit.Height]; ok {
			continue
		}
		seen[hit.Height] = struct{}{}
		heights = append(heights, hit.Height)
	}

	var mu sync.Mutex
	times := make(map[uint64]time.Time, len(heights))
	_ = workerpool.Each(ctx, g.cfg.WorkerCount, heights, func(ctx context.Context, height uint64) error {
		block, err := g.source.FetchBlock(ctx, height)
		if err != nil {
			g.logger.Debug("block time unavailable", zap.Uint64("height", height), zap.Error(err))
			return nil
		}
		if block.Time.IsZero() {
			return nil
		}
		mu.Lock()
		times[height] = block.Time
		mu.Unlock()
		return nil
	})
	return times
}

func hitHash(hit chain.SearchHit, t parser.Transfer) string {
	switch {
	case hit.Hash != "":
		return strings.ToUpper(hit.Hash)
	case len(hit.Tx) > 0:
		return parser.TxHash(hit.Tx)
	default:
		return parser.SyntheticHash(hit.Height, fmt.Sprintf("tx%d.", hit.Index), t)
	}
}
