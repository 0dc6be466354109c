package historysync

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/workerpool"
	"go.uber.org/zap"
)

// heartbeatScanner runs one determine-head, determine-window, scan-window,
// advance-checkpoint cycle per call.
type heartbeatScanner struct {
	source      ChainSource
	store       TransactionStore
	checkpoints CheckpointTracker
	primary     HeightScanner
	fallback    HeightScanner
	metrics     HeartbeatMetrics
	cfg         Config
	logger      *zap.Logger
}

// Scan visits the heights due for address. Per-height fetch failures are
// counted and logged; only persistence failures are returned. The checkpoint
// moves forward after every height was attempted and only for non-forced scans
// that persisted everything they found.
func (h *heartbeatScanner) Scan(ctx context.Context, address string, forced bool) (report ScanReport, err error) {
	report = ScanReport{Address: address, Forced: forced}
	logger := h.logger.With(zap.String("address", address), zap.Bool("forced", forced))

	started := time.Now()
	head, err := h.source.LatestHeight(ctx)
	h.metrics.ObserveHead(err, started)
	if err != nil {
		logger.Warn("chain head unavailable, skipping cycle", zap.Error(err))
		report.Skipped = ErrHeadUnavailable.Error()
		return report, nil
	}
	report.Head = head

	checkpoint, err := h.checkpoints.Get(ctx, address)
	if err != nil {
		return report, fmt.Errorf("load checkpoint: %w", err)
	}
	report.Checkpoint = checkpoint

	w, ok := scanWindow(checkpoint, head, forced, h.cfg)
	if !ok {
		logger.Debug("nothing to scan", zap.Uint64("checkpoint", checkpoint), zap.Uint64("head", head))
		report.Skipped = "up to date"
		return report, nil
	}
	report.From, report.To = w.from, w.to

	heights := w.heights()
	var failed, added atomic.Int64
	started = time.Now()
	err = workerpool.Each(ctx, h.cfg.WorkerCount, heights, func(ctx context.Context, height uint64) error {
		txs, scanErr := h.scanHeight(ctx, address, height)
		if scanErr != nil {
			failed.Add(1)
			logger.Warn("height skipped", zap.Uint64("height", height), zap.Error(scanErr))
			return nil
		}
		if len(txs) == 0 {
			return nil
		}
		n, putErr := h.store.PutMany(ctx, address, txs)
		if putErr != nil {
			logger.Error("persist height failed", zap.Uint64("height", height), zap.Error(putErr))
			return fmt.Errorf("persist height %d: %w", height, putErr)
		}
		added.Add(int64(n))
		return nil
	})
	h.metrics.ObserveWindow(err, forced, len(heights), started)

	report.Attempted = len(heights)
	report.Failed = int(failed.Load())
	report.Added = int(added.Load())
	h.metrics.ObserveAdded(sourceHeartbeat, report.Added)
	if err != nil {
		return report, err
	}

	if !forced {
		if _, err := h.checkpoints.Advance(ctx, address, w.to); err != nil {
			return report, fmt.Errorf("advance checkpoint: %w", err)
		}
		if w.to > report.Checkpoint {
			report.Checkpoint = w.to
		}
	}

	logger.Info("scan finished",
		zap.Uint64("from", w.from),
		zap.Uint64("to", w.to),
		zap.Uint64("head", head),
		zap.Int("failed", report.Failed),
		zap.Int("added", report.Added))
	return report, nil
}

// scanHeight tries the event strategy first and decodes the raw block only
// when block results could not be fetched.
func (h *heartbeatScanner) scanHeight(ctx context.Context, address string, height uint64) ([]model.Transaction, error) {
	started := time.Now()
	txs, err := h.primary.ScanHeight(ctx, address, height)
	h.metrics.ObserveHeight(err, strategyEvents, started)
	if err == nil {
		return txs, nil
	}
	h.logger.Debug("block results unavailable, decoding raw block",
		zap.String("address", address), zap.Uint64("height", height), zap.Error(err))

	started = time.Now()
	txs, err = h.fallback.ScanHeight(ctx, address, height)
	h.metrics.ObserveHeight(err, strategyBlock, started)
	return txs, err
}
