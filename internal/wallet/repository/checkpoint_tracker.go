package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// CheckpointTracker stores the last fully scanned height per address.
type CheckpointTracker struct {
	kv      KV
	metrics Metrics
	logger  *zap.Logger
	locks   addressLocks
}

// NewCheckpointTracker builds a CheckpointTracker on top of kv.
func NewCheckpointTracker(kv KV, metrics Metrics, logger *zap.Logger) (*CheckpointTracker, error) {
	if kv == nil {
		return nil, errors.New("kv is required")
	}
	if metrics == nil {
		return nil, errors.New("checkpoint metrics is required")
	}
	return &CheckpointTracker{kv: kv, metrics: metrics, logger: logger.Named("checkpointTracker")}, nil
}

// Get returns the checkpoint of address, 0 if it was never scanned.
func (c *CheckpointTracker) Get(ctx context.Context, address string) (height uint64, err error) {
	if address == "" {
		return 0, ErrInvalidAddress
	}
	started := time.Now()
	defer func() {
		c.metrics.Observe("checkpoint_get", err, started)
	}()
	return c.load(ctx, address)
}

// Set overwrites the checkpoint unconditionally. Monotonicity is the caller's concern.
func (c *CheckpointTracker) Set(ctx context.Context, address string, height uint64) error {
	if address == "" {
		return ErrInvalidAddress
	}
	unlock := c.locks.lock(address)
	defer unlock()
	return c.store(ctx, address, height)
}

// Advance raises the checkpoint to height if it is currently lower and reports
// whether it moved. It never lowers the stored value.
func (c *CheckpointTracker) Advance(ctx context.Context, address string, height uint64) (bool, error) {
	if address == "" {
		return false, ErrInvalidAddress
	}
	unlock := c.locks.lock(address)
	defer unlock()

	current, err := c.load(ctx, address)
	if err != nil {
		return false, err
	}
	if height <= current {
		return false, nil
	}
	if err := c.store(ctx, address, height); err != nil {
		return false, err
	}
	c.logger.Debug("checkpoint advanced",
		zap.String("address", address),
		zap.Uint64("from", current),
		zap.Uint64("to", height))
	return true, nil
}

func (c *CheckpointTracker) load(ctx context.Context, address string) (uint64, error) {
	raw, err := c.kv.Get(ctx, checkpointKey(address))
	if errors.Is(err, ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read checkpoint for %s: %w", address, err)
	}
	height, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("decode checkpoint for %s: %w", address, err)
	}
	return height, nil
}

func (c *CheckpointTracker) store(ctx context.Context, address string, height uint64) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("checkpoint_set", err, started)
	}()
	if err = c.kv.Put(ctx, checkpointKey(address), []byte(strconv.FormatUint(height, 10))); err != nil {
		return fmt.Errorf("write checkpoint for %s: %w", address, err)
	}
	return nil
}
