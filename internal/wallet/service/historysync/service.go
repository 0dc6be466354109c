// Package historysync reconstructs the transaction history of wallet
// addresses from a remote chain. A gap sync backfills recent activity through
// the tx indexer, a heartbeat scans new heights incrementally and a forced
// rescan re-reads a deeper window when a balance observer reports an
// unexplained credit.
package historysync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/parser"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/repository"
	"go.uber.org/zap"
)

// Service is the public surface of history synchronization.
type Service struct {
	store       TransactionStore
	checkpoints CheckpointTracker
	parser      *parser.Parser
	heartbeat   *heartbeatScanner
	gap         *gapSyncer
	cfg         Config
	logger      *zap.Logger
}

// NewService wires the scanners around the given collaborators.
func NewService(
	source ChainSource,
	store TransactionStore,
	checkpoints CheckpointTracker,
	p *parser.Parser,
	heartbeatMetrics HeartbeatMetrics,
	gapMetrics GapSyncMetrics,
	clk clock.Clock,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	switch {
	case source == nil:
		return nil, errors.New("chain source is required")
	case store == nil:
		return nil, errors.New("transaction store is required")
	case checkpoints == nil:
		return nil, errors.New("checkpoint tracker is required")
	case p == nil:
		return nil, errors.New("parser is required")
	case heartbeatMetrics == nil:
		return nil, errors.New("heartbeat metrics is required")
	case gapMetrics == nil:
		return nil, errors.New("gap sync metrics is required")
	}
	if clk == nil {
		clk = clock.Real{}
	}
	cfg = cfg.withDefaults()

	return &Service{
		store:       store,
		checkpoints: checkpoints,
		parser:      p,
		cfg:         cfg,
		logger:      logger,
		heartbeat: &heartbeatScanner{
			source:      source,
			store:       store,
			checkpoints: checkpoints,
			primary: &eventStrategy{
				source: source,
				parser: p,
				clock:  clk,
				logger: logger.Named("eventStrategy"),
			},
			fallback: &blockStrategy{
				source: source,
				parser: p,
				logger: logger.Named("blockStrategy"),
			},
			metrics: heartbeatMetrics,
			cfg:     cfg,
			logger:  logger.Named("heartbeat"),
		},
		gap: &gapSyncer{
			source:      source,
			store:       store,
			checkpoints: checkpoints,
			parser:      p,
			clock:       clk,
			metrics:     gapMetrics,
			cfg:         cfg,
			logger:      logger.Named("gapSync"),
		},
	}, nil
}

// Config returns the effective configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// ValidateAddress rejects anything but an account address of this chain.
func (s *Service) ValidateAddress(address string) error {
	if !s.parser.IsAccountAddress(address) {
		return fmt.Errorf("%w: %q", repository.ErrInvalidAddress, address)
	}
	return nil
}

// GetHistory returns the stored history of address, newest first.
func (s *Service) GetHistory(ctx context.Context, address string) ([]model.Transaction, error) {
	if err := s.ValidateAddress(address); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, address)
}

// SaveTransaction records a locally originated transaction ahead of scanner
// discovery. Known hashes are ignored.
func (s *Service) SaveTransaction(ctx context.Context, address string, tx model.Transaction) (bool, error) {
	added, err := s.SaveBatch(ctx, address, []model.Transaction{tx})
	return added > 0, err
}

// SaveBatch is the batch form of SaveTransaction.
func (s *Service) SaveBatch(ctx context.Context, address string, txs []model.Transaction) (int, error) {
	if err := s.ValidateAddress(address); err != nil {
		return 0, err
	}
	normalized := make([]model.Transaction, 0, len(txs))
	for i, tx := range txs {
		tx, err := s.normalize(tx)
		if err != nil {
			return 0, fmt.Errorf("transaction %d: %w", i, err)
		}
		normalized = append(normalized, tx)
	}
	return s.store.PutMany(ctx, address, normalized)
}

func (s *Service) normalize(tx model.Transaction) (model.Transaction, error) {
	if tx.Hash == "" {
		return tx, fmt.Errorf("%w: hash is required", ErrInvalidTransaction)
	}
	if !tx.Type.Valid() {
		return tx, fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, tx.Type)
	}
	if tx.Timestamp.IsZero() {
		return tx, fmt.Errorf("%w: timestamp is required", ErrInvalidTransaction)
	}
	if tx.Denom == "" {
		tx.Denom = s.parser.Denom().Display
	}
	if tx.Status == "" {
		tx.Status = model.TxSuccess
	}
	if tx.Counterparty == "" {
		tx.Counterparty = model.UnknownCounterparty
	}
	if !parser.IsSynthetic(tx.Hash) {
		tx.Hash = strings.ToUpper(tx.Hash)
	}
	tx.Timestamp = tx.Timestamp.UTC()
	return tx, nil
}

// SyncGap backfills recent incoming transfers through the tx indexer and
// moves the checkpoint forward to the newest result.
func (s *Service) SyncGap(ctx context.Context, address string) (GapReport, error) {
	if err := s.ValidateAddress(address); err != nil {
		return GapReport{Address: address}, err
	}
	return s.gap.Sync(ctx, address)
}

// SyncHeartbeat scans the heights after the checkpoint.
func (s *Service) SyncHeartbeat(ctx context.Context, address string) (ScanReport, error) {
	if err := s.ValidateAddress(address); err != nil {
		return ScanReport{Address: address}, err
	}
	return s.heartbeat.Scan(ctx, address, false)
}

// Checkpoint returns the last fully scanned height of address.
func (s *Service) Checkpoint(ctx context.Context, address string) (uint64, error) {
	if err := s.ValidateAddress(address); err != nil {
		return 0, err
	}
	return s.checkpoints.Get(ctx, address)
}

// ResetCheckpoint overwrites the checkpoint of address, also backwards.
// Heights after it become eligible for the next heartbeat again.
func (s *Service) ResetCheckpoint(ctx context.Context, address string, height uint64) error {
	if err := s.ValidateAddress(address); err != nil {
		return err
	}
	s.logger.Info("checkpoint reset", zap.String("address", address), zap.Uint64("height", height))
	return s.checkpoints.Set(ctx, address, height)
}
