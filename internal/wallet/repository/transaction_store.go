package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/sugawarayuuta/sonnet"
	"go.uber.org/zap"
)

// DefaultMaxHistory is the number of records retained per address.
const DefaultMaxHistory = 500

// TransactionStore keeps a deduplicated, newest-first, size-bounded list of
// transactions per address.
type TransactionStore struct {
	kv         KV
	maxEntries int
	metrics    Metrics
	logger     *zap.Logger
	locks      addressLocks
}

// NewTransactionStore builds a TransactionStore on top of kv.
func NewTransactionStore(kv KV, maxEntries int, metrics Metrics, logger *zap.Logger) (*TransactionStore, error) {
	if kv == nil {
		return nil, errors.New("kv is required")
	}
	if metrics == nil {
		return nil, errors.New("store metrics is required")
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxHistory
	}
	return &TransactionStore{
		kv:         kv,
		maxEntries: maxEntries,
		metrics:    metrics,
		logger:     logger.Named("transactionStore"),
	}, nil
}

// MaxEntries returns the per-address retention limit.
func (s *TransactionStore) MaxEntries() int {
	return s.maxEntries
}

// Get returns the history of address ordered by timestamp descending. Unknown
// addresses yield an empty slice.
func (s *TransactionStore) Get(ctx context.Context, address string) (txs []model.Transaction, err error) {
	if address == "" {
		return nil, ErrInvalidAddress
	}
	started := time.Now()
	defer func() {
		s.metrics.Observe("history_get", err, started)
	}()

	return s.load(ctx, address)
}

// Put inserts tx unless a record with the same hash already exists.
// It reports whether the record was inserted.
func (s *TransactionStore) Put(ctx context.Context, address string, tx model.Transaction) (bool, error) {
	added, err := s.PutMany(ctx, address, []model.Transaction{tx})
	return added > 0, err
}

// PutMany inserts every record whose hash is not yet known for address, then
// re-sorts and truncates once. Duplicates, including duplicates inside txs,
// are dropped silently. It returns the number of inserted records that
// survived truncation.
func (s *TransactionStore) PutMany(ctx context.Context, address string, txs []model.Transaction) (added int, err error) {
	if address == "" {
		return 0, ErrInvalidAddress
	}
	for _, tx := range txs {
		if tx.Hash == "" {
			return 0, fmt.Errorf("transaction at height %d has no hash", tx.Height)
		}
	}
	if len(txs) == 0 {
		return 0, nil
	}

	unlock := s.locks.lock(address)
	defer unlock()

	started := time.Now()
	defer func() {
		s.metrics.Observe("history_put", err, started)
	}()

	current, err := s.load(ctx, address)
	if err != nil {
		return 0, err
	}

	known := make(map[string]struct{}, len(current)+len(txs))
	for _, tx := range current {
		known[tx.Hash] = struct{}{}
	}
	inserted := make(map[string]struct{}, len(txs))
	for _, tx := range txs {
		if _, ok := known[tx.Hash]; ok {
			continue
		}
		known[tx.Hash] = struct{}{}
		inserted[tx.Hash] = struct{}{}
		current = append(current, tx)
	}
	if len(inserted) == 0 {
		return 0, nil
	}

	sortNewestFirst(current)
	if len(current) > s.maxEntries {
		current = current[:s.maxEntries]
	}
	// Records older than the retained window are dropped again right away.
	for _, tx := range current {
		if _, ok := inserted[tx.Hash]; ok {
			added++
		}
	}
	if added == 0 {
		return 0, nil
	}

	payload, err := sonnet.Marshal(current)
	if err != nil {
		return 0, fmt.Errorf("encode history for %s: %w", address, err)
	}
	if err = s.kv.Put(ctx, historyKey(address), payload); err != nil {
		return 0, fmt.Errorf("write history for %s: %w", address, err)
	}

	s.logger.Debug("history updated",
		zap.String("address", address),
		zap.Int("added", added),
		zap.Int("size", len(current)))
	return added, nil
}

func (s *TransactionStore) load(ctx context.Context, address string) ([]model.Transaction, error) {
	raw, err := s.kv.Get(ctx, historyKey(address))
	if errors.Is(err, ErrKeyNotFound) {
		return []model.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history for %s: %w", address, err)
	}
	var txs []model.Transaction
	if err := sonnet.Unmarshal(raw, &txs); err != nil {
		return nil, fmt.Errorf("decode history for %s: %w", address, err)
	}
	if txs == nil {
		txs = []model.Transaction{}
	}
	return txs, nil
}

func sortNewestFirst(txs []model.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		if a.Height != b.Height {
			return a.Height > b.Height
		}
		return a.Hash < b.Hash
	})
}
