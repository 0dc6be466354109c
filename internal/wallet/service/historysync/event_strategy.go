package historysync

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/chain"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/parser"
	"go.uber.org/zap"
)

// eventStrategy finds incoming transfers in the execution events of a block.
type eventStrategy struct {
	source ChainSource
	parser *parser.Parser
	clock  clock.Clock
	logger *zap.Logger
}

func (s *eventStrategy) ScanHeight(ctx context.Context, address string, height uint64) ([]model.Transaction, error) {
	results, err := s.source.FetchBlockResults(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("fetch block results: %w", err)
	}

	// The block body is only needed once something matched.
	var (
		block    *chain.RawBlock
		blockErr error
		fetched  bool
	)
	loadBlock := func() (*chain.RawBlock, error) {
		if !fetched {
			fetched = true
			block, blockErr = s.source.FetchBlock(ctx, height)
		}
		return block, blockErr
	}

	var out []model.Transaction
	if t, amount, ok := s.parser.TransferTo(results.SystemEvents, address); ok {
		ts := s.clock.Now()
		if b, err := loadBlock(); err != nil {
			s.logger.Debug("block header unavailable, using local time",
				zap.Uint64("height", height), zap.Error(err))
		} else if !b.Time.IsZero() {
			ts = b.Time
		}
		out = append(out, s.record(parser.SyntheticHash(height, "sys", t), height, ts, t, amount, 0))
	}

	// Transaction transfers always carry their canonical hash and header
	// time, so a height whose block cannot be read is reported as failed.
	for i, tr := range results.TxResults {
		t, amount, ok := s.parser.TransferTo(tr.Events, address)
		if !ok {
			continue
		}
		b, err := loadBlock()
		if err != nil {
			return nil, fmt.Errorf("fetch block: %w", err)
		}
		if i >= len(b.Txs) {
			return nil, fmt.Errorf("block %d has %d txs, result %d has no bytes", height, len(b.Txs), i)
		}
		ts := b.Time
		if ts.IsZero() {
			ts = s.clock.Now()
		}
		out = append(out, s.record(parser.TxHash(b.Txs[i]), height, ts, t, amount, tr.Code))
	}
	return out, nil
}

func (s *eventStrategy) record(hash string, height uint64, ts time.Time, t parser.Transfer, amount string, code uint32) model.Transaction {
	return model.Transaction{
		Hash:         hash,
		Height:       height,
		Timestamp:    ts,
		Type:         model.TxReceive,
		Amount:       amount,
		Denom:        s.parser.Denom().Display,
		Counterparty: counterparty(s.parser, t.Sender),
		Status:       statusFromCode(code),
	}
}

func counterparty(p *parser.Parser, address string) string {
	if !p.LooksLikeAddress(address) {
		return model.UnknownCounterparty
	}
	return address
}

func statusFromCode(code uint32) model.TxStatus {
	if code != 0 {
		return model.TxFailed
	}
	return model.TxSuccess
}
