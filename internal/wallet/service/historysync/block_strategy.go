package historysync

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/parser"
	"go.uber.org/zap"
)

// blockStrategy decodes the raw transactions of a block and matches known
// message shapes against the address as sender or recipient.
type blockStrategy struct {
	source ChainSource
	parser *parser.Parser
	logger *zap.Logger
}

func (s *blockStrategy) ScanHeight(ctx context.Context, address string, height uint64) ([]model.Transaction, error) {
	block, err := s.source.FetchBlock(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("fetch block: %w", err)
	}

	var out []model.Transaction
	for i, raw := range block.Txs {
		msgs, err := parser.DecodeMessages(raw)
		if err != nil {
			s.logger.Debug("skip undecodable transaction",
				zap.Uint64("height", height), zap.Int("index", i), zap.Error(err))
			continue
		}
		for _, msg := range msgs {
			tx, ok := s.match(msg, address)
			if !ok {
				continue
			}
			tx.Hash = parser.TxHash(raw)
			tx.Height = height
			tx.Timestamp = block.Time
			out = append(out, tx)
			break
		}
	}
	return out, nil
}

func (s *blockStrategy) match(msg parser.Message, address string) (model.Transaction, bool) {
	var (
		txType model.TxType
		other  string
	)
	switch msg.TypeURL {
	case parser.TypeURLMsgSend:
		switch address {
		case msg.From:
			txType, other = model.TxSend, msg.To
		case msg.To:
			txType, other = model.TxReceive, msg.From
		default:
			return model.Transaction{}, false
		}
	case parser.TypeURLMsgDelegate:
		if msg.From != address {
			return model.Transaction{}, false
		}
		txType, other = model.TxStake, msg.To
	case parser.TypeURLMsgUndelegate:
		if msg.From != address {
			return model.Transaction{}, false
		}
		txType, other = model.TxUnstake, msg.To
	default:
		return model.Transaction{}, false
	}

	amount, ok := s.nativeAmount(msg.Coins)
	if !ok {
		return model.Transaction{}, false
	}
	return model.Transaction{
		Type:         txType,
		Amount:       amount,
		Denom:        s.parser.Denom().Display,
		Counterparty: counterparty(s.parser, other),
		Status:       model.TxSuccess,
	}, true
}

func (s *blockStrategy) nativeAmount(coins []parser.Coin) (string, bool) {
	for _, c := range coins {
		if amount, ok := s.parser.ParseCoin(c.Amount, c.Denom); ok {
			return amount, true
		}
	}
	return "", false
}
