package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/service/historysync"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// HistoryService is the synchronization engine surface exposed over HTTP.
type HistoryService interface {
	ValidateAddress(address string) error
	GetHistory(ctx context.Context, address string) ([]model.Transaction, error)
	SaveBatch(ctx context.Context, address string, txs []model.Transaction) (int, error)
	SyncGap(ctx context.Context, address string) (historysync.GapReport, error)
	SyncHeartbeat(ctx context.Context, address string) (historysync.ScanReport, error)
	OnPossibleCredit(ctx context.Context, address string) (historysync.ScanReport, error)
}

// CreditNotifier hands possible-credit signals to the run loop of a followed
// address. It reports false when the address has no run loop.
type CreditNotifier interface {
	NotifyCredit(address string) bool
}
