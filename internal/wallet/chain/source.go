// Package chain defines the chain-access contract used by history synchronization
// and the data shapes returned by it.
package chain

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an endpoint has no data for the requested height,
// e.g. a pruned node or a height above the current head.
var ErrNotFound = errors.New("not found")

// Order is the sort order of indexed search results.
type Order string

var (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Source provides read-only access to a remote chain.
type Source interface {
	// LatestHeight returns the chain head, trying the REST endpoint first and
	// the RPC status endpoint second.
	LatestHeight(ctx context.Context) (uint64, error)
	// FetchBlockResults returns execution events for a finalized block.
	FetchBlockResults(ctx context.Context, height uint64) (*BlockResults, error)
	// FetchBlock returns the block header time and raw transaction bytes.
	FetchBlock(ctx context.Context, height uint64) (*RawBlock, error)
	// SearchTransfersTo runs an indexed search for transfers whose recipient is address.
	SearchTransfersTo(ctx context.Context, address string, limit int, order Order) ([]SearchHit, error)
}
