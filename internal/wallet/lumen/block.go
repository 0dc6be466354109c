package lumen

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/chain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// FetchBlock returns the header time and raw transactions of the block at
// height, from RPC first and the REST gateway second.
func (c *Client) FetchBlock(ctx context.Context, height uint64) (*chain.RawBlock, error) {
	block, rpcErr := c.rpcBlock(ctx, height)
	if rpcErr == nil {
		return block, nil
	}
	if c.restURL == "" || errors.Is(rpcErr, context.Canceled) {
		return nil, rpcErr
	}
	c.logger.Debug("rpc block lookup failed, trying rest", zap.Uint64("height", height), zap.Error(rpcErr))

	block, restErr := c.restBlock(ctx, height)
	if restErr != nil {
		if errors.Is(rpcErr, chain.ErrNotFound) && errors.Is(restErr, chain.ErrNotFound) {
			return nil, fmt.Errorf("block at height %d: %w", height, chain.ErrNotFound)
		}
		return nil, multierr.Append(rpcErr, restErr)
	}
	return block, nil
}

func (c *Client) rpcBlock(ctx context.Context, height uint64) (*chain.RawBlock, error) {
	var resp rpcResponse[blockResult]
	u := c.rpcURL + "/block?height=" + strconv.FormatUint(height, 10)
	if err := c.getJSON(ctx, "rpc_block", u, &resp); err != nil {
		return nil, fmt.Errorf("rpc block at height %d: %w", height, err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("rpc block at height %d: %w", height, resp.Error.err())
	}
	if resp.Result.Block == nil {
		return nil, fmt.Errorf("rpc block at height %d: %w", height, chain.ErrNotFound)
	}
	return toRawBlock(height, resp.Result.Block)
}

func (c *Client) restBlock(ctx context.Context, height uint64) (*chain.RawBlock, error) {
	var resp restBlockResponse
	u := c.restURL + "/cosmos/base/tendermint/v1beta1/blocks/" + strconv.FormatUint(height, 10)
	if err := c.getJSON(ctx, "rest_block", u, &resp); err != nil {
		return nil, fmt.Errorf("rest block at height %d: %w", height, err)
	}
	block := resp.pick()
	if block == nil {
		return nil, fmt.Errorf("rest block at height %d: %w", height, chain.ErrNotFound)
	}
	return toRawBlock(height, block)
}

func toRawBlock(height uint64, b *blockJSON) (*chain.RawBlock, error) {
	ts, err := time.Parse(time.RFC3339Nano, b.Header.Time)
	if err != nil {
		return nil, fmt.Errorf("block %d header time %q: %w", height, b.Header.Time, err)
	}
	txs, err := decodeTxs(b.Data.Txs)
	if err != nil {
		return nil, fmt.Errorf("block %d: %w", height, err)
	}
	return &chain.RawBlock{Height: height, Time: ts.UTC(), Txs: txs}, nil
}
