package lumen

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/safe"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// LatestHeight returns the chain head from the REST gateway, falling back to
// the RPC status endpoint.
func (c *Client) LatestHeight(ctx context.Context) (uint64, error) {
	var restErr error
	if c.restURL != "" {
		height, err := c.restLatestHeight(ctx)
		if err == nil {
			return height, nil
		}
		restErr = err
		c.logger.Debug("rest head lookup failed, trying rpc", zap.Error(err))
	}

	height, err := c.rpcLatestHeight(ctx)
	if err != nil {
		return 0, multierr.Append(restErr, err)
	}
	return height, nil
}

func (c *Client) restLatestHeight(ctx context.Context) (uint64, error) {
	var resp restBlockResponse
	if err := c.getJSON(ctx, "rest_latest_block", c.restURL+"/cosmos/base/tendermint/v1beta1/blocks/latest", &resp); err != nil {
		return 0, err
	}
	block := resp.pick()
	if block == nil {
		return 0, errors.New("rest latest block: empty response")
	}
	return safe.ParseHeight(block.Header.Height)
}

func (c *Client) rpcLatestHeight(ctx context.Context) (uint64, error) {
	var resp rpcResponse[statusResult]
	if err := c.getJSON(ctx, "rpc_status", c.rpcURL+"/status", &resp); err != nil {
		return 0, err
	}
	if resp.Error != nil {
		return 0, fmt.Errorf("rpc status: %w", resp.Error.err())
	}
	return safe.ParseHeight(resp.Result.SyncInfo.LatestBlockHeight)
}
