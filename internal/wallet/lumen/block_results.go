package lumen

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/chain"
)

// FetchBlockResults returns the execution events of the block at height.
// Legacy begin/end block events are merged into SystemEvents.
func (c *Client) FetchBlockResults(ctx context.Context, height uint64) (*chain.BlockResults, error) {
	var resp rpcResponse[blockResultsResult]
	u := c.rpcURL + "/block_results?height=" + strconv.FormatUint(height, 10)
	if err := c.getJSON(ctx, "rpc_block_results", u, &resp); err != nil {
		return nil, fmt.Errorf("block results at height %d: %w", height, err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("block results at height %d: %w", height, resp.Error.err())
	}

	r := resp.Result
	system := make([]chain.Event, 0, len(r.BeginBlockEvents)+len(r.FinalizeBlockEvents)+len(r.EndBlockEvents))
	system = append(system, convertEvents(r.BeginBlockEvents)...)
	system = append(system, convertEvents(r.FinalizeBlockEvents)...)
	system = append(system, convertEvents(r.EndBlockEvents)...)

	txResults := make([]chain.TxResult, 0, len(r.TxsResults))
	for _, tr := range r.TxsResults {
		txResults = append(txResults, chain.TxResult{Code: tr.Code, Events: convertEvents(tr.Events)})
	}

	return &chain.BlockResults{
		Height:       height,
		SystemEvents: system,
		TxResults:    txResults,
	}, nil
}
