package lumen

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/chain"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/safe"
)

const maxSearchPageSize = 100

// SearchTransfersTo queries the tx indexer for transactions with a transfer
// event whose recipient is address. Only the first page is requested.
func (c *Client) SearchTransfersTo(ctx context.Context, address string, limit int, order chain.Order) ([]chain.SearchHit, error) {
	if limit <= 0 {
		return nil, nil
	}
	if limit > maxSearchPageSize {
		limit = maxSearchPageSize
	}
	if order != chain.OrderAsc {
		order = chain.OrderDesc
	}

	q := url.Values{}
	q.Set("query", fmt.Sprintf(`"transfer.recipient='%s'"`, address))
	q.Set("prove", "false")
	q.Set("page", "1")
	q.Set("per_page", strconv.Itoa(limit))
	q.Set("order_by", fmt.Sprintf("%q", string(order)))

	var resp rpcResponse[txSearchResult]
	if err := c.getJSON(ctx, "rpc_tx_search", c.rpcURL+"/tx_search?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("tx search for %s: %w", address, err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("tx search for %s: %w", address, resp.Error.err())
	}

	hits := make([]chain.SearchHit, 0, len(resp.Result.Txs))
	for _, tx := range resp.Result.Txs {
		height, err := safe.ParseHeight(tx.Height)
		if err != nil {
			return nil, fmt.Errorf("tx search hit %s: %w", tx.Hash, err)
		}
		var raw []byte
		if tx.Tx != "" {
			if raw, err = base64.StdEncoding.DecodeString(tx.Tx); err != nil {
				return nil, fmt.Errorf("tx search hit %s: decode tx: %w", tx.Hash, err)
			}
		}
		hits = append(hits, chain.SearchHit{
			Height: height,
			Index:  tx.Index,
			Hash:   tx.Hash,
			Tx:     raw,
			Code:   tx.TxResult.Code,
			Events: convertEvents(tx.TxResult.Events),
		})
	}
	return hits, nil
}
