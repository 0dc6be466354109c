package lumen

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/chain"
)

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

var notFoundMarkers = []string{
	"must be less than or equal to the current blockchain height",
	"could not find results for height",
	"is not available, lowest height is",
	"height must be greater than",
}

func (e *rpcError) err() error {
	for _, marker := range notFoundMarkers {
		if strings.Contains(e.Data, marker) || strings.Contains(e.Message, marker) {
			return fmt.Errorf("%s: %w", e.Data, chain.ErrNotFound)
		}
	}
	return fmt.Errorf("rpc error %d: %s %s", e.Code, e.Message, e.Data)
}

// rpcEnvelope is the JSON-RPC 2.0 response wrapper used by CometBFT URI endpoints.
type rpcEnvelope struct {
	Error *rpcError `json:"error"`
}

type rpcResponse[T any] struct {
	Result T         `json:"result"`
	Error  *rpcError `json:"error"`
}

type eventJSON struct {
	Type       string `json:"type"`
	Attributes []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"attributes"`
}

type txResultJSON struct {
	Code   uint32      `json:"code"`
	Events []eventJSON `json:"events"`
}

type statusResult struct {
	SyncInfo struct {
		LatestBlockHeight string `json:"latest_block_height"`
	} `json:"sync_info"`
}

type blockResultsResult struct {
	Height              string         `json:"height"`
	TxsResults          []txResultJSON `json:"txs_results"`
	FinalizeBlockEvents []eventJSON    `json:"finalize_block_events"`
	BeginBlockEvents    []eventJSON    `json:"begin_block_events"`
	EndBlockEvents      []eventJSON    `json:"end_block_events"`
}

type blockJSON struct {
	Header struct {
		Height string `json:"height"`
		Time   string `json:"time"`
	} `json:"header"`
	Data struct {
		Txs []string `json:"txs"`
	} `json:"data"`
}

type blockResult struct {
	Block *blockJSON `json:"block"`
}

// restBlockResponse matches /cosmos/base/tendermint/v1beta1/blocks/{height|latest}.
// Newer gateways return sdk_block next to the legacy block field.
type restBlockResponse struct {
	Block    *blockJSON `json:"block"`
	SDKBlock *blockJSON `json:"sdk_block"`
}

func (r restBlockResponse) pick() *blockJSON {
	if r.SDKBlock != nil && r.SDKBlock.Header.Height != "" {
		return r.SDKBlock
	}
	return r.Block
}

type txSearchResult struct {
	Txs []struct {
		Hash     string       `json:"hash"`
		Height   string       `json:"height"`
		Index    uint32       `json:"index"`
		TxResult txResultJSON `json:"tx_result"`
		Tx       string       `json:"tx"`
	} `json:"txs"`
	TotalCount string `json:"total_count"`
}

func convertEvents(in []eventJSON) []chain.Event {
	if len(in) == 0 {
		return nil
	}
	out := make([]chain.Event, 0, len(in))
	for _, ev := range in {
		attrs := make([]chain.Attribute, 0, len(ev.Attributes))
		for _, a := range ev.Attributes {
			attrs = append(attrs, chain.Attribute{Key: a.Key, Value: a.Value})
		}
		out = append(out, chain.Event{Type: ev.Type, Attributes: attrs})
	}
	return out
}

func decodeTxs(in []string) ([][]byte, error) {
	out := make([][]byte, 0, len(in))
	for i, s := range in {
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("decode tx %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}
