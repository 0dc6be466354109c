package chain

import "time"

// Attribute is a raw event attribute as delivered by the node. Depending on the
// endpoint and node version keys and values may be plain, base64 or hex encoded.
type Attribute struct {
	Key   string
	Value string
}

// Event is an ABCI event.
type Event struct {
	Type       string
	Attributes []Attribute
}

// TxResult holds the execution outcome of one transaction in a block.
type TxResult struct {
	Code   uint32
	Events []Event
}

// BlockResults wraps the events emitted while executing a block.
type BlockResults struct {
	Height uint64
	// SystemEvents are protocol-level events not tied to a transaction
	// (finalize, begin and end block events).
	SystemEvents []Event
	// TxResults are ordered like the transactions in the block.
	TxResults []TxResult
}

// RawBlock wraps a block header time and its undecoded transactions.
type RawBlock struct {
	Height uint64
	Time   time.Time
	Txs    [][]byte
}

// SearchHit is one result of an indexed transaction search.
type SearchHit struct {
	Height uint64
	Index  uint32
	// Hash is the canonical hash reported by the indexer, may be empty.
	Hash string
	// Tx holds the raw transaction bytes when the indexer returned them.
	Tx     []byte
	Code   uint32
	Events []Event
}
