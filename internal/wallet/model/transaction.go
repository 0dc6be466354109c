// Package model defines domain models for wallet history synchronization.
package model

import "time"

// TxType classifies a history record from the wallet's point of view.
type TxType string

var (
	TxSend    TxType = "send"
	TxReceive TxType = "receive"
	TxStake   TxType = "stake"
	TxUnstake TxType = "unstake"
	TxClaim   TxType = "claim"
)

// Valid reports whether t is one of the known record types.
func (t TxType) Valid() bool {
	switch t {
	case TxSend, TxReceive, TxStake, TxUnstake, TxClaim:
		return true
	}
	return false
}

// TxStatus is the execution outcome of a transaction.
type TxStatus string

var (
	TxSuccess TxStatus = "success"
	TxFailed  TxStatus = "failed"
)

// UnknownCounterparty is stored when the other side of a transfer cannot be decoded.
const UnknownCounterparty = "Unknown"

// Transaction is one entry of an address history. Records are immutable once stored.
type Transaction struct {
	Hash         string    `json:"hash"`
	Height       uint64    `json:"height"`
	Timestamp    time.Time `json:"timestamp"`
	Type         TxType    `json:"type"`
	Amount       string    `json:"amount"`
	Denom        string    `json:"denom"`
	Counterparty string    `json:"counterparty"`
	Status       TxStatus  `json:"status"`
}
