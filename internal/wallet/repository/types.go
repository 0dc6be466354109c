// Package repository persists address histories and scan checkpoints in a
// key-value medium. Each address owns two independent records: its capped,
// sorted transaction list and its scan watermark.
package repository

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

var (
	// ErrKeyNotFound is returned by KV implementations for missing keys.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidAddress is returned for empty or malformed addresses.
	ErrInvalidAddress = errors.New("invalid address")
)

type (
	// KV is a durable key-value medium. Put must be visible to a subsequent Get
	// from the same process once it returns.
	KV interface {
		Get(ctx context.Context, key string) ([]byte, error)
		Put(ctx context.Context, key string, value []byte) error
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

const (
	historyKeyPrefix    = "history/"
	checkpointKeyPrefix = "checkpoint/"
)

func historyKey(address string) string    { return historyKeyPrefix + address }
func checkpointKey(address string) string { return checkpointKeyPrefix + address }
