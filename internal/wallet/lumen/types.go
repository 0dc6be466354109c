package lumen

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for outbound chain calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
