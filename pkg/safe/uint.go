// Package safe provides overflow-safe block height helpers.
package safe

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHeight parses a decimal block height as returned by CometBFT and the
// Cosmos REST gateway, which encode 64-bit integers as JSON strings.
func ParseHeight(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty height")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("height %q out of uint64 range", s)
	}
	h, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse height %q: %w", s, err)
	}
	return h, nil
}

// SubFloor returns a-b, or zero when b exceeds a.
func SubFloor(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}
