package historysync

import "errors"

// ErrHeadUnavailable marks a cycle aborted because no endpoint reported the
// chain head. It is surfaced through ScanReport and never returned.
var ErrHeadUnavailable = errors.New("chain head unavailable")

// ErrInvalidTransaction rejects a pushed record that misses required fields.
var ErrInvalidTransaction = errors.New("invalid transaction")

// ScanReport summarizes one heartbeat or forced scan.
type ScanReport struct {
	Address string `json:"address"`
	Forced  bool   `json:"forced"`
	Head    uint64 `json:"head"`
	// From and To bound the scanned window, both zero when nothing was scanned.
	From       uint64 `json:"from"`
	To         uint64 `json:"to"`
	Attempted  int    `json:"attempted"`
	Failed     int    `json:"failed"`
	Added      int    `json:"added"`
	Checkpoint uint64 `json:"checkpoint"`
	Skipped    string `json:"skipped,omitempty"`
}

// GapReport summarizes one gap sync.
type GapReport struct {
	Address    string `json:"address"`
	Hits       int    `json:"hits"`
	Matched    int    `json:"matched"`
	Added      int    `json:"added"`
	MaxHeight  uint64 `json:"max_height"`
	Checkpoint uint64 `json:"checkpoint"`
	Skipped    string `json:"skipped,omitempty"`
}
