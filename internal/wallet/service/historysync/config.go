package historysync

import "time"

// Config tunes scan windows and concurrency. Zero fields take defaults.
type Config struct {
	// Depth is the maximum number of heights scanned per heartbeat cycle.
	Depth uint64
	// ForcedDepth is the window size of a forced rescan.
	ForcedDepth uint64
	// LargeGapThreshold is the checkpoint lag beyond which the heartbeat
	// skips ahead to head-Depth instead of replaying.
	LargeGapThreshold uint64
	// GapLimit is the number of search results requested by gap sync.
	GapLimit int
	// Interval is the pause between heartbeat cycles.
	Interval    time.Duration
	WorkerCount int
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Depth:             defaultDepth,
		ForcedDepth:       defaultForcedDepth,
		LargeGapThreshold: defaultLargeGap,
		GapLimit:          defaultGapLimit,
		Interval:          defaultInterval,
		WorkerCount:       defaultWorkerCount,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Depth == 0 {
		c.Depth = d.Depth
	}
	if c.ForcedDepth == 0 {
		c.ForcedDepth = d.ForcedDepth
	}
	if c.LargeGapThreshold == 0 {
		c.LargeGapThreshold = d.LargeGapThreshold
	}
	if c.GapLimit <= 0 {
		c.GapLimit = d.GapLimit
	}
	if c.Interval <= 0 {
		c.Interval = d.Interval
	}
	if c.WorkerCount <= 0 {
		c.WorkerCount = d.WorkerCount
	}
	return c
}
