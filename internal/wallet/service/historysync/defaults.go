package historysync

import "time"

const (
	defaultDepth            uint64 = 20
	defaultForcedDepth      uint64 = 100
	defaultLargeGap         uint64 = 1000
	defaultGapLimit                = 50
	defaultInterval                = 5 * time.Second
	defaultWorkerCount             = 8
	defaultTimestampWorkers        = 8

	strategyEvents = "events"
	strategyBlock  = "block"

	sourceHeartbeat = "heartbeat"
	sourceGap       = "gap"
)
