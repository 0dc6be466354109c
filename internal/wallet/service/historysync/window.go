package historysync

import "github.com/goodnatureofminers/blockinsight7000-wallet/pkg/safe"

// window is an inclusive height range.
type window struct {
	from uint64
	to   uint64
}

func (w window) heights() []uint64 {
	if w.from > w.to {
		return nil
	}
	out := make([]uint64, 0, w.to-w.from+1)
	for h := w.from; h <= w.to; h++ {
		out = append(out, h)
	}
	return out
}

// scanWindow returns the heights a heartbeat cycle has to visit. A missing,
// stale or forced checkpoint restarts depth blocks behind head; otherwise the
// window continues right after the checkpoint.
func scanWindow(checkpoint, head uint64, forced bool, cfg Config) (window, bool) {
	depth := cfg.Depth
	if forced {
		depth = cfg.ForcedDepth
	}

	start := checkpoint
	if forced || start == 0 || safe.SubFloor(head, start) > cfg.LargeGapThreshold {
		start = safe.SubFloor(head, depth)
	}
	if start >= head {
		return window{}, false
	}

	end := head
	if start+depth < end {
		end = start + depth
	}
	return window{from: start + 1, to: end}, true
}
