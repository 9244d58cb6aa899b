package hitgraph

import (
	"fmt"
	"time"
)

// dispatchStats holds per-dispatch timing. Only populated in debug mode.
type dispatchStats struct {
	resolveTime time.Duration
	deliverTime time.Duration
	invoked     int
}

// debugLog reports timing for one dispatch at Debug level.
func (d *Dispatcher) debugLog(kind EventKind, target Node, stats dispatchStats) {
	if !d.debug {
		return
	}
	Logger().Debug("hitgraph: dispatch",
		"event", kind.String(),
		"target", fmt.Sprintf("%v", target),
		"invoked", stats.invoked,
		"resolve", stats.resolveTime,
		"deliver", stats.deliverTime,
		"total", stats.resolveTime+stats.deliverTime,
	)
}

// debugCheckChainDepth warns if an ancestor chain is suspiciously deep.
const debugMaxChainDepth = 32

func debugCheckChainDepth(depth int, target Node) {
	if depth > debugMaxChainDepth {
		Logger().Warn("hitgraph: ancestor chain depth exceeds threshold",
			"depth", depth, "threshold", debugMaxChainDepth, "target", fmt.Sprintf("%v", target))
	}
}
