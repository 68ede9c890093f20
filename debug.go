package lview

import (
	"time"

	"github.com/sirupsen/logrus"
)

// debugStats holds per-frame timing and primitive counts.
// Only populated when the engine is in debug mode.
type debugStats struct {
	traverseTime   time.Duration
	rasterTime     time.Duration
	primitiveCount int
	drawnCount     int
}

// debugLog writes the frame's stats at debug level.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	logger.WithFields(logrus.Fields{
		"frame":      e.frame,
		"traverse":   stats.traverseTime,
		"raster":     stats.rasterTime,
		"primitives": stats.primitiveCount,
		"drawn":      stats.drawnCount,
	}).Debug("frame stats")
}

// debugDumpTree writes the whole tree at debug level every DumpInterval
// frames.
func (e *Engine) debugDumpTree() {
	if !e.debug || e.DumpInterval == 0 || e.frame%e.DumpInterval != 0 {
		return
	}
	debugCheckTreeDepth(e.root)
	logger.WithField("frame", e.frame).Debugf("view tree:\n%s", e.root)
}

// debugMaxTreeDepth is the depth past which a warning is logged.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(root *View) {
	maxDepth := 0
	root.Walk(func(_ *View, depth int) bool {
		if depth > maxDepth {
			maxDepth = depth
		}
		return true
	})
	if maxDepth+1 > debugMaxTreeDepth {
		logger.WithFields(logrus.Fields{
			"depth":     maxDepth + 1,
			"threshold": debugMaxTreeDepth,
			"root":      root.ID,
		}).Warn("view tree depth exceeds threshold")
	}
}

// debugMaxChildCount is the child count past which a warning is logged.
const debugMaxChildCount = 1000

func debugCheckChildCount(v *View) {
	if len(v.children) > debugMaxChildCount {
		logger.WithFields(logrus.Fields{
			"view":      v.ID,
			"children":  len(v.children),
			"threshold": debugMaxChildCount,
		}).Warn("view has too many children")
	}
}

// countDrawable counts primitives the rasterizer will actually draw.
func countDrawable(prims []Primitive) int {
	n := 0
	for i := range prims {
		if !prims[i].Rect.Empty() && prims[i].Color.A > 0 {
			n++
		}
	}
	return n
}

// globalDebug mirrors the most recently set Engine debug flag so that view
// operations (which lack an Engine pointer) can check it cheaply.
var globalDebug bool
