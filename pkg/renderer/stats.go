package renderer

import (
	"time"

	"github.com/gorender/raytrace/pkg/core"
)

// RenderStats summarizes a completed render for CLI/progress reporting.
type RenderStats struct {
	Width, Height    int
	SamplesPerPixel  int
	Elapsed          time.Duration
	SolverInvocations uint64
}

// NewRenderStats captures stats for a width x height, samples-per-pixel
// render that took elapsed wall time. The solver-invocation count comes
// from core's process-wide atomic counter, the only piece of shared
// mutable state the rendering hot path touches.
func NewRenderStats(width, height, samplesPerPixel int, elapsed time.Duration) RenderStats {
	return RenderStats{
		Width:             width,
		Height:            height,
		SamplesPerPixel:   samplesPerPixel,
		Elapsed:           elapsed,
		SolverInvocations: core.SolverInvocations(),
	}
}
