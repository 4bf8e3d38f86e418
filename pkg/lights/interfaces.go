// Package lights implements the light hierarchy: beam (directional),
// speck (point), bulb (finite-radius area) and spot (cone-restricted
// point), all behind a common shading contract.
package lights

import (
	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Light is the shading contract every light variant satisfies.
type Light interface {
	// Incident returns a ray from worldPoint toward the light for the
	// given sample index (0 for analytic lights with SampleCount()==1).
	Incident(worldPoint core.Point3, sample int) core.Ray
	// IntensityAt returns the scalar falloff at worldPoint.
	IntensityAt(worldPoint core.Point3) core.Precision
	// ColorAt returns the light's color contribution at worldPoint.
	ColorAt(worldPoint core.Point3) material.Color
	// Emit returns a reproducible, deterministic outgoing ray from the
	// light, for emissive/bidirectional use.
	Emit(sample int) core.Ray
	// SampleCount returns how many shading samples this light wants per
	// shaded point: 1 for analytic lights, N>=16 for area lights.
	SampleCount() int
}
