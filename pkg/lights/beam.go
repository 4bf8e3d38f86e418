package lights

import (
	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Beam is a directional light with no falloff, like sunlight: every point
// in the scene receives the same intensity from the same direction.
type Beam struct {
	Direction core.Vec3 // direction the light travels (not toward the light)
	Color     material.Color
	Intensity core.Precision
}

// NewBeam returns a directional light traveling along direction.
func NewBeam(direction core.Vec3, color material.Color, intensity core.Precision) *Beam {
	return &Beam{Direction: direction.Normalize(), Color: color, Intensity: intensity}
}

func (b *Beam) Incident(worldPoint core.Point3, _ int) core.Ray {
	return core.NewRay(worldPoint, b.Direction.Negate())
}

func (b *Beam) IntensityAt(core.Point3) core.Precision { return b.Intensity }
func (b *Beam) ColorAt(core.Point3) material.Color      { return b.Color }

func (b *Beam) Emit(int) core.Ray {
	origin := core.NewPoint3(0, 0, 0).Add(b.Direction.Negate().Multiply(1000))
	return core.NewRay(origin, b.Direction)
}

func (b *Beam) SampleCount() int { return 1 }
