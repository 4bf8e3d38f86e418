package lights

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Spot is a point light restricted to a cone: points outside the cone
// receive zero intensity, points inside receive the speck falloff law
// multiplied by a cosine attenuation against the cone axis.
type Spot struct {
	Position  core.Point3
	Axis      core.Vec3 // direction the spot points, normalized
	HalfAngle core.Angle
	Color     material.Color
	Intensity core.Precision
}

// NewSpot returns a spotlight at position pointing along axis with the
// given half-angle.
func NewSpot(position core.Point3, axis core.Vec3, halfAngle core.Angle, color material.Color, intensity core.Precision) *Spot {
	return &Spot{Position: position, Axis: axis.Normalize(), HalfAngle: halfAngle, Color: color, Intensity: intensity}
}

func (s *Spot) withinCone(worldPoint core.Point3) (core.Precision, bool) {
	toPoint := worldPoint.Sub(s.Position).Normalize()
	cosAngle := toPoint.Dot(s.Axis)
	cosLimit := math.Cos(s.HalfAngle.Radians())
	return cosAngle, cosAngle >= cosLimit
}

func (s *Spot) Incident(worldPoint core.Point3, _ int) core.Ray {
	return core.NewRay(worldPoint, s.Position.Sub(worldPoint))
}

func (s *Spot) IntensityAt(worldPoint core.Point3) core.Precision {
	cosAngle, inside := s.withinCone(worldPoint)
	if !inside {
		return 0
	}
	d := s.Position.Sub(worldPoint).Length()
	return s.Intensity * core.InverseSquare(d) * cosAngle
}

func (s *Spot) ColorAt(core.Point3) material.Color { return s.Color }

func (s *Spot) Emit(sample int) core.Ray {
	samples := core.Lambertian(32)
	dir := samples[sample%len(samples)]
	cosLimit := math.Cos(s.HalfAngle.Radians())
	if dir.Dot(s.Axis) < cosLimit {
		dir = s.Axis
	}
	return core.NewRay(s.Position, dir)
}

func (s *Spot) SampleCount() int { return 1 }
