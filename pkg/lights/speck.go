package lights

import (
	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Speck is an isotropic point light: intensity follows the 1/(d+1)^2 law
// so a light at distance zero contributes unit intensity.
type Speck struct {
	Position  core.Point3
	Color     material.Color
	Intensity core.Precision
}

// NewSpeck returns a point light at position.
func NewSpeck(position core.Point3, color material.Color, intensity core.Precision) *Speck {
	return &Speck{Position: position, Color: color, Intensity: intensity}
}

func (s *Speck) Incident(worldPoint core.Point3, _ int) core.Ray {
	return core.NewRay(worldPoint, s.Position.Sub(worldPoint))
}

func (s *Speck) IntensityAt(worldPoint core.Point3) core.Precision {
	d := s.Position.Sub(worldPoint).Length()
	return s.Intensity * core.InverseSquare(d)
}

func (s *Speck) ColorAt(core.Point3) material.Color { return s.Color }

func (s *Speck) Emit(sample int) core.Ray {
	dir := core.Lambertian(16)[sample%16]
	return core.NewRay(s.Position, dir)
}

func (s *Speck) SampleCount() int { return 1 }
