package material

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
)

// Marble modulates two colors along a sine-warped turbulence field,
// the classic Perlin marble construction: stripes defined by
// sin(scale*axis + gain*turbulence(p)) remapped to [0,1].
type Marble struct {
	Base
	Veins, Stone Color
	Scale, Gain  core.Precision
	noise        *Perlin
}

// NewMarble returns a marble texture seeded by seed so identical seeds
// reproduce identical veining.
func NewMarble(stone, veins Color, scale, gain core.Precision, seed int64) *Marble {
	return &Marble{Base: NewBase(stone), Veins: veins, Stone: stone, Scale: scale, Gain: gain, noise: NewPerlin(seed)}
}

func (m *Marble) Diffuse(p core.Point3) Color {
	t := m.noise.Turbulence(p.X, p.Y, p.Z, 6)
	marble := 0.5 * (1 + math.Sin(m.Scale*p.X+m.Gain*t))
	return m.Stone.Scale(1 - marble).Add(m.Veins.Scale(marble))
}
