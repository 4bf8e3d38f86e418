package material

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
)

// NoiseFunctor is a pseudo-random-noise material parameterized by three
// seed angles, a radius, and a gain: it averages three sine waves (one per
// axis, phase-shifted by the seed angles, with radius as their frequency)
// and adds one Perlin noise sample at the same frequency scaled by gain,
// then maps the sum into a Low..High blend - a cheap,
// deterministic alternative to Marble when only a single wobble frequency
// is wanted rather than full veining.
type NoiseFunctor struct {
	Base
	Low, High           Color
	SeedX, SeedY, SeedZ core.Angle
	Radius, Gain        core.Precision
	noise               *Perlin
}

// NewNoiseFunctor returns a noise functor seeded by seed.
func NewNoiseFunctor(low, high Color, seedX, seedY, seedZ core.Angle, radius, gain core.Precision, seed int64) *NoiseFunctor {
	return &NoiseFunctor{
		Base: NewBase(low), Low: low, High: high,
		SeedX: seedX, SeedY: seedY, SeedZ: seedZ,
		Radius: radius, Gain: gain, noise: NewPerlin(seed),
	}
}

func (f *NoiseFunctor) Diffuse(p core.Point3) Color {
	wobble := math.Sin(p.X*f.Radius+f.SeedX.Radians()) +
		math.Sin(p.Y*f.Radius+f.SeedY.Radians()) +
		math.Sin(p.Z*f.Radius+f.SeedZ.Radians())
	field := f.noise.Noise3(p.X*f.Radius, p.Y*f.Radius, p.Z*f.Radius)
	t := core.Clamp(0.5+0.5*(f.Gain*field+wobble/3), 0, 1)
	return f.Low.Scale(1 - t).Add(f.High.Scale(t))
}
