package lights

import (
	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Bulb is a finite-radius sphere light, sampled at deterministic,
// golden-ratio-distributed surface points for stratified but reproducible
// area-light shading.
type Bulb struct {
	Position  core.Point3
	Radius    core.Precision
	Color     material.Color
	Intensity core.Precision
	Samples   int

	surfacePoints []core.Vec3
}

// NewBulb returns an area light of the given radius sampled n times per
// shading call; n below 16 is raised to 16.
func NewBulb(position core.Point3, radius core.Precision, color material.Color, intensity core.Precision, n int) *Bulb {
	if n < 16 {
		n = 16
	}
	return &Bulb{
		Position: position, Radius: radius, Color: color, Intensity: intensity,
		Samples: n, surfacePoints: core.Lambertian(n),
	}
}

func (b *Bulb) samplePoint(i int) core.Point3 {
	offset := b.surfacePoints[i%len(b.surfacePoints)].Multiply(b.Radius)
	return b.Position.Add(offset)
}

func (b *Bulb) Incident(worldPoint core.Point3, sample int) core.Ray {
	target := b.samplePoint(sample)
	return core.NewRay(worldPoint, target.Sub(worldPoint))
}

func (b *Bulb) IntensityAt(worldPoint core.Point3) core.Precision {
	d := b.Position.Sub(worldPoint).Length()
	return b.Intensity * core.InverseSquare(d)
}

func (b *Bulb) ColorAt(core.Point3) material.Color { return b.Color }

func (b *Bulb) Emit(sample int) core.Ray {
	p := b.samplePoint(sample)
	outward := p.Sub(b.Position).Normalize()
	return core.NewRay(p, outward)
}

func (b *Bulb) SampleCount() int { return b.Samples }
