package material

import "github.com/gorender/raytrace/pkg/core"

// Dielectric is a transparent/refractive preset (glass, water): a
// refractive index greater than 1, full transmissivity, and absorption
// following Beer's law along the internal path length.
type Dielectric struct {
	Base
	Tint core.Precision // absorbance coefficient; 0 is perfectly clear
}

// NewDielectric returns a clear dielectric of the given refractive index
// (1.0 is vacuum/air; glass is typically 1.5, water 1.33, diamond 2.42).
func NewDielectric(refractiveIndex core.Precision) *Dielectric {
	base := NewBase(Black)
	base.RefractiveEta = refractiveIndex
	base.Transmission = 1.0
	base.MirrorFraction = 0
	base.Tightness = 400
	return &Dielectric{Base: base}
}

// WithTint sets the Beer's-law absorbance coefficient (applied uniformly
// across channels) and returns the receiver.
func (d *Dielectric) WithTint(absorbance core.Precision) *Dielectric {
	d.Tint = absorbance
	return d
}

// Absorbance applies Beer's law uniformly across channels using the
// dielectric's tint coefficient.
func (d *Dielectric) Absorbance(_ core.Point3, distance core.Precision) Color {
	t := core.Beers(distance, d.Tint)
	return Color{t, t, t}
}
