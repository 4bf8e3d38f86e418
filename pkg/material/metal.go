package material

import "github.com/gorender/raytrace/pkg/core"

// Metal is a conductor preset: near-mirror smoothness, a tinted specular
// reflection (conductors filter the reflected color, unlike dielectrics),
// and no transmission.
type Metal struct {
	Base
	Tint Color
}

// NewMetal returns a metal material tinted by color with the given
// smoothness (typically SmoothnessPolished..SmoothnessPerfectMirror).
func NewMetal(color Color, smoothness core.Precision) *Metal {
	base := NewBase(color)
	base.MirrorFraction = smoothness
	base.Tightness = 200
	return &Metal{Base: base, Tint: color}
}

// Specular filters the incoming light color through the metal's tint,
// unlike the dielectric default which passes light color through
// unfiltered.
func (m *Metal) Specular(_ core.Point3, lightScale core.Precision, lightColor Color) Color {
	return m.Tint.Mul(lightColor).Scale(lightScale)
}
