package material

import "github.com/gorender/raytrace/pkg/core"

// Phong is a plain opaque material: constant ambient/diffuse/specular
// colors, a Phong exponent, and no reflection or transmission. It is the
// default material class most scenes build other materials from by
// embedding and overriding fields.
type Phong struct {
	Base
}

// NewPhong returns a fully diffuse Phong material of the given color with
// a mild specular highlight.
func NewPhong(diffuse Color) *Phong {
	return &Phong{Base: NewBase(diffuse)}
}

// WithSpecular sets the specular color and tightness and returns the
// receiver for chained construction.
func (p *Phong) WithSpecular(color Color, tightness core.Precision) *Phong {
	p.SpecularColor = color
	p.Tightness = tightness
	return p
}

// WithAmbient sets the ambient scale and returns the receiver.
func (p *Phong) WithAmbient(scale core.Precision) *Phong {
	p.AmbientScale = scale
	return p
}

// WithEmissive sets the emissive color and returns the receiver.
func (p *Phong) WithEmissive(color Color) *Phong {
	p.EmissiveColor = color
	return p
}
