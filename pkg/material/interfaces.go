// Package material implements the medium abstraction: surfaces report how
// they absorb, reflect, transmit and emit light at a point, in the Phong/
// Fresnel shading model the renderer integrates against.
package material

import "github.com/gorender/raytrace/pkg/core"

// Smoothness names common mirror-coefficient presets, following the
// original implementation's smoothness namespace (none..perfect_mirror).
const (
	SmoothnessNone         core.Precision = 0.0
	SmoothnessBarely       core.Precision = 0.1
	SmoothnessSmall        core.Precision = 0.25
	SmoothnessPolished     core.Precision = 0.6
	SmoothnessMirror       core.Precision = 0.9
	SmoothnessPerfectMirror core.Precision = 1.0
)

// AmbientLevel names common ambient-scale presets (none/dim/glowy).
const (
	AmbientNone  core.Precision = 0.0
	AmbientDim   core.Precision = 0.05
	AmbientGlowy core.Precision = 0.35
)

// Color is a linear RGB triple in [0,1] per channel (not clamped here -
// clamping happens once, at the end of shading).
type Color struct {
	R, G, B core.Precision
}

// Add returns the componentwise sum.
func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }

// Scale returns c with every channel multiplied by s.
func (c Color) Scale(s core.Precision) Color { return Color{c.R * s, c.G * s, c.B * s} }

// Mul returns the componentwise (Hadamard) product of two colors.
func (c Color) Mul(o Color) Color { return Color{c.R * o.R, c.G * o.G, c.B * o.B} }

// Clamp01 clamps every channel into [0,1].
func (c Color) Clamp01() Color {
	return Color{core.Clamp(c.R, 0, 1), core.Clamp(c.G, 0, 1), core.Clamp(c.B, 0, 1)}
}

// White, Black and Gray are convenience constants for scene authoring.
var (
	White = Color{1, 1, 1}
	Black = Color{0, 0, 0}
	Gray  = Color{0.5, 0.5, 0.5}
)

// Material is the medium contract a surface point satisfies. Every method
// takes the hit point as the renderer passes it (the world-space
// core.Hit.Point); Radiosity and Absorbance also take the angles/path
// length the shading integrator already computed.
type Material interface {
	// Ambient returns the material's ambient contribution at p.
	Ambient(p core.Point3) Color
	// Diffuse returns the diffuse base color at p.
	Diffuse(p core.Point3) Color
	// Specular returns the specular highlight color at p, given the
	// incoming light's own color and intensity scale.
	Specular(p core.Point3, lightScale core.Precision, lightColor Color) Color
	// SpecularTightness returns the Phong exponent K at p.
	SpecularTightness(p core.Point3) core.Precision
	// Smoothness returns the mirror fraction in [0,1] at p.
	Smoothness(p core.Point3) core.Precision
	// Emissive returns the material's additive self-light at p.
	Emissive(p core.Point3) Color
	// RefractiveIndex returns the scalar refractive index eta at p.
	RefractiveIndex(p core.Point3) core.Precision
	// Transmissivity returns the transmission fraction in [0,1] at p.
	Transmissivity(p core.Point3) core.Precision
	// Absorbance returns the Beer's-law transmittance color for light
	// traveling the given distance through the medium from p.
	Absorbance(p core.Point3, distance core.Precision) Color
	// Perturbation returns a small vector added to the surface normal,
	// for bump/noise materials; the zero vector for flat materials.
	Perturbation(p core.Point3) core.Vec3
	// Radiosity computes the Fresnel energy split between reflection and
	// transmission given the two angle cosines and the second medium's
	// index; it defaults (via Schlick) for ordinary dielectrics. The
	// Whitted integrator in pkg/renderer weights its reflection and
	// refraction branches by Smoothness/Transmissivity directly rather
	// than by this per-angle split, so Radiosity is part of the Material
	// contract for materials and tests that want an explicit Fresnel
	// term (e.g. a material blending reflectance by viewing angle) but
	// is not itself called from the render loop.
	Radiosity(p core.Point3, n2, cosI, cosT core.Precision) (reflected, transmitted core.Precision)
}

// Base implements Material with the common defaults (opaque, non-emissive,
// non-reflective, eta=1) that concrete materials embed and override.
type Base struct {
	AmbientColor    Color
	AmbientScale    core.Precision
	DiffuseColor    Color
	SpecularColor   Color
	Tightness       core.Precision
	MirrorFraction  core.Precision
	EmissiveColor   Color
	RefractiveEta   core.Precision
	Transmission    core.Precision
	AbsorbanceCoeff core.Precision
}

// NewBase returns a fully opaque, non-reflective, non-emissive Base with
// unit refractive index - a plain diffuse starting point.
func NewBase(diffuse Color) Base {
	return Base{
		AmbientColor:  diffuse,
		AmbientScale:  AmbientDim,
		DiffuseColor:  diffuse,
		SpecularColor: White,
		Tightness:     20,
		RefractiveEta: 1.0,
	}
}

func (b Base) Ambient(core.Point3) Color { return b.AmbientColor.Scale(b.AmbientScale) }
func (b Base) Diffuse(core.Point3) Color { return b.DiffuseColor }
func (b Base) Specular(_ core.Point3, lightScale core.Precision, lightColor Color) Color {
	return b.SpecularColor.Mul(lightColor).Scale(lightScale)
}
func (b Base) SpecularTightness(core.Point3) core.Precision { return b.Tightness }
func (b Base) Smoothness(core.Point3) core.Precision        { return b.MirrorFraction }
func (b Base) Emissive(core.Point3) Color                   { return b.EmissiveColor }
func (b Base) RefractiveIndex(core.Point3) core.Precision   { return b.RefractiveEta }
func (b Base) Transmissivity(core.Point3) core.Precision    { return b.Transmission }
func (b Base) Absorbance(core.Point3, core.Precision) Color { return White }
func (b Base) Perturbation(core.Point3) core.Vec3           { return core.Vec3{} }

func (b Base) Radiosity(_ core.Point3, n2, cosI, _ core.Precision) (reflected, transmitted core.Precision) {
	reflected = core.Schlick(1.0, n2, cosI)
	return reflected, 1 - reflected
}
