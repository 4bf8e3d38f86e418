package renderer

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/geometry"
	"github.com/gorender/raytrace/pkg/lights"
	"github.com/gorender/raytrace/pkg/material"
	"github.com/gorender/raytrace/pkg/scene"
)

// SampleMode selects between the image plane's two subsampling stencils.
type SampleMode int

const (
	// SampleDeterministic uses the fixed 25-point stencil. This is the
	// default per spec.md §4.10.
	SampleDeterministic SampleMode = iota
	// SampleJittered uses a seeded per-pixel random jitter.
	SampleJittered
)

// Renderer walks the image plane through a Camera into a Scene, shading
// each hit with the Whitted-style recursive integrator: ambient + emissive,
// per-light diffuse/specular with shadow testing, then recursive mirror
// reflection and recursive dielectric refraction sharing one depth budget.
type Renderer struct {
	Scene      *scene.Scene
	Camera     *Camera
	Mode       SampleMode
	Seed       int64
	NumWorkers int
}

// NewRenderer builds a renderer over sc seen through cam, using the
// deterministic subsampling stencil by default.
func NewRenderer(sc *scene.Scene, cam *Camera) *Renderer {
	return &Renderer{Scene: sc, Camera: cam, Mode: SampleDeterministic, NumWorkers: 0}
}

// Render produces a full image, dispatching rows across NumWorkers
// goroutines (0 meaning one per CPU, runtime.NumCPU) and invoking onRowComplete, if
// non-nil, after each row finishes.
func (r *Renderer) Render(onRowComplete RowCompleteFunc) *Image {
	img := NewImage(r.Camera.Width, r.Camera.Height)

	RenderRows(r.Camera.Height, r.NumWorkers, func(y int) {
		for x := 0; x < r.Camera.Width; x++ {
			if img.Skip(x, y) {
				continue
			}
			img.Blend(x, y, r.shadePixel(x, y))
		}
	}, onRowComplete)

	return img
}

func (r *Renderer) stencil(x, y int) []core.Vec2 {
	if r.Mode == SampleJittered {
		return core.JitteredStencil(25, x, y, r.Seed)
	}
	return core.SubpixelStencil()
}

// shadePixel casts one ray per subsample offset and returns the raw
// linear-space samples; Image.Blend does the accumulation.
func (r *Renderer) shadePixel(x, y int) []core.Vec3 {
	offsets := r.stencil(x, y)
	samples := make([]core.Vec3, len(offsets))
	for i, o := range offsets {
		ray := r.Camera.Cast(core.Precision(x)+o.X+0.5, core.Precision(y)+o.Y+0.5)
		c := r.shadeRay(ray, r.Scene.MaxDepth)
		samples[i] = core.NewVec3(c.R, c.G, c.B)
	}
	return samples
}

// shadeRay evaluates a single ray against the scene, returning linear color.
func (r *Renderer) shadeRay(ray core.Ray, depth int) material.Color {
	hit, obj, ok := r.Scene.Intersect(ray, core.Epsilon)
	if !ok {
		return r.Scene.Background
	}
	return r.shadeHit(ray, hit, obj, depth)
}

// shadeHit implements spec.md §4.11's five-step shading algorithm.
func (r *Renderer) shadeHit(ray core.Ray, hit core.Hit, obj geometry.Object, depth int) material.Color {
	mat := obj.Material()
	if mat == nil {
		return r.Scene.Background
	}

	normal, _ := core.FaceForward(hit.Normal, ray.Direction.Normalize())
	view := ray.Direction.Normalize().Negate()

	// Step 1: ambient + emissive.
	c := mat.Ambient(hit.Point).Add(mat.Emissive(hit.Point))

	// Step 2: direct lighting, one light at a time, averaged over samples.
	for _, light := range r.Scene.Lights {
		c = c.Add(r.directLighting(hit.Point, normal, view, mat, light))
	}

	smoothness := mat.Smoothness(hit.Point)
	transmissivity := mat.Transmissivity(hit.Point)

	// Step 3: recursive mirror reflection.
	if depth > 0 && smoothness > 0 {
		reflected := core.Reflect(ray.Direction.Normalize(), normal)
		origin := hit.Point.Add(normal.Multiply(core.ShadowEpsilon))
		reflColor := r.shadeRay(core.NewRay(origin, reflected), depth-1)
		c = c.Add(reflColor.Scale(smoothness))
	}

	// Step 4: recursive dielectric refraction.
	if depth > 0 && transmissivity > 0 {
		c = c.Add(r.refract(ray, hit, obj, mat, depth))
	}

	// Step 5: clamp to [0,1] per channel.
	return c.Clamp01()
}

// directLighting accumulates one light's diffuse+specular contribution,
// averaged over its sample count, with a shadow test per sample.
func (r *Renderer) directLighting(point core.Point3, normal, view core.Vec3, mat material.Material, light lights.Light) material.Color {
	n := light.SampleCount()
	if n <= 0 {
		n = 1
	}

	total := material.Color{}
	for s := 0; s < n; s++ {
		toLight := light.Incident(point, s)
		lightDir := toLight.Direction.Normalize()

		if normal.Dot(lightDir) <= 0 {
			continue
		}

		shadowOrigin := point.Add(normal.Multiply(core.ShadowEpsilon))
		shadowRay := core.NewRay(shadowOrigin, lightDir)
		lightDistance := toLight.Direction.Length()
		if _, isBeam := light.(*lights.Beam); isBeam {
			lightDistance = math.Inf(1)
		}
		if r.occluded(shadowRay, lightDistance) {
			continue
		}

		intensity := light.IntensityAt(point)
		lightColor := light.ColorAt(point)

		diffuse := mat.Diffuse(point).Mul(lightColor).Scale(intensity * normal.Dot(lightDir))

		reflected := core.Reflect(lightDir.Negate(), normal)
		specAngle := reflected.Dot(view)
		spec := material.Color{}
		if specAngle > 0 {
			k := mat.SpecularTightness(point)
			scale := math.Pow(specAngle, k) * intensity
			spec = mat.Specular(point, scale, lightColor)
		}

		total = total.Add(diffuse).Add(spec)
	}
	return total.Scale(1.0 / core.Precision(n))
}

// occluded reports whether the scene has something strictly closer than
// the light along the unit-direction shadowRay, the light lying
// lightDistance units away (infinitely far for a beam).
func (r *Renderer) occluded(shadowRay core.Ray, lightDistance core.Precision) bool {
	hit, _, ok := r.Scene.Intersect(shadowRay, core.ShadowEpsilon)
	if !ok {
		return false
	}
	return hit.T < lightDistance
}

// refract computes the transmitted ray via Snell's law, falling back to
// pure reflection on total internal reflection, then applies Beer
// absorption along the internal segment. It uses the primitive's own raw
// geometric normal (not the view-facing one shadeHit shades with) since
// telling entry from exit requires the normal's true, unflipped side.
func (r *Renderer) refract(ray core.Ray, hit core.Hit, obj geometry.Object, mat material.Material, depth int) material.Color {
	dir := ray.Direction.Normalize()
	geomNormal := obj.Normal(hit.Point)
	entering := dir.Dot(geomNormal) < 0

	n1, n2 := core.Precision(1.0), mat.RefractiveIndex(hit.Point)
	surfaceNormal := geomNormal
	if !entering {
		n1, n2 = n2, n1
		surfaceNormal = geomNormal.Negate()
	}

	refracted, ok := core.Snell(dir, surfaceNormal, n1, n2)
	if !ok {
		reflected := core.Reflect(dir, surfaceNormal)
		origin := hit.Point.Add(surfaceNormal.Multiply(core.ShadowEpsilon))
		c := r.shadeRay(core.NewRay(origin, reflected), depth-1)
		return c.Scale(mat.Transmissivity(hit.Point))
	}

	origin := hit.Point.Add(surfaceNormal.Negate().Multiply(core.ShadowEpsilon))
	innerRay := core.NewRay(origin, refracted)
	exitHit, exitObj, ok := r.Scene.Intersect(innerRay, core.Epsilon)

	var shaded material.Color
	var segmentLength core.Precision
	if ok {
		shaded = r.shadeHit(innerRay, exitHit, exitObj, depth-1)
		segmentLength = exitHit.T
	} else {
		shaded = r.Scene.Background
	}

	absorbed := mat.Absorbance(hit.Point, segmentLength)
	return shaded.Mul(absorbed).Scale(mat.Transmissivity(hit.Point))
}
