package renderer_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/geometry"
	"github.com/gorender/raytrace/pkg/lights"
	"github.com/gorender/raytrace/pkg/material"
	"github.com/gorender/raytrace/pkg/renderer"
	"github.com/gorender/raytrace/pkg/scene"
)

// TestSphereIntersectionOnAxis is spec.md §8 Scenario A: for the center
// rays of a 2x2 image looking at a sphere of radius 2 centered at the
// origin from (0,0,5), the nearest hit must land at z=2 within 1e-9.
func TestSphereIntersectionOnAxis(t *testing.T) {
	sphere := geometry.NewSphere(core.NewPoint3(0, 0, 0), 2, material.NewPhong(material.White))
	sc := scene.New([]geometry.Object{sphere}, nil, material.Black, 1)

	cam := renderer.NewCamera(2, 2, core.FromDegrees(90))
	cam.MoveTo(core.NewPoint3(0, 0, 5), core.NewPoint3(0, 0, 0))

	ray := cam.Cast(1.0, 1.0) // the four center sub-rays converge near here
	hit, _, ok := sc.Intersect(ray, core.Epsilon)
	require.True(t, ok)
	assert.InDelta(t, 2.0, hit.Point.Z, 1e-6)
}

// renderAbove renders a single pixel looking straight down -Z at target
// from 1 unit above it (below the shadow test's sphere), returning the
// shaded color.
func renderAbove(sc *scene.Scene, target core.Point3) core.Vec3 {
	cam := renderer.NewCamera(1, 1, core.FromDegrees(1))
	cam.MoveTo(core.NewPoint3(target.X, target.Y, target.Z+1), target)
	img := renderer.NewRenderer(sc, cam).Render(nil)
	return img.At(0, 0)
}

func maxChannel(c core.Vec3) core.Precision {
	return max(c.X, c.Y, c.Z)
}

// TestPlaneShadow is spec.md §8 Scenario B: a point directly beneath a
// sphere, lit by a beam aligned with -Z, must be in shadow; a point one
// radius away must be lit.
func TestPlaneShadow(t *testing.T) {
	floor := geometry.NewPlane(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, 1), 1.0, material.NewPhong(material.White))
	sphere := geometry.NewSphere(core.NewPoint3(0, 0, 3), 1, material.NewPhong(material.White))
	beam := lights.NewBeam(core.NewVec3(0, 0, -1), material.White, 1.0)
	sc := scene.New([]geometry.Object{floor, sphere}, []lights.Light{beam}, material.Black, 2)

	shadowed := renderAbove(sc, core.NewPoint3(0, 0, 0))
	assert.LessOrEqual(t, maxChannel(shadowed), 0.05)

	lit := renderAbove(sc, core.NewPoint3(2, 0, 0))
	assert.GreaterOrEqual(t, maxChannel(lit), 0.4)
}

// TestReflectionRecurses is spec.md §8 Scenario C's core claim in
// miniature: a mirror sphere facing a colored wall must pick up the
// wall's color via a second bounce rather than returning the background.
func TestReflectionRecurses(t *testing.T) {
	// The wall sits behind the camera, so only a reflection off the
	// sphere can bring its red into the pixel.
	wall := geometry.NewSquare(core.NewPoint3(0, 0, 20), core.NewVec3(0, 0, -1), 20, 1.0, material.NewPhong(material.Color{R: 1}))
	mirror := geometry.NewSphere(core.NewPoint3(0, 0, 0), 2, material.NewMetal(material.White, material.SmoothnessPerfectMirror))
	speck := lights.NewSpeck(core.NewPoint3(0, 5, 5), material.White, 20.0)
	sc := scene.New([]geometry.Object{wall, mirror}, []lights.Light{speck}, material.Black, 4)

	cam := renderer.NewCamera(1, 1, core.FromDegrees(20))
	cam.MoveTo(core.NewPoint3(0, 0, 10), core.NewPoint3(0, 0, 0))

	img := renderer.NewRenderer(sc, cam).Render(nil)
	c := img.At(0, 0)
	assert.Greater(t, c.X, 0.05)
	assert.Greater(t, c.X, c.Y)
}

// TestRefractionTransmitsThroughGlass checks that a ray through a clear
// glass slab reaches a background-colored source beyond it, rather than
// stopping at the slab's own (black, non-emissive) diffuse color.
func TestRefractionTransmitsThroughGlass(t *testing.T) {
	glass := material.NewDielectric(1.5)
	slab := geometry.NewCuboid(core.NewPoint3(0, 0, 0), core.NewVec3(3, 3, 0.5), glass)
	sc := scene.New([]geometry.Object{slab}, nil, material.Color{R: 1, G: 1, B: 1}, 4)

	cam := renderer.NewCamera(1, 1, core.FromDegrees(10))
	cam.MoveTo(core.NewPoint3(0, 0, 10), core.NewPoint3(0, 0, 0))

	img := renderer.NewRenderer(sc, cam).Render(nil)
	c := img.At(0, 0)
	assert.Greater(t, maxChannel(c), 0.5)
}

func TestRenderRowsCoversEveryRow(t *testing.T) {
	const height = 17
	seen := make([]bool, height)
	var mu sync.Mutex
	renderer.RenderRows(height, 4, func(row int) {
		mu.Lock()
		seen[row] = true
		mu.Unlock()
	}, nil)
	for i, ok := range seen {
		require.True(t, ok, "row %d was never rendered", i)
	}
}

func TestRenderRowsInvokesCompleteCallbackOncePerRow(t *testing.T) {
	const height = 8
	counts := make([]int, height)
	var mu sync.Mutex
	renderer.RenderRows(height, 3, func(int) {}, func(row int) {
		mu.Lock()
		counts[row]++
		mu.Unlock()
	})
	for i, n := range counts {
		assert.Equal(t, 1, n, "row %d completed %d times", i, n)
	}
}
