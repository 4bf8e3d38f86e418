package material

import (
	"testing"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestCheckerboardAlternates(t *testing.T) {
	c := NewCheckerboard2D(White, Black, 1.0)
	a := c.Diffuse(core.NewPoint3(0.5, 0.5, 0))
	b := c.Diffuse(core.NewPoint3(1.5, 0.5, 0))
	assert.NotEqual(t, a, b)
}

func TestDielectricAbsorbanceBounds(t *testing.T) {
	d := NewDielectric(1.5).WithTint(0.3)
	c := d.Absorbance(core.Point3{}, 2.0)
	assert.Greater(t, c.R, 0.0)
	assert.LessOrEqual(t, c.R, 1.0)
}

func TestPerlinDeterministic(t *testing.T) {
	p1 := NewPerlin(42)
	p2 := NewPerlin(42)
	assert.Equal(t, p1.Noise3(1.1, 2.2, 3.3), p2.Noise3(1.1, 2.2, 3.3))
}

func TestMarblePoint(t *testing.T) {
	m := NewMarble(White, Black, 4, 6, 7)
	c := m.Diffuse(core.NewPoint3(1, 2, 3))
	assert.GreaterOrEqual(t, c.R, 0.0)
}

func TestMetalSpecularTintsLightColor(t *testing.T) {
	metal := NewMetal(Color{1, 0.5, 0.2}, SmoothnessMirror)
	spec := metal.Specular(core.Point3{}, 1.0, White)
	assert.InDelta(t, 0.5, spec.G, 1e-9)
}

func TestPhongDefaultsOpaque(t *testing.T) {
	p := NewPhong(Gray)
	assert.Equal(t, 0.0, p.Transmissivity(core.Point3{}))
	assert.Equal(t, 0.0, p.Smoothness(core.Point3{}))
}

func TestRadiosityConservesEnergyAndFavorsReflectionAtGrazingAngle(t *testing.T) {
	d := NewDielectric(1.5)
	head, transHead := d.Radiosity(core.Point3{}, 1.5, 1.0, 1.0)
	assert.InDelta(t, 1.0, head+transHead, 1e-9)

	grazing, transGrazing := d.Radiosity(core.Point3{}, 1.5, 0.05, 0.5)
	assert.InDelta(t, 1.0, grazing+transGrazing, 1e-9)
	assert.Greater(t, grazing, head)
}
