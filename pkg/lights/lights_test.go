package lights

import (
	"testing"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
	"github.com/stretchr/testify/assert"
)

func TestSpeckInverseSquareFalloff(t *testing.T) {
	s := NewSpeck(core.NewPoint3(0, 0, 0), material.White, 1.0)
	near := s.IntensityAt(core.NewPoint3(0, 0, 0))
	far := s.IntensityAt(core.NewPoint3(0, 0, 9))
	assert.Equal(t, 1.0, near)
	assert.Less(t, far, near)
}

func TestBeamNoFalloff(t *testing.T) {
	b := NewBeam(core.NewVec3(0, -1, 0), material.White, 2.0)
	assert.Equal(t, 2.0, b.IntensityAt(core.NewPoint3(0, 0, 0)))
	assert.Equal(t, 2.0, b.IntensityAt(core.NewPoint3(100, 100, 100)))
}

func TestSpotOutsideConeIsZero(t *testing.T) {
	spot := NewSpot(core.NewPoint3(0, 5, 0), core.NewVec3(0, -1, 0), core.FromDegrees(10), material.White, 1.0)
	assert.Equal(t, 0.0, spot.IntensityAt(core.NewPoint3(100, 0, 0)))
	assert.Greater(t, spot.IntensityAt(core.NewPoint3(0, 0, 0)), 0.0)
}

func TestBulbSamplesOnSurface(t *testing.T) {
	bulb := NewBulb(core.NewPoint3(0, 0, 0), 2.0, material.White, 1.0, 16)
	p := bulb.samplePoint(0)
	assert.InDelta(t, 2.0, p.Sub(bulb.Position).Length(), 1e-9)
}
