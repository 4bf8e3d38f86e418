package geometry

import (
	"testing"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
	"github.com/stretchr/testify/assert"
)

func TestSphereRoundTrip(t *testing.T) {
	s := NewSphere(core.NewPoint3(0, 0, 0), 1, material.NewPhong(material.Gray))
	ray := core.NewRay(core.NewPoint3(0, 0, -5), core.NewVec3(0, 0, 1))
	hit, ok := s.Intersect(ray, 0)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, hit.T, 1e-6)
	assert.InDelta(t, 1.0, hit.Normal.Length(), 1e-6)
}

func TestSphereNormalPointsOutward(t *testing.T) {
	s := NewSphere(core.NewPoint3(0, 0, 0), 2, material.NewPhong(material.Gray))
	n := s.Normal(core.NewPoint3(2, 0, 0))
	assert.InDelta(t, 1.0, n.X, 1e-6)
}

func TestPlaneMissesParallelRay(t *testing.T) {
	p := NewPlane(core.NewPoint3(0, 0, 0), core.NewVec3(0, 1, 0), 1, material.NewPhong(material.Gray))
	ray := core.NewRay(core.NewPoint3(0, 1, 0), core.NewVec3(1, 0, 0))
	_, ok := p.Intersect(ray, 0)
	assert.False(t, ok)
}

func TestCuboidContainsCenter(t *testing.T) {
	c := NewCuboid(core.NewPoint3(0, 0, 0), core.NewVec3(1, 1, 1), material.NewPhong(material.Gray))
	assert.True(t, c.Contains(core.NewPoint3(0, 0, 0)))
	assert.False(t, c.Contains(core.NewPoint3(5, 0, 0)))
}

func TestOverlapSubtractiveCarvesHole(t *testing.T) {
	m := material.NewPhong(material.Gray)
	a := NewSphere(core.NewPoint3(0, 0, 0), 2, m)
	b := NewSphere(core.NewPoint3(0, 0, 0), 1, m)
	carved := NewOverlap(a, b, OverlapSubtractive, m)

	assert.True(t, carved.Contains(core.NewPoint3(1.5, 0, 0)))
	assert.False(t, carved.Contains(core.NewPoint3(0, 0, 0)))
}

func TestOverlapInclusiveIsIntersection(t *testing.T) {
	m := material.NewPhong(material.Gray)
	a := NewSphere(core.NewPoint3(-0.5, 0, 0), 1, m)
	b := NewSphere(core.NewPoint3(0.5, 0, 0), 1, m)
	both := NewOverlap(a, b, OverlapInclusive, m)

	assert.True(t, both.Contains(core.NewPoint3(0, 0, 0)))
	assert.False(t, both.Contains(core.NewPoint3(-1.4, 0, 0)))
}

func TestGroupIntersectsNearestChild(t *testing.T) {
	m := material.NewPhong(material.Gray)
	g := NewGroup()
	g.Add(NewSphere(core.NewPoint3(0, 0, 0), 1, m))
	g.Add(NewSphere(core.NewPoint3(0, 0, 10), 1, m))

	ray := core.NewRay(core.NewPoint3(0, 0, -5), core.NewVec3(0, 0, 1))
	hit, ok := g.Intersect(ray, 0)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, hit.T, 1e-6)
}

func TestModelRebasesAroundCentroid(t *testing.T) {
	m := material.NewPhong(material.Gray)
	faces := []ModelFace{
		{Vertices: [3]core.Point3{
			core.NewPoint3(9, 10, 10),
			core.NewPoint3(11, 10, 10),
			core.NewPoint3(10, 12, 10),
		}},
	}
	model := NewModel(faces, m)
	assert.InDelta(t, 10.0, model.Transform.Position().X, 1e-6)
	assert.InDelta(t, 1, len(model.Triangles), 0)

	ray := core.NewRay(core.NewPoint3(10, 10.5, 0), core.NewVec3(0, 0, 1))
	_, ok := model.Intersect(ray, 0)
	assert.True(t, ok)
}

func TestWallInteriorHasNullNormal(t *testing.T) {
	w := NewWall(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, 1), 2, material.NewPhong(material.Gray))
	n := w.Normal(core.NewPoint3(0, 0, 0))
	assert.Equal(t, core.Vec3{}, n)
}

func TestTorusRayThroughTubeHits(t *testing.T) {
	tor := NewTorus(core.NewPoint3(0, 0, 0), 2, 0.5, material.NewPhong(material.Gray))
	ray := core.NewRay(core.NewPoint3(2, 0, -5), core.NewVec3(0, 0, 1))
	_, ok := tor.Intersect(ray, 0)
	assert.True(t, ok)
}
