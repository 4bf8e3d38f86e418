package geometry

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Sphere is a sphere of the given Radius centered on the object-space
// origin and placed by its Transform; Radius is used directly in the
// intersection math, and the transform's scale is left at 1.
type Sphere struct {
	entity
	Radius core.Precision
}

// NewSphere returns a sphere of the given radius centered at center.
func NewSphere(center core.Point3, radius core.Precision, m material.Material) *Sphere {
	s := &Sphere{entity: newEntity(m), Radius: radius}
	s.Transform.SetPosition(center)
	return s
}

func (s *Sphere) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	hits := s.CollisionsAlong(s.worldToObject(worldRay))
	t, ok := hits.Nearest(0)
	if !ok {
		return core.Hit{}, false
	}
	objRay := s.worldToObject(worldRay)
	objPoint := objRay.Solve(t.T)
	hit := s.objectToWorldHit(objPoint, objPoint.Vec(), worldRay)
	if hit.T <= tMin {
		return core.Hit{}, false
	}
	return hit, true
}

func (s *Sphere) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	oc := objectRay.Origin.Vec()
	a := objectRay.Direction.Quadrance()
	b := 2 * oc.Dot(objectRay.Direction)
	c := oc.Quadrance() - s.Radius*s.Radius
	t0, t1 := core.QuadraticRoots(a, b, c)
	if !math.IsNaN(t0) {
		list.Add(core.Hit{T: t0, Kind: core.HitPoint})
	}
	if !math.IsNaN(t1) {
		list.Add(core.Hit{T: t1, Kind: core.HitPoint})
	}
	return list
}

func (s *Sphere) Normal(worldPoint core.Point3) core.Vec3 {
	objPoint := s.Transform.ReversePoint(worldPoint)
	return s.Transform.ForwardNormal(objPoint.Vec().Normalize())
}

func (s *Sphere) IsSurfacePoint(worldPoint core.Point3) bool {
	objPoint := s.Transform.ReversePoint(worldPoint)
	return core.NearlyEqual(objPoint.Vec().Length(), s.Radius)
}

// Map returns spherical coordinates: theta=atan2(y,x)/tau, phi=acos(z/r)/pi.
func (s *Sphere) Map(objectPoint core.Point3) (u, v core.Precision) {
	theta := math.Atan2(objectPoint.Y, objectPoint.X) / core.Tau
	phi := math.Acos(core.Clamp(objectPoint.Z/s.Radius, -1, 1)) / math.Pi
	return theta + 0.5, phi
}

func (s *Sphere) WorldBounds() core.Bounds {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	center := s.Transform.Position()
	return core.NewBounds(center.Add(r.Negate()), center.Add(r))
}

func (s *Sphere) Contains(worldPoint core.Point3) bool {
	objPoint := s.Transform.ReversePoint(worldPoint)
	return objPoint.Vec().Length() <= s.Radius
}
