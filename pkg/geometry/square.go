package geometry

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Square is a Plane restricted to |x|<=halfSide, |y|<=halfSide in object
// space - a finite, bounded flat primitive.
type Square struct {
	Plane
	HalfSide core.Precision
}

// NewSquare returns a finite square patch of the given half-side length.
func NewSquare(point core.Point3, normal core.Vec3, halfSide, surfaceScale core.Precision, m material.Material) *Square {
	return &Square{Plane: *NewPlane(point, normal, surfaceScale, m), HalfSide: halfSide}
}

func (s *Square) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	base := s.Plane.CollisionsAlong(objectRay)
	for i := 0; i < base.Len(); i++ {
		h := base.At(i)
		p := objectRay.Solve(h.T)
		if math.Abs(p.X) <= s.HalfSide && math.Abs(p.Y) <= s.HalfSide {
			list.Add(h)
		}
	}
	return list
}

func (s *Square) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	objRay := s.worldToObject(worldRay)
	hits := s.CollisionsAlong(objRay)
	t, ok := hits.Nearest(0)
	if !ok {
		return core.Hit{}, false
	}
	objPoint := objRay.Solve(t.T)
	hit := s.objectToWorldHit(objPoint, core.NewVec3(0, 0, 1), worldRay)
	if hit.T <= tMin {
		return core.Hit{}, false
	}
	return hit, true
}

func (s *Square) IsSurfacePoint(worldPoint core.Point3) bool {
	p := s.Transform.ReversePoint(worldPoint)
	return core.NearlyZero(p.Z) && math.Abs(p.X) <= s.HalfSide && math.Abs(p.Y) <= s.HalfSide
}

func (s *Square) WorldBounds() core.Bounds {
	corners := make([]core.Point3, 0, 4)
	for _, sx := range []core.Precision{-1, 1} {
		for _, sy := range []core.Precision{-1, 1} {
			corners = append(corners, s.Transform.ForwardPoint(core.NewPoint3(sx*s.HalfSide, sy*s.HalfSide, 0)))
		}
	}
	return core.NewBoundsFromPoints(corners...).Expand(core.Epsilon)
}
