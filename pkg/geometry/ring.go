package geometry

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Ring is a Plane restricted to an annulus: RInner<=sqrt(x^2+y^2)<=ROuter
// in object space.
type Ring struct {
	Plane
	RInner, ROuter core.Precision
}

// NewRing returns an annular patch of the plane through point.
func NewRing(point core.Point3, normal core.Vec3, rInner, rOuter, surfaceScale core.Precision, m material.Material) *Ring {
	return &Ring{Plane: *NewPlane(point, normal, surfaceScale, m), RInner: rInner, ROuter: rOuter}
}

func (r *Ring) withinAnnulus(p core.Point3) bool {
	d := math.Sqrt(p.X*p.X + p.Y*p.Y)
	return d >= r.RInner && d <= r.ROuter
}

func (r *Ring) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	base := r.Plane.CollisionsAlong(objectRay)
	for i := 0; i < base.Len(); i++ {
		h := base.At(i)
		p := objectRay.Solve(h.T)
		if r.withinAnnulus(p) {
			list.Add(h)
		}
	}
	return list
}

func (r *Ring) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	objRay := r.worldToObject(worldRay)
	hits := r.CollisionsAlong(objRay)
	t, ok := hits.Nearest(0)
	if !ok {
		return core.Hit{}, false
	}
	objPoint := objRay.Solve(t.T)
	hit := r.objectToWorldHit(objPoint, core.NewVec3(0, 0, 1), worldRay)
	if hit.T <= tMin {
		return core.Hit{}, false
	}
	return hit, true
}

func (r *Ring) IsSurfacePoint(worldPoint core.Point3) bool {
	p := r.Transform.ReversePoint(worldPoint)
	return core.NearlyZero(p.Z) && r.withinAnnulus(p)
}

func (r *Ring) WorldBounds() core.Bounds {
	corners := make([]core.Point3, 0, 4)
	for _, sx := range []core.Precision{-1, 1} {
		for _, sy := range []core.Precision{-1, 1} {
			corners = append(corners, r.Transform.ForwardPoint(core.NewPoint3(sx*r.ROuter, sy*r.ROuter, 0)))
		}
	}
	return core.NewBoundsFromPoints(corners...).Expand(core.Epsilon)
}
