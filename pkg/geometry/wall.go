package geometry

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Wall is a pair of parallel planes at z=+-halfThickness in object space.
// Interior points have no meaningful normal and return the null vector,
// an invariant the shading path must respect rather than treat as an
// error.
type Wall struct {
	entity
	HalfThickness core.Precision
}

// NewWall returns a slab of the given total thickness centered on point,
// facing normal.
func NewWall(point core.Point3, normal core.Vec3, thickness core.Precision, m material.Material) *Wall {
	w := &Wall{entity: newEntity(m), HalfThickness: thickness / 2}
	w.Transform.SetPosition(point)
	plane := NewPlane(point, normal, 1, m)
	w.Transform = plane.Transform
	return w
}

func (w *Wall) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	d := objectRay.Direction.Z
	if core.NearlyZero(d) {
		return list
	}
	for _, face := range []core.Precision{w.HalfThickness, -w.HalfThickness} {
		t := (face - objectRay.Origin.Z) / d
		list.Add(core.Hit{T: t, Kind: core.HitPoint})
	}
	return list
}

func (w *Wall) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	objRay := w.worldToObject(worldRay)
	hits := w.CollisionsAlong(objRay)
	h, ok := hits.Nearest(0)
	if !ok {
		return core.Hit{}, false
	}
	objPoint := objRay.Solve(h.T)
	n := core.NewVec3(0, 0, math.Copysign(1, objPoint.Z))
	hit := w.objectToWorldHit(objPoint, n, worldRay)
	if hit.T <= tMin {
		return core.Hit{}, false
	}
	return hit, true
}

// Normal returns the null vector for interior points, since a wall's
// interior has no meaningful surface orientation.
func (w *Wall) Normal(worldPoint core.Point3) core.Vec3 {
	p := w.Transform.ReversePoint(worldPoint)
	if math.Abs(p.Z) < w.HalfThickness-core.Epsilon {
		return core.Vec3{}
	}
	return w.Transform.ForwardNormal(core.NewVec3(0, 0, math.Copysign(1, p.Z)))
}

func (w *Wall) IsSurfacePoint(worldPoint core.Point3) bool {
	p := w.Transform.ReversePoint(worldPoint)
	return core.NearlyEqual(math.Abs(p.Z), w.HalfThickness)
}

func (w *Wall) Map(p core.Point3) (u, v core.Precision) {
	return math.Mod(p.X, 1), math.Mod(p.Y, 1)
}

func (w *Wall) WorldBounds() core.Bounds { return core.InfiniteBounds() }

func (w *Wall) Contains(worldPoint core.Point3) bool {
	p := w.Transform.ReversePoint(worldPoint)
	return math.Abs(p.Z) <= w.HalfThickness
}
