package geometry

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Torus is centered at the object-space origin in the XY plane: ring
// radius RingRadius (center of the tube to the torus axis) and tube
// radius TubeRadius. (sqrt(x^2+y^2)-R)^2+z^2=r^2 expands to a quartic
// in t, whose coefficients below follow the closed-form derivation of
// the original implementation's torus intersection.
type Torus struct {
	entity
	RingRadius, TubeRadius core.Precision
}

// NewTorus returns a torus of the given ring and tube radii; tubeRadius
// must be smaller than ringRadius to avoid self-intersection.
func NewTorus(center core.Point3, ringRadius, tubeRadius core.Precision, m material.Material) *Torus {
	t := &Torus{entity: newEntity(m), RingRadius: ringRadius, TubeRadius: tubeRadius}
	t.Transform.SetPosition(center)
	return t
}

func (t *Torus) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList

	x, y, z := objectRay.Origin.X, objectRay.Origin.Y, objectRay.Origin.Z
	i, j, k := objectRay.Direction.X, objectRay.Direction.Y, objectRay.Direction.Z
	q, r := t.RingRadius, t.TubeRadius

	ii, jj, kk := i*i, j*j, k*k
	ix, jy, kz := i*x, j*y, k*z
	qq, rr := q*q, r*r
	rrQQ := rr + qq
	xx, yy, zz := x*x, y*y, z*z
	iiJjKk := ii + jj + kk
	ixJyKz := ix + jy + kz
	xxYyZz := xx + yy + zz
	xxYyZzRrQq := xxYyZz - rrQQ

	a := iiJjKk * iiJjKk
	b := 4.0 * iiJjKk * ixJyKz
	c := 2.0*iiJjKk*xxYyZzRrQq + 4.0*ixJyKz*ixJyKz + 4.0*qq*kk
	d := 4.0*xxYyZzRrQq*ixJyKz + 8.0*qq*kz
	e := xxYyZzRrQq*xxYyZzRrQq - 4*qq*(rr-zz)

	r0, r1, r2, r3 := core.QuarticRoots(a, b, c, d, e)
	for _, root := range []core.Precision{r0, r1, r2, r3} {
		if !math.IsNaN(root) {
			list.Add(core.Hit{T: root, Kind: core.HitPoint})
		}
	}
	return list
}

func (t *Torus) objectNormal(p core.Point3) core.Vec3 {
	ringVector := core.NewVec3(p.X, p.Y, 0).Normalize().Multiply(t.RingRadius)
	ringPoint := core.NewPoint3(0, 0, 0).Add(ringVector)
	return p.Sub(ringPoint).Normalize()
}

func (t *Torus) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	objRay := t.worldToObject(worldRay)
	hits := t.CollisionsAlong(objRay)
	h, ok := hits.Nearest(0)
	if !ok {
		return core.Hit{}, false
	}
	objPoint := objRay.Solve(h.T)
	hit := t.objectToWorldHit(objPoint, t.objectNormal(objPoint), worldRay)
	if hit.T <= tMin {
		return core.Hit{}, false
	}
	return hit, true
}

func (t *Torus) Normal(worldPoint core.Point3) core.Vec3 {
	p := t.Transform.ReversePoint(worldPoint)
	return t.Transform.ForwardNormal(t.objectNormal(p))
}

func (t *Torus) IsSurfacePoint(worldPoint core.Point3) bool {
	p := t.Transform.ReversePoint(worldPoint)
	planar := math.Sqrt(p.X*p.X + p.Y*p.Y)
	lhs := (planar-t.RingRadius)*(planar-t.RingRadius) + p.Z*p.Z
	return core.NearlyEqual(lhs, t.TubeRadius*t.TubeRadius)
}

// Map defines theta around Z for u, and the in-tube-section angle for v,
// with a seam along the inner edge closest to the origin.
func (t *Torus) Map(p core.Point3) (u, v core.Precision) {
	theta := math.Atan2(p.Y, p.X) / core.Tau
	planar := math.Sqrt(p.X*p.X + p.Y*p.Y)
	phi := math.Atan2(p.Z, planar-t.RingRadius) / core.Tau
	return theta + 0.5, phi + 0.5
}

func (t *Torus) WorldBounds() core.Bounds {
	outer := t.RingRadius + t.TubeRadius
	r := core.NewVec3(outer, outer, t.TubeRadius)
	center := t.Transform.Position()
	return core.NewBounds(center.Add(r.Negate()), center.Add(r))
}
