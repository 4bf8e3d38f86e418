package geometry

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Pyramid is the 4-sided solid z = Height - |x| - |y| in object space,
// apex at (0,0,Height), base at z=0 within |x|,|y|<=Height. Each of the
// four quadrant faces needs its own linear substitution (the absolute
// values flip sign per quadrant), so CollisionsAlong solves all four and
// discards candidates whose (x,y) sign doesn't match the quadrant they
// were derived for.
type Pyramid struct {
	entity
	Height core.Precision
}

// NewPyramid returns a 4-sided pyramid of the given height, apex up.
func NewPyramid(base core.Point3, height core.Precision, m material.Material) *Pyramid {
	p := &Pyramid{entity: newEntity(m), Height: height}
	p.Transform.SetPosition(base)
	return p
}

// quadrants enumerate the four sign combinations (sx for x, sy for y)
// solving z = Height - sx*x - sy*y.
var pyramidQuadrants = [4][2]core.Precision{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func (p *Pyramid) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	o, d := objectRay.Origin, objectRay.Direction
	for _, q := range pyramidQuadrants {
		sx, sy := q[0], q[1]
		// Height - sx*(ox+t*dx) - sy*(oy+t*dy) = oz + t*dz
		denom := -sx*d.X - sy*d.Y - d.Z
		if core.NearlyZero(denom) {
			continue
		}
		t := (o.Z + sx*o.X + sy*o.Y - p.Height) / denom
		hit := objectRay.Solve(t)
		if sx*hit.X >= 0 && sy*hit.Y >= 0 && hit.Z >= 0 && hit.Z <= p.Height {
			list.Add(core.Hit{T: t, Kind: core.HitPoint})
		}
	}
	return list
}

func (p *Pyramid) faceNormal(point core.Point3) core.Vec3 {
	sx, sy := math.Copysign(1, point.X), math.Copysign(1, point.Y)
	return core.NewVec3(sx, sy, 1).Normalize()
}

func (p *Pyramid) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	objRay := p.worldToObject(worldRay)
	hits := p.CollisionsAlong(objRay)
	h, ok := hits.Nearest(0)
	if !ok {
		return core.Hit{}, false
	}
	objPoint := objRay.Solve(h.T)
	hit := p.objectToWorldHit(objPoint, p.faceNormal(objPoint), worldRay)
	if hit.T <= tMin {
		return core.Hit{}, false
	}
	return hit, true
}

func (p *Pyramid) Normal(worldPoint core.Point3) core.Vec3 {
	objPoint := p.Transform.ReversePoint(worldPoint)
	return p.Transform.ForwardNormal(p.faceNormal(objPoint))
}

func (p *Pyramid) IsSurfacePoint(worldPoint core.Point3) bool {
	objPoint := p.Transform.ReversePoint(worldPoint)
	return core.NearlyEqual(objPoint.Z, p.Height-math.Abs(objPoint.X)-math.Abs(objPoint.Y))
}

func (p *Pyramid) Map(objectPoint core.Point3) (u, v core.Precision) {
	return (objectPoint.X/p.Height + 1) / 2, (objectPoint.Y/p.Height + 1) / 2
}

// WorldBounds returns a genuine finite box. The source implementation's
// get_object_extent reports infinity for this shape despite being finite
// along +z; the octree completeness property requires accurate bounds,
// so this deliberately does not carry that bug forward.
func (p *Pyramid) WorldBounds() core.Bounds {
	var corners []core.Point3
	for _, sx := range []core.Precision{-1, 1} {
		for _, sy := range []core.Precision{-1, 1} {
			corners = append(corners, p.Transform.ForwardPoint(core.NewPoint3(sx*p.Height, sy*p.Height, 0)))
		}
	}
	corners = append(corners, p.Transform.ForwardPoint(core.NewPoint3(0, 0, p.Height)))
	return core.NewBoundsFromPoints(corners...)
}
