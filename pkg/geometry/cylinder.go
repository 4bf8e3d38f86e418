package geometry

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Cylinder is a lateral surface x^2+y^2=r^2 about the object-space Z axis,
// clipped to |z|<=halfHeight unless Infinite is set, in which case the
// caps are absent and it reports infinite bounds.
type Cylinder struct {
	entity
	Radius, HalfHeight core.Precision
	Infinite           bool
}

// NewCylinder returns a finite cylinder of the given radius and height.
func NewCylinder(center core.Point3, radius, height core.Precision, m material.Material) *Cylinder {
	c := &Cylinder{entity: newEntity(m), Radius: radius, HalfHeight: height / 2}
	c.Transform.SetPosition(center)
	return c
}

// NewInfiniteCylinder returns an infinite cylinder (no end caps).
func NewInfiniteCylinder(center core.Point3, radius core.Precision, m material.Material) *Cylinder {
	c := &Cylinder{entity: newEntity(m), Radius: radius, Infinite: true}
	c.Transform.SetPosition(center)
	return c
}

func (c *Cylinder) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	d := objectRay.Direction
	o := objectRay.Origin
	a := d.X*d.X + d.Y*d.Y
	b := 2 * (o.X*d.X + o.Y*d.Y)
	cc := o.X*o.X + o.Y*o.Y - c.Radius*c.Radius
	t0, t1 := core.QuadraticRoots(a, b, cc)
	for _, t := range []core.Precision{t0, t1} {
		if math.IsNaN(t) {
			continue
		}
		z := o.Z + t*d.Z
		if c.Infinite || math.Abs(z) <= c.HalfHeight {
			list.Add(core.Hit{T: t, Kind: core.HitPoint})
		}
	}
	if !c.Infinite && !core.NearlyZero(d.Z) {
		for _, cap := range []core.Precision{c.HalfHeight, -c.HalfHeight} {
			t := (cap - o.Z) / d.Z
			p := objectRay.Solve(t)
			if p.X*p.X+p.Y*p.Y <= c.Radius*c.Radius {
				list.Add(core.Hit{T: t, Kind: core.HitPoint})
			}
		}
	}
	return list
}

func (c *Cylinder) objectNormal(p core.Point3) core.Vec3 {
	if !c.Infinite && math.Abs(math.Abs(p.Z)-c.HalfHeight) < core.Epsilon {
		return core.NewVec3(0, 0, math.Copysign(1, p.Z))
	}
	return core.NewVec3(p.X, p.Y, 0).Normalize()
}

func (c *Cylinder) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	objRay := c.worldToObject(worldRay)
	hits := c.CollisionsAlong(objRay)
	h, ok := hits.Nearest(0)
	if !ok {
		return core.Hit{}, false
	}
	objPoint := objRay.Solve(h.T)
	hit := c.objectToWorldHit(objPoint, c.objectNormal(objPoint), worldRay)
	if hit.T <= tMin {
		return core.Hit{}, false
	}
	return hit, true
}

func (c *Cylinder) Normal(worldPoint core.Point3) core.Vec3 {
	p := c.Transform.ReversePoint(worldPoint)
	return c.Transform.ForwardNormal(c.objectNormal(p))
}

func (c *Cylinder) IsSurfacePoint(worldPoint core.Point3) bool {
	p := c.Transform.ReversePoint(worldPoint)
	lateral := core.NearlyEqual(math.Sqrt(p.X*p.X+p.Y*p.Y), c.Radius)
	if c.Infinite {
		return lateral
	}
	return (lateral && math.Abs(p.Z) <= c.HalfHeight) || math.Abs(math.Abs(p.Z)-c.HalfHeight) < core.Epsilon
}

func (c *Cylinder) Map(p core.Point3) (u, v core.Precision) {
	theta := math.Atan2(p.Y, p.X) / core.Tau
	height := core.Precision(1)
	if !c.Infinite {
		height = 2 * c.HalfHeight
	}
	return theta + 0.5, (p.Z + c.HalfHeight) / height
}

func (c *Cylinder) WorldBounds() core.Bounds {
	if c.Infinite {
		return core.InfiniteBounds()
	}
	var corners []core.Point3
	for _, sx := range []core.Precision{-1, 1} {
		for _, sy := range []core.Precision{-1, 1} {
			for _, sz := range []core.Precision{-1, 1} {
				corners = append(corners, c.Transform.ForwardPoint(core.NewPoint3(sx*c.Radius, sy*c.Radius, sz*c.HalfHeight)))
			}
		}
	}
	return core.NewBoundsFromPoints(corners...)
}
