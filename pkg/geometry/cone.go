package geometry

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Cone has its apex at (0,0,h) in object space and opens downward to a
// base of BaseRadius at z=0: z^2 = (h^2/r^2)(x^2+y^2), shifted so the
// apex sits at height h above the base plane. Infinite selects the
// unclipped double-napped form with no base cap.
type Cone struct {
	entity
	BaseRadius, Height core.Precision
	Infinite           bool
}

// NewCone returns a finite cone with the given base radius and height.
func NewCone(apex core.Point3, baseRadius, height core.Precision, m material.Material) *Cone {
	c := &Cone{entity: newEntity(m), BaseRadius: baseRadius, Height: height}
	c.Transform.SetPosition(apex)
	return c
}

// NewInfiniteCone returns an infinite cone of the given half-angle
// (expressed via baseRadius/height ratio) with no base cap.
func NewInfiniteCone(apex core.Point3, baseRadius, height core.Precision, m material.Material) *Cone {
	c := &Cone{entity: newEntity(m), BaseRadius: baseRadius, Height: height, Infinite: true}
	c.Transform.SetPosition(apex)
	return c
}

// k is the slope^2 = (h/r)^2 relating radius to height along the cone.
func (c *Cone) k() core.Precision { return (c.Height * c.Height) / (c.BaseRadius * c.BaseRadius) }

func (c *Cone) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	d := objectRay.Direction
	o := objectRay.Origin
	k := c.k()
	// apex at z=h, opening downward: k*(x^2+y^2) = (z-h)^2
	a := k*(d.X*d.X+d.Y*d.Y) - d.Z*d.Z
	b := 2 * (k*(o.X*d.X+o.Y*d.Y) - (o.Z-c.Height)*d.Z)
	cc := k*(o.X*o.X+o.Y*o.Y) - (o.Z-c.Height)*(o.Z-c.Height)
	t0, t1 := core.QuadraticRoots(a, b, cc)
	for _, t := range []core.Precision{t0, t1} {
		if math.IsNaN(t) {
			continue
		}
		z := o.Z + t*d.Z
		if c.Infinite || (z >= 0 && z <= c.Height) {
			list.Add(core.Hit{T: t, Kind: core.HitPoint})
		}
	}
	if !c.Infinite && !core.NearlyZero(d.Z) {
		t := (0 - o.Z) / d.Z
		p := objectRay.Solve(t)
		if p.X*p.X+p.Y*p.Y <= c.BaseRadius*c.BaseRadius {
			list.Add(core.Hit{T: t, Kind: core.HitPoint})
		}
	}
	return list
}

func (c *Cone) objectNormal(p core.Point3) core.Vec3 {
	if !c.Infinite && core.NearlyZero(p.Z) {
		return core.NewVec3(0, 0, -1)
	}
	k := c.k()
	lateral := core.NewVec3(p.X, p.Y, -math.Sqrt(k)*math.Sqrt(p.X*p.X+p.Y*p.Y)*math.Copysign(1, c.Height-p.Z))
	return lateral.Normalize()
}

func (c *Cone) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
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

func (c *Cone) Normal(worldPoint core.Point3) core.Vec3 {
	p := c.Transform.ReversePoint(worldPoint)
	return c.Transform.ForwardNormal(c.objectNormal(p))
}

func (c *Cone) IsSurfacePoint(worldPoint core.Point3) bool {
	p := c.Transform.ReversePoint(worldPoint)
	k := c.k()
	return core.NearlyEqual(k*(p.X*p.X+p.Y*p.Y), (p.Z-c.Height)*(p.Z-c.Height))
}

func (c *Cone) Map(p core.Point3) (u, v core.Precision) {
	theta := math.Atan2(p.Y, p.X) / core.Tau
	return theta + 0.5, p.Z / c.Height
}

func (c *Cone) WorldBounds() core.Bounds {
	if c.Infinite {
		return core.InfiniteBounds()
	}
	var corners []core.Point3
	for _, sx := range []core.Precision{-1, 1} {
		for _, sy := range []core.Precision{-1, 1} {
			corners = append(corners, c.Transform.ForwardPoint(core.NewPoint3(sx*c.BaseRadius, sy*c.BaseRadius, 0)))
		}
	}
	corners = append(corners, c.Transform.ForwardPoint(core.NewPoint3(0, 0, c.Height)))
	return core.NewBoundsFromPoints(corners...)
}
