package geometry

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Cuboid is an axis-aligned box of half-extents (A,B,C) around the origin
// in object space, posed by its Transform.
type Cuboid struct {
	entity
	Half core.Vec3
}

// NewCuboid returns a box of the given half-extents centered at center.
func NewCuboid(center core.Point3, half core.Vec3, m material.Material) *Cuboid {
	c := &Cuboid{entity: newEntity(m), Half: half}
	c.Transform.SetPosition(center)
	return c
}

func (c *Cuboid) slabs(objectRay core.Ray) (tMinAxis, tMaxAxis core.Precision, ok bool) {
	tNear, tFar := math.Inf(-1), math.Inf(1)
	axis := func(o, d, half core.Precision) bool {
		if math.Abs(d) < core.RootEpsilon {
			return o >= -half && o <= half
		}
		inv := 1 / d
		t1, t2 := (-half-o)*inv, (half-o)*inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = math.Max(tNear, t1)
		tFar = math.Min(tFar, t2)
		return tNear <= tFar
	}
	if !axis(objectRay.Origin.X, objectRay.Direction.X, c.Half.X) {
		return 0, 0, false
	}
	if !axis(objectRay.Origin.Y, objectRay.Direction.Y, c.Half.Y) {
		return 0, 0, false
	}
	if !axis(objectRay.Origin.Z, objectRay.Direction.Z, c.Half.Z) {
		return 0, 0, false
	}
	return tNear, tFar, true
}

func (c *Cuboid) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	tNear, tFar, ok := c.slabs(objectRay)
	if !ok {
		return list
	}
	list.Add(core.Hit{T: tNear, Kind: core.HitPoint})
	list.Add(core.Hit{T: tFar, Kind: core.HitPoint})
	return list
}

func (c *Cuboid) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	objRay := c.worldToObject(worldRay)
	hits := c.CollisionsAlong(objRay)
	h, ok := hits.Nearest(0)
	if !ok {
		return core.Hit{}, false
	}
	objPoint := objRay.Solve(h.T)
	hit := c.objectToWorldHit(objPoint, c.faceNormal(objPoint), worldRay)
	if hit.T <= tMin {
		return core.Hit{}, false
	}
	return hit, true
}

// faceNormal returns the axis-aligned normal for a surface point: the
// axis whose absolute coordinate matches its half-extent within epsilon.
func (c *Cuboid) faceNormal(p core.Point3) core.Vec3 {
	if math.Abs(math.Abs(p.X)-c.Half.X) < core.Epsilon {
		return core.NewVec3(math.Copysign(1, p.X), 0, 0)
	}
	if math.Abs(math.Abs(p.Y)-c.Half.Y) < core.Epsilon {
		return core.NewVec3(0, math.Copysign(1, p.Y), 0)
	}
	return core.NewVec3(0, 0, math.Copysign(1, p.Z))
}

func (c *Cuboid) Normal(worldPoint core.Point3) core.Vec3 {
	p := c.Transform.ReversePoint(worldPoint)
	return c.Transform.ForwardNormal(c.faceNormal(p))
}

func (c *Cuboid) IsSurfacePoint(worldPoint core.Point3) bool {
	p := c.Transform.ReversePoint(worldPoint)
	onX := math.Abs(math.Abs(p.X)-c.Half.X) < core.Epsilon && math.Abs(p.Y) <= c.Half.Y && math.Abs(p.Z) <= c.Half.Z
	onY := math.Abs(math.Abs(p.Y)-c.Half.Y) < core.Epsilon && math.Abs(p.X) <= c.Half.X && math.Abs(p.Z) <= c.Half.Z
	onZ := math.Abs(math.Abs(p.Z)-c.Half.Z) < core.Epsilon && math.Abs(p.X) <= c.Half.X && math.Abs(p.Y) <= c.Half.Y
	return onX || onY || onZ
}

// Map flattens the 6 faces into a 3x2 grid, the common UV-unwrap layout.
func (c *Cuboid) Map(p core.Point3) (u, v core.Precision) {
	var faceU, faceV core.Precision
	var col, row int
	switch {
	case math.Abs(math.Abs(p.X)-c.Half.X) < core.Epsilon:
		faceU, faceV = (p.Y/c.Half.Y+1)/2, (p.Z/c.Half.Z+1)/2
		col = 0
		if p.X < 0 {
			row = 1
		}
	case math.Abs(math.Abs(p.Y)-c.Half.Y) < core.Epsilon:
		faceU, faceV = (p.X/c.Half.X+1)/2, (p.Z/c.Half.Z+1)/2
		col = 1
		if p.Y < 0 {
			row = 1
		}
	default:
		faceU, faceV = (p.X/c.Half.X+1)/2, (p.Y/c.Half.Y+1)/2
		col = 2
		if p.Z < 0 {
			row = 1
		}
	}
	return (core.Precision(col) + faceU) / 3, (core.Precision(row) + faceV) / 2
}

func (c *Cuboid) WorldBounds() core.Bounds {
	var corners []core.Point3
	for _, sx := range []core.Precision{-1, 1} {
		for _, sy := range []core.Precision{-1, 1} {
			for _, sz := range []core.Precision{-1, 1} {
				corners = append(corners, c.Transform.ForwardPoint(core.NewPoint3(sx*c.Half.X, sy*c.Half.Y, sz*c.Half.Z)))
			}
		}
	}
	return core.NewBoundsFromPoints(corners...)
}

func (c *Cuboid) Contains(worldPoint core.Point3) bool {
	p := c.Transform.ReversePoint(worldPoint)
	return math.Abs(p.X) <= c.Half.X && math.Abs(p.Y) <= c.Half.Y && math.Abs(p.Z) <= c.Half.Z
}
