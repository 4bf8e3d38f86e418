package geometry

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Plane is the object-space XY plane (z=0, normal +Z), posed by its
// Transform. It is infinite, so it publishes core.InfiniteBounds and the
// octree keeps it at the root rather than subdividing around it.
type Plane struct {
	entity
	SurfaceScale core.Precision
}

// NewPlane returns a plane through point with the given world-space
// normal.
func NewPlane(point core.Point3, normal core.Vec3, surfaceScale core.Precision, m material.Material) *Plane {
	p := &Plane{entity: newEntity(m), SurfaceScale: surfaceScale}
	p.Transform.SetPosition(point)
	p.orientTo(normal)
	return p
}

func (p *Plane) orientTo(worldNormal core.Vec3) {
	n := worldNormal.Normalize()
	if n.Equals(core.NewVec3(0, 0, 1)) {
		return
	}
	axis := core.NewVec3(0, 0, 1).Cross(n)
	if axis.IsZero() {
		p.Transform.SetRotationAxisAngle(core.NewVec3(1, 0, 0), core.FromDegrees(180))
		return
	}
	cosAngle := core.NewVec3(0, 0, 1).Dot(n)
	theta := core.FromRadians(math.Acos(core.Clamp(cosAngle, -1, 1)))
	p.Transform.SetRotationAxisAngle(axis, theta)
}

func (p *Plane) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	objRay := p.worldToObject(worldRay)
	hits := p.CollisionsAlong(objRay)
	t, ok := hits.Nearest(0)
	if !ok {
		return core.Hit{}, false
	}
	objPoint := objRay.Solve(t.T)
	hit := p.objectToWorldHit(objPoint, core.NewVec3(0, 0, 1), worldRay)
	if hit.T <= tMin {
		return core.Hit{}, false
	}
	return hit, true
}

func (p *Plane) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	denom := objectRay.Direction.Z
	if core.NearlyZero(denom) {
		return list
	}
	t := -objectRay.Origin.Z / denom
	list.Add(core.Hit{T: t, Kind: core.HitPoint})
	return list
}

func (p *Plane) Normal(core.Point3) core.Vec3 {
	return p.Transform.ForwardNormal(core.NewVec3(0, 0, 1))
}

func (p *Plane) IsSurfacePoint(worldPoint core.Point3) bool {
	return core.NearlyZero(p.Transform.ReversePoint(worldPoint).Z)
}

func (p *Plane) Map(objectPoint core.Point3) (u, v core.Precision) {
	u = math.Mod(objectPoint.X/p.SurfaceScale, 1)
	v = math.Mod(objectPoint.Y/p.SurfaceScale, 1)
	if u < 0 {
		u += 1
	}
	if v < 0 {
		v += 1
	}
	return u, v
}

func (p *Plane) WorldBounds() core.Bounds { return core.InfiniteBounds() }
