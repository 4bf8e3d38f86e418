package geometry

import (
	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Group is an ordered collection of objects whose intersection is simply
// the nearest child hit. Children keep their own world-space poses: each
// child is intersected with the unchanged world ray, and the group's own
// Transform is not applied to them. A Group has no
// material of its own - Material returns nil, and shading always consults
// the hit child's own material.
type Group struct {
	entity
	Children []Object
}

// NewGroup returns an empty group. Add children with Add.
func NewGroup() *Group {
	return &Group{entity: newEntity(nil)}
}

// Add appends a child to the group.
func (g *Group) Add(child Object) { g.Children = append(g.Children, child) }

func (g *Group) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	objRay := g.worldToObject(worldRay)
	// Mapping objRay back through the group's Transform reproduces
	// worldRay; each child applies its own Transform chain starting from
	// there.
	childRay := core.Ray{Origin: g.Transform.ForwardPoint(objRay.Origin), Direction: g.Transform.ForwardVector(objRay.Direction)}

	best, found := core.Hit{}, false
	for _, child := range g.Children {
		if h, ok := child.Intersect(childRay, tMin); ok {
			if !found || h.T < best.T {
				best, found = h, true
			}
		}
	}
	if !found {
		return core.Hit{}, false
	}
	return best, true
}

// CollisionsAlong merges every child's object-space roots, reprojected
// through the group's own transform so the returned t values are measured
// along objectRay.
func (g *Group) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	worldRay := core.Ray{Origin: g.Transform.ForwardPoint(objectRay.Origin), Direction: g.Transform.ForwardVector(objectRay.Direction)}
	for _, child := range g.Children {
		if h, ok := child.Intersect(worldRay, -core.Epsilon); ok {
			list.Add(h)
		}
	}
	return list
}

func (g *Group) Normal(worldPoint core.Point3) core.Vec3 {
	for _, child := range g.Children {
		if child.IsSurfacePoint(worldPoint) {
			return child.Normal(worldPoint)
		}
	}
	return core.Vec3{}
}

func (g *Group) IsSurfacePoint(worldPoint core.Point3) bool {
	for _, child := range g.Children {
		if child.IsSurfacePoint(worldPoint) {
			return true
		}
	}
	return false
}

func (g *Group) Map(objectPoint core.Point3) (u, v core.Precision) {
	worldPoint := g.Transform.ForwardPoint(objectPoint)
	for _, child := range g.Children {
		if child.IsSurfacePoint(worldPoint) {
			return child.Map(objectPoint)
		}
	}
	return 0, 0
}

func (g *Group) WorldBounds() core.Bounds {
	var box core.Bounds
	first := true
	for _, child := range g.Children {
		if first {
			box, first = child.WorldBounds(), false
			continue
		}
		box = box.Union(child.WorldBounds())
	}
	if first {
		return core.Bounds{}
	}
	return box
}

func (g *Group) Material() material.Material { return nil }
