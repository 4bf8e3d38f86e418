// Package geometry implements the polymorphic primitive hierarchy: closed-
// form ray intersection, surface normals, texture-coordinate mapping and
// world bounds for every concrete shape the renderer supports.
package geometry

import (
	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Object is the shape contract every primitive and composite satisfies.
type Object interface {
	// Intersect returns the nearest valid hit of worldRay against the
	// object strictly beyond tMin, or (Hit{}, false).
	Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool)
	// CollisionsAlong returns every root of objectRay against the object
	// in object space, in parameter order, for CSG interval construction.
	CollisionsAlong(objectRay core.Ray) core.HitList
	// Normal returns the unit world-space normal at a world-space
	// surface point.
	Normal(worldPoint core.Point3) core.Vec3
	// IsSurfacePoint reports whether worldPoint lies on the surface to
	// within the geometric epsilon.
	IsSurfacePoint(worldPoint core.Point3) bool
	// Map returns the (u,v) texture coordinates for an object-space
	// point on the surface.
	Map(objectPoint core.Point3) (u, v core.Precision)
	// WorldBounds returns the object's world-space AABB, satisfying
	// core.Bounded for the octree.
	WorldBounds() core.Bounds
	// Material returns the object's medium, or nil for composites that
	// defer to their children.
	Material() material.Material
}

// Closed is implemented by primitives with a well-defined inside/outside,
// the CSG overlap operator's requirement on its children.
type Closed interface {
	Object
	// Contains reports whether worldPoint lies in the object's interior.
	Contains(worldPoint core.Point3) bool
}
