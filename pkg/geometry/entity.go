package geometry

import (
	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// entity is the embeddable pose+material every concrete primitive shares:
// a Transform taking object space to world space, and the medium used to
// shade it. Every primitive's public Intersect performs exactly one
// ReverseRay into object space before calling its own root-finder, and one
// ForwardPoint/ForwardNormal on the result - the single discipline spec
// mandates against mixing spaces mid-routine.
type entity struct {
	Transform *core.Transform
	Medium    material.Material
}

func newEntity(m material.Material) entity {
	return entity{Transform: core.NewTransform(), Medium: m}
}

func (e entity) Material() material.Material { return e.Medium }

// worldToObject reverses a world ray into object space for root finding.
func (e entity) worldToObject(r core.Ray) core.Ray { return e.Transform.ReverseRay(r) }

// objectToWorldHit forward-transforms an object-space hit point and
// normal back into world space, flipping the normal to face the given
// world-space incoming ray direction. The returned T is reprojected onto
// worldRay's own (possibly non-unit, possibly rescaled by the entity's
// transform) parameterization rather than reusing the object-space t,
// since a non-uniform scale changes the ray's effective speed between
// the two spaces.
func (e entity) objectToWorldHit(objectPoint core.Point3, objectNormal core.Vec3, worldRay core.Ray) core.Hit {
	worldPoint := e.Transform.ForwardPoint(objectPoint)
	worldNormal := e.Transform.ForwardNormal(objectNormal)
	worldNormal, _ = core.FaceForward(worldNormal, worldRay.Direction.Normalize())
	t := worldPoint.Sub(worldRay.Origin).Dot(worldRay.Direction) / worldRay.Direction.Quadrance()
	return core.Hit{T: t, Kind: core.HitPoint, Point: worldPoint, Normal: worldNormal}
}
