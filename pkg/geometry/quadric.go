package geometry

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Quadric is a general second-degree surface p^T Q p = 0 defined by a 4x4
// symmetric coefficient matrix over the homogenized point, generalizing
// sphere/cylinder/cone/hyperboloid/paraboloid into one primitive.
type Quadric struct {
	entity
	Q core.Matrix
}

// NewQuadric returns a quadric surface from its 4x4 symmetric coefficient
// matrix, whose rows/cols are x, y, z and the homogeneous coordinate
// (Matrix.Get1/Set1 address them as 1..4, as the standard derivations do).
func NewQuadric(center core.Point3, q core.Matrix, m material.Material) *Quadric {
	quad := &Quadric{entity: newEntity(m), Q: q}
	quad.Transform.SetPosition(center)
	return quad
}

// coefficients substitutes the ray P+tD into p^T Q p = 0 and returns the
// resulting quadratic's (a,b,c).
func (q *Quadric) coefficients(objectRay core.Ray) (a, b, c core.Precision) {
	d := core.NewVec4(objectRay.Direction.X, objectRay.Direction.Y, objectRay.Direction.Z, 0)
	p := core.Homogenize(objectRay.Origin)

	qd := q.Q.MulVec4(d)
	qp := q.Q.MulVec4(p)

	a = d.Dot(qd)
	b = d.Dot(qp) + p.Dot(qd)
	c = p.Dot(qp)
	return a, b, c
}

func (q *Quadric) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	a, b, c := q.coefficients(objectRay)
	t0, t1 := core.QuadraticRoots(a, b, c)
	if !math.IsNaN(t0) {
		list.Add(core.Hit{T: t0, Kind: core.HitPoint})
	}
	if !math.IsNaN(t1) {
		list.Add(core.Hit{T: t1, Kind: core.HitPoint})
	}
	return list
}

func (q *Quadric) objectNormal(p core.Point3) core.Vec3 {
	h := core.Homogenize(p)
	grad := q.Q.MulVec4(h)
	return core.NewVec3(grad.X, grad.Y, grad.Z).Normalize()
}

func (q *Quadric) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	objRay := q.worldToObject(worldRay)
	hits := q.CollisionsAlong(objRay)
	h, ok := hits.Nearest(0)
	if !ok {
		return core.Hit{}, false
	}
	objPoint := objRay.Solve(h.T)
	hit := q.objectToWorldHit(objPoint, q.objectNormal(objPoint), worldRay)
	if hit.T <= tMin {
		return core.Hit{}, false
	}
	return hit, true
}

func (q *Quadric) Normal(worldPoint core.Point3) core.Vec3 {
	objPoint := q.Transform.ReversePoint(worldPoint)
	return q.Transform.ForwardNormal(q.objectNormal(objPoint))
}

func (q *Quadric) IsSurfacePoint(worldPoint core.Point3) bool {
	objPoint := q.Transform.ReversePoint(worldPoint)
	h := core.Homogenize(objPoint)
	return core.NearlyZero(h.Dot(q.Q.MulVec4(h)))
}

func (q *Quadric) Map(objectPoint core.Point3) (u, v core.Precision) {
	return 0.5 + objectPoint.X, 0.5 + objectPoint.Y
}

// WorldBounds is conservatively infinite: an unbounded quadric class
// (hyperboloid, paraboloid) cannot publish a finite box in general, and
// distinguishing the bounded cases (ellipsoid) would require decomposing
// Q - left to scene authors to wrap in an explicit clipping volume instead.
func (q *Quadric) WorldBounds() core.Bounds { return core.InfiniteBounds() }
