package geometry

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Triangle is three object-space vertices, intersected via the
// Moller-Trumbore algorithm (plane intersection fused with the
// barycentric in/out test, avoiding a separate point-in-polygon pass).
type Triangle struct {
	entity
	A, B, C       core.Point3
	Na, Nb, Nc    core.Vec3 // per-vertex normals for optional smooth shading
	smoothNormals bool
}

// NewTriangle returns a flat-shaded triangle with a single face normal.
func NewTriangle(a, b, c core.Point3, m material.Material) *Triangle {
	t := &Triangle{entity: newEntity(m), A: a, B: b, C: c}
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	t.Na, t.Nb, t.Nc = n, n, n
	return t
}

// NewSmoothTriangle returns a triangle that interpolates per-vertex
// normals across its surface (Phong/Gouraud-style smooth shading), as
// produced by an OBJ mesh with vertex normals.
func NewSmoothTriangle(a, b, c core.Point3, na, nb, nc core.Vec3, m material.Material) *Triangle {
	return &Triangle{entity: newEntity(m), A: a, B: b, C: c, Na: na, Nb: nb, Nc: nc, smoothNormals: true}
}

func (t *Triangle) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	edge1 := t.B.Sub(t.A)
	edge2 := t.C.Sub(t.A)
	pvec := objectRay.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < core.RootEpsilon {
		return list
	}
	invDet := 1 / det
	tvec := objectRay.Origin.Sub(t.A)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return list
	}
	qvec := tvec.Cross(edge1)
	v := objectRay.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return list
	}
	tParam := edge2.Dot(qvec) * invDet
	list.Add(core.Hit{T: tParam, Kind: core.HitPoint})
	return list
}

func (t *Triangle) barycentric(p core.Point3) (u, v, w core.Precision) {
	v0, v1, v2 := t.B.Sub(t.A), t.C.Sub(t.A), p.Sub(t.A)
	d00, d01, d11 := v0.Dot(v0), v0.Dot(v1), v1.Dot(v1)
	d20, d21 := v2.Dot(v0), v2.Dot(v1)
	denom := d00*d11 - d01*d01
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w
}

func (t *Triangle) objectNormal(p core.Point3) core.Vec3 {
	if !t.smoothNormals {
		return t.Na
	}
	bu, bv, bw := t.barycentric(p)
	return t.Na.Multiply(bu).Add(t.Nb.Multiply(bv)).Add(t.Nc.Multiply(bw)).Normalize()
}

func (t *Triangle) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
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

func (t *Triangle) Normal(worldPoint core.Point3) core.Vec3 {
	objPoint := t.Transform.ReversePoint(worldPoint)
	return t.Transform.ForwardNormal(t.objectNormal(objPoint))
}

func (t *Triangle) IsSurfacePoint(worldPoint core.Point3) bool {
	objPoint := t.Transform.ReversePoint(worldPoint)
	u, v, w := t.barycentric(objPoint)
	return u >= -core.Epsilon && v >= -core.Epsilon && w >= -core.Epsilon
}

func (t *Triangle) Map(objectPoint core.Point3) (u, v core.Precision) {
	bu, bv, _ := t.barycentric(objectPoint)
	return bu, bv
}

func (t *Triangle) WorldBounds() core.Bounds {
	return core.NewBoundsFromPoints(
		t.Transform.ForwardPoint(t.A),
		t.Transform.ForwardPoint(t.B),
		t.Transform.ForwardPoint(t.C),
	).Expand(core.Epsilon)
}

// Polygon is a fan-triangulated coplanar N-gon (N>=3), reusing Triangle's
// intersection math per fan triangle and returning the nearest hit across
// all of them.
type Polygon struct {
	entity
	triangles []*Triangle
}

// NewPolygon returns a planar polygon from vertices in order, fan-
// triangulated from the first vertex.
func NewPolygon(vertices []core.Point3, m material.Material) *Polygon {
	p := &Polygon{entity: newEntity(m)}
	for i := 1; i+1 < len(vertices); i++ {
		p.triangles = append(p.triangles, NewTriangle(vertices[0], vertices[i], vertices[i+1], m))
	}
	return p
}

func (p *Polygon) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	for _, tri := range p.triangles {
		sub := tri.CollisionsAlong(objectRay)
		for i := 0; i < sub.Len(); i++ {
			list.Add(sub.At(i))
		}
	}
	return list
}

func (p *Polygon) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	var best core.Hit
	found := false
	for _, tri := range p.triangles {
		if h, ok := tri.Intersect(worldRay, tMin); ok {
			if !found || h.T < best.T {
				best, found = h, true
			}
		}
	}
	return best, found
}

func (p *Polygon) Normal(worldPoint core.Point3) core.Vec3 {
	if len(p.triangles) == 0 {
		return core.Vec3{}
	}
	return p.triangles[0].Normal(worldPoint)
}

func (p *Polygon) IsSurfacePoint(worldPoint core.Point3) bool {
	for _, tri := range p.triangles {
		if tri.IsSurfacePoint(worldPoint) {
			return true
		}
	}
	return false
}

func (p *Polygon) Map(objectPoint core.Point3) (u, v core.Precision) {
	if len(p.triangles) == 0 {
		return 0, 0
	}
	return p.triangles[0].Map(objectPoint)
}

func (p *Polygon) WorldBounds() core.Bounds {
	b := p.triangles[0].WorldBounds()
	for _, tri := range p.triangles[1:] {
		b = b.Union(tri.WorldBounds())
	}
	return b
}
