package geometry

import (
	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// Model is a triangle soup loaded from an external mesh file. On
// completion the loader computes the mesh centroid, rebases every vertex
// relative to it, and stores the centroid as the model's position -
// placing a Model in a scene means positioning that centroid, not the
// mesh's own raw origin.
type Model struct {
	entity
	Triangles []*Triangle
}

// ModelFace is one polygon of a parsed mesh: vertex positions, and vertex
// normals when the source file supplied them (smooth shading) or nil
// (flat shading, one normal per face).
type ModelFace struct {
	Vertices [3]core.Point3
	Normals  [3]core.Vec3
	Smooth   bool
}

// NewModel builds a Model from parsed faces, rebasing every vertex around
// the mesh's centroid and recording that centroid as the model's world
// position.
func NewModel(faces []ModelFace, m material.Material) *Model {
	centroid := meshCentroid(faces)

	model := &Model{entity: newEntity(m)}
	model.Transform.SetPosition(centroid)

	for _, f := range faces {
		a := rebase(f.Vertices[0], centroid)
		b := rebase(f.Vertices[1], centroid)
		c := rebase(f.Vertices[2], centroid)
		var tri *Triangle
		if f.Smooth {
			tri = NewSmoothTriangle(a, b, c, f.Normals[0], f.Normals[1], f.Normals[2], m)
		} else {
			tri = NewTriangle(a, b, c, m)
		}
		model.Triangles = append(model.Triangles, tri)
	}
	return model
}

func rebase(v, centroid core.Point3) core.Point3 {
	d := v.Sub(centroid)
	return core.NewPoint3(d.X, d.Y, d.Z)
}

func meshCentroid(faces []ModelFace) core.Point3 {
	if len(faces) == 0 {
		return core.Point3{}
	}
	sum := core.Vec3{}
	n := 0
	for _, f := range faces {
		for _, v := range f.Vertices {
			sum = sum.Add(v.Vec())
			n++
		}
	}
	avg := sum.Multiply(1.0 / core.Precision(n))
	return core.NewPoint3(avg.X, avg.Y, avg.Z)
}

func (model *Model) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	for _, tri := range model.Triangles {
		sub := tri.CollisionsAlong(objectRay)
		for i := 0; i < sub.Len(); i++ {
			list.Add(sub.At(i))
		}
	}
	return list
}

func (model *Model) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	// The triangles' vertices are centroid-relative, so they are
	// intersected in the model's object space and the nearest hit is
	// mapped back to world space.
	objRay := model.worldToObject(worldRay)
	var best core.Hit
	found := false
	for _, tri := range model.Triangles {
		if h, ok := tri.Intersect(objRay, 0); ok {
			if !found || h.T < best.T {
				best, found = h, true
			}
		}
	}
	if !found {
		return core.Hit{}, false
	}
	hit := model.objectToWorldHit(best.Point, best.Normal, worldRay)
	if hit.T <= tMin {
		return core.Hit{}, false
	}
	return hit, true
}

func (model *Model) Normal(worldPoint core.Point3) core.Vec3 {
	p := model.Transform.ReversePoint(worldPoint)
	for _, tri := range model.Triangles {
		if tri.IsSurfacePoint(p) {
			return model.Transform.ForwardNormal(tri.Normal(p))
		}
	}
	return core.Vec3{}
}

func (model *Model) IsSurfacePoint(worldPoint core.Point3) bool {
	p := model.Transform.ReversePoint(worldPoint)
	for _, tri := range model.Triangles {
		if tri.IsSurfacePoint(p) {
			return true
		}
	}
	return false
}

func (model *Model) Map(objectPoint core.Point3) (u, v core.Precision) {
	for _, tri := range model.Triangles {
		if tri.IsSurfacePoint(objectPoint) {
			return tri.Map(objectPoint)
		}
	}
	return 0, 0
}

func (model *Model) WorldBounds() core.Bounds {
	if len(model.Triangles) == 0 {
		return core.Bounds{}
	}
	points := make([]core.Point3, 0, 3*len(model.Triangles))
	for _, tri := range model.Triangles {
		points = append(points, model.Transform.ForwardPoint(tri.A), model.Transform.ForwardPoint(tri.B), model.Transform.ForwardPoint(tri.C))
	}
	return core.NewBoundsFromPoints(points...).Expand(core.Epsilon)
}
