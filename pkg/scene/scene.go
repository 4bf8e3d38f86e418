// Package scene assembles objects, lights and shading constants into the
// data structure the renderer traverses. Scene borrows its objects and
// lights; it owns neither.
package scene

import (
	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/geometry"
	"github.com/gorender/raytrace/pkg/lights"
	"github.com/gorender/raytrace/pkg/material"
)

// Scene is a light list, a root octree node over object bounds, a
// background color, and the shading constants that bound recursion.
type Scene struct {
	Lights     []lights.Light
	Root       *core.OctreeNode[geometry.Object]
	Background material.Color

	// MaxDepth caps reflection/refraction recursion; reflection and
	// refraction share this single budget.
	MaxDepth int
}

// New builds a scene from a flat object list, indexing every object's
// world bounds into a fresh octree root.
func New(objects []geometry.Object, lightList []lights.Light, background material.Color, maxDepth int) *Scene {
	s := &Scene{Lights: lightList, Background: background, MaxDepth: maxDepth}
	s.Root = core.NewOctree[geometry.Object](sceneBounds(objects))
	for _, obj := range objects {
		s.Root.Insert(obj)
	}
	return s
}

func sceneBounds(objects []geometry.Object) core.Bounds {
	var box core.Bounds
	first := true
	for _, obj := range objects {
		b := obj.WorldBounds()
		if b.Infinite {
			continue
		}
		if first {
			box, first = b, false
			continue
		}
		box = box.Union(b)
	}
	if first {
		return core.NewBounds(core.NewPoint3(-1, -1, -1), core.NewPoint3(1, 1, 1))
	}
	return box.Expand(core.Epsilon)
}

// Intersect finds the nearest object hit strictly beyond tMin, querying the
// octree for candidates and then intersecting each directly (the octree is
// a candidate culler; it does not itself compute the intersection point).
func (s *Scene) Intersect(ray core.Ray, tMin core.Precision) (core.Hit, geometry.Object, bool) {
	var best core.Hit
	var bestObj geometry.Object
	found := false

	for _, candidate := range s.Root.Query(ray, nil) {
		hit, ok := candidate.Intersect(ray, tMin)
		if !ok {
			continue
		}
		if !found || hit.T < best.T {
			best, bestObj, found = hit, candidate, true
		}
	}
	return best, bestObj, found
}
