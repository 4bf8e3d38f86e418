package geometry

import (
	"sort"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/material"
)

// OverlapMode selects the CSG boolean operator Overlap applies to its two
// children.
type OverlapMode int

const (
	// OverlapInclusive is intersection: A AND B.
	OverlapInclusive OverlapMode = iota
	// OverlapSubtractive is set difference: A AND NOT B.
	OverlapSubtractive
	// OverlapAdditive is union: A OR B.
	OverlapAdditive
)

// Overlap is a constructive-solid-geometry combination of two closed
// children. It collects every root on each child in object space, pairs
// them into in/out intervals, and applies the chosen interval boolean to
// produce the combined interval set; the minimum positive in-transition
// is the hit.
type Overlap struct {
	entity
	A, B Closed
	Mode OverlapMode
}

// NewOverlap returns a CSG combination of a and b under mode.
func NewOverlap(a, b Closed, mode OverlapMode, m material.Material) *Overlap {
	o := &Overlap{entity: newEntity(m), A: a, B: b, Mode: mode}
	return o
}

type interval struct{ lo, hi core.Precision }

func rootsToIntervals(list core.HitList) []interval {
	ts := make([]core.Precision, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		ts = append(ts, list.At(i).T)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })
	var out []interval
	for i := 0; i+1 < len(ts); i += 2 {
		out = append(out, interval{ts[i], ts[i+1]})
	}
	return out
}

func intersectIntervals(a, b []interval) []interval {
	var out []interval
	for _, ia := range a {
		for _, ib := range b {
			lo, hi := max64(ia.lo, ib.lo), min64(ia.hi, ib.hi)
			if lo < hi {
				out = append(out, interval{lo, hi})
			}
		}
	}
	return out
}

func subtractIntervals(a, b []interval) []interval {
	out := append([]interval{}, a...)
	for _, ib := range b {
		var next []interval
		for _, ia := range out {
			if ib.hi <= ia.lo || ib.lo >= ia.hi {
				next = append(next, ia)
				continue
			}
			if ib.lo > ia.lo {
				next = append(next, interval{ia.lo, ib.lo})
			}
			if ib.hi < ia.hi {
				next = append(next, interval{ib.hi, ia.hi})
			}
		}
		out = next
	}
	return out
}

func unionIntervals(a, b []interval) []interval {
	all := append(append([]interval{}, a...), b...)
	sort.Slice(all, func(i, j int) bool { return all[i].lo < all[j].lo })
	var out []interval
	for _, iv := range all {
		if len(out) > 0 && iv.lo <= out[len(out)-1].hi {
			if iv.hi > out[len(out)-1].hi {
				out[len(out)-1].hi = iv.hi
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

func max64(a, b core.Precision) core.Precision {
	if a > b {
		return a
	}
	return b
}

func min64(a, b core.Precision) core.Precision {
	if a < b {
		return a
	}
	return b
}

func (o *Overlap) CollisionsAlong(objectRay core.Ray) core.HitList {
	var list core.HitList
	a := rootsToIntervals(o.A.CollisionsAlong(objectRay))
	b := rootsToIntervals(o.B.CollisionsAlong(objectRay))
	var result []interval
	switch o.Mode {
	case OverlapInclusive:
		result = intersectIntervals(a, b)
	case OverlapSubtractive:
		result = subtractIntervals(a, b)
	case OverlapAdditive:
		result = unionIntervals(a, b)
	}
	for _, iv := range result {
		list.Add(core.Hit{T: iv.lo, Kind: core.HitPoint})
		list.Add(core.Hit{T: iv.hi, Kind: core.HitPoint})
	}
	return list
}

func (o *Overlap) Intersect(worldRay core.Ray, tMin core.Precision) (core.Hit, bool) {
	objRay := o.worldToObject(worldRay)
	hits := o.CollisionsAlong(objRay)
	h, ok := hits.Nearest(0)
	if !ok {
		return core.Hit{}, false
	}
	objPoint := objRay.Solve(h.T)
	// The surviving boundary belongs to whichever child's surface the
	// point actually lies on; prefer A, falling back to B.
	var n core.Vec3
	if o.A.IsSurfacePoint(o.Transform.ForwardPoint(objPoint)) {
		n = o.A.Normal(o.Transform.ForwardPoint(objPoint))
	} else {
		n = o.B.Normal(o.Transform.ForwardPoint(objPoint))
	}
	objNormal := o.Transform.ReverseVector(n)
	hit := o.objectToWorldHit(objPoint, objNormal, worldRay)
	if hit.T <= tMin {
		return core.Hit{}, false
	}
	return hit, true
}

func (o *Overlap) Normal(worldPoint core.Point3) core.Vec3 {
	if o.A.IsSurfacePoint(worldPoint) {
		return o.A.Normal(worldPoint)
	}
	return o.B.Normal(worldPoint)
}

func (o *Overlap) IsSurfacePoint(worldPoint core.Point3) bool {
	return o.Contains(worldPoint) && (o.A.IsSurfacePoint(worldPoint) || o.B.IsSurfacePoint(worldPoint))
}

func (o *Overlap) Contains(worldPoint core.Point3) bool {
	switch o.Mode {
	case OverlapInclusive:
		return o.A.Contains(worldPoint) && o.B.Contains(worldPoint)
	case OverlapSubtractive:
		return o.A.Contains(worldPoint) && !o.B.Contains(worldPoint)
	default:
		return o.A.Contains(worldPoint) || o.B.Contains(worldPoint)
	}
}

func (o *Overlap) Map(objectPoint core.Point3) (u, v core.Precision) {
	return o.A.Map(objectPoint)
}

func (o *Overlap) WorldBounds() core.Bounds {
	switch o.Mode {
	case OverlapSubtractive:
		return o.A.WorldBounds()
	default:
		return o.A.WorldBounds().Union(o.B.WorldBounds())
	}
}
