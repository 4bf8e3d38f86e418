package core

import "math"

// Bounds is an axis-aligned bounding box, the octree's subdivision unit.
// Min <= Max is required componentwise; a degenerate (equal) box is
// allowed, for zero-thickness shapes.
type Bounds struct {
	Min, Max Point3
	// Infinite marks a sentinel bounds that intersects everything. Infinite
	// primitives (plane, wall, an infinite cylinder or cone) publish this so
	// the octree keeps them at the root rather than trying to subdivide
	// around them.
	Infinite bool
}

// InfiniteBounds returns the sentinel bounds that always intersects.
func InfiniteBounds() Bounds { return Bounds{Infinite: true} }

// NewBounds builds a Bounds from a min/max corner pair.
func NewBounds(min, max Point3) Bounds { return Bounds{Min: min, Max: max} }

// NewBoundsFromPoints returns the smallest Bounds containing all points.
func NewBoundsFromPoints(points ...Point3) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Point3{math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z)}
		max = Point3{math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z)}
	}
	return Bounds{Min: min, Max: max}
}

// Contains reports whether p lies within the box (inclusive).
func (b Bounds) Contains(p Point3) bool {
	if b.Infinite {
		return true
	}
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectsRay tests the box against a ray using the slab method: six
// scalar divisions, each guarded against a near-zero direction component
// by skipping the division and instead requiring the origin to lie within
// that axis's slab. Returns true iff the largest near-t is <= the smallest far-t and the
// far-t is >= 0.
func (b Bounds) IntersectsRay(r Ray) bool {
	if b.Infinite {
		return true
	}
	tNear, tFar := math.Inf(-1), math.Inf(1)

	axis := func(origin, dir, lo, hi Precision) bool {
		if math.Abs(dir) < RootEpsilon {
			return origin >= lo && origin <= hi
		}
		invDir := 1.0 / dir
		t1 := (lo - origin) * invDir
		t2 := (hi - origin) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = math.Max(tNear, t1)
		tFar = math.Min(tFar, t2)
		return tNear <= tFar
	}

	if !axis(r.Origin.X, r.Direction.X, b.Min.X, b.Max.X) {
		return false
	}
	if !axis(r.Origin.Y, r.Direction.Y, b.Min.Y, b.Max.Y) {
		return false
	}
	if !axis(r.Origin.Z, r.Direction.Z, b.Min.Z, b.Max.Z) {
		return false
	}
	return tFar >= 0
}

// IntersectsBounds tests pairwise interval overlap on each axis.
func (b Bounds) IntersectsBounds(o Bounds) bool {
	if b.Infinite || o.Infinite {
		return true
	}
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Union returns the smallest Bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if b.Infinite || o.Infinite {
		return InfiniteBounds()
	}
	return Bounds{
		Min: Point3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Point3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Point3 {
	return Point3{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2, (b.Min.Z + b.Max.Z) / 2}
}

// Expand grows the box by amount in every direction (useful for giving a
// flat primitive's bounds a little thickness before handing it to the
// octree).
func (b Bounds) Expand(amount Precision) Bounds {
	if b.Infinite {
		return b
	}
	d := NewVec3(amount, amount, amount)
	return Bounds{Min: b.Min.Add(d.Negate()), Max: b.Max.Add(d)}
}

// Octant is one of the 8 child cells produced by splitting a Bounds at its
// center, encoded as a 3-bit code: bit 2 = x>=cx, bit 1 = y>=cy, bit 0 =
// z>=cz.
type Octant int

// IndexOf maps a point to the octant it falls in relative to center.
func IndexOf(p Point3, center Point3) Octant {
	idx := 0
	if p.X >= center.X {
		idx |= 4
	}
	if p.Y >= center.Y {
		idx |= 2
	}
	if p.Z >= center.Z {
		idx |= 1
	}
	return Octant(idx)
}

// Split divides the box into its 8 octant children about its center.
func (b Bounds) Split() [8]Bounds {
	c := b.Center()
	var children [8]Bounds
	for i := 0; i < 8; i++ {
		min, max := b.Min, b.Max
		if i&4 != 0 {
			min.X = c.X
		} else {
			max.X = c.X
		}
		if i&2 != 0 {
			min.Y = c.Y
		} else {
			max.Y = c.Y
		}
		if i&1 != 0 {
			min.Z = c.Z
		} else {
			max.Z = c.Z
		}
		children[i] = Bounds{Min: min, Max: max}
	}
	return children
}

// containsBounds reports whether o fits entirely within b, used to decide
// whether an object can be pushed down into a single octant.
func (b Bounds) containsBounds(o Bounds) bool {
	if o.Infinite {
		return false
	}
	return o.Min.X >= b.Min.X && o.Max.X <= b.Max.X &&
		o.Min.Y >= b.Min.Y && o.Max.Y <= b.Max.Y &&
		o.Min.Z >= b.Min.Z && o.Max.Z <= b.Max.Z
}
