package core

// maxOctreeDepth bounds recursion to prevent pathological splits around
// clustered or degenerate objects.
const maxOctreeDepth = 6

// octreeLeafCapacity (K) is the number of objects a node holds before it
// splits into its 8 children.
const octreeLeafCapacity = 8

// Bounded is anything the octree can index: it must publish a world-space
// Bounds. Object implementations in pkg/geometry satisfy this directly.
type Bounded interface {
	WorldBounds() Bounds
}

// OctreeNode is one node of the spatial index over object bounds. It owns a
// Bounds, the objects held directly at this level, and up to 8 lazily
// created children. The octree is a candidate culler only - it does not
// compute intersection points, it returns the candidate objects a ray's
// bounding box test says are worth intersecting.
type OctreeNode[T Bounded] struct {
	Bounds   Bounds
	Objects  []T
	Infinite []T
	Children *[8]*OctreeNode[T]
	depth    int
}

// NewOctree creates the root node for the given world bounds.
func NewOctree[T Bounded](bounds Bounds) *OctreeNode[T] {
	return &OctreeNode[T]{Bounds: bounds}
}

// Insert adds obj to the tree, rejecting it if it doesn't intersect this
// node's bounds at all.
//
//  0. If obj has infinite bounds, keep it in this node's Infinite list,
//     bypassing the bounds test and octant subdivision entirely - Query
//     always yields it regardless of where the ray points.
//  1. If obj doesn't intersect this node's bounds, reject.
//  2. If this node has no children yet and holds fewer than K objects, push
//     obj here.
//  3. Otherwise split (if not already split) and push every object that
//     fits entirely into one octant down into it; objects straddling octant
//     planes stay at this node. Then insert obj into the one child that
//     contains it entirely, unless obj itself straddles - in which case it
//     stays here too.
func (n *OctreeNode[T]) Insert(obj T) bool {
	objBounds := obj.WorldBounds()
	if objBounds.Infinite {
		n.Infinite = append(n.Infinite, obj)
		return true
	}
	if !n.Bounds.IntersectsBounds(objBounds) {
		return false
	}

	if n.Children == nil && (len(n.Objects) < octreeLeafCapacity || n.depth >= maxOctreeDepth) {
		n.Objects = append(n.Objects, obj)
		return true
	}

	if n.Children == nil {
		n.split()
	}

	if n.pushDown(obj, objBounds) {
		return true
	}

	n.Objects = append(n.Objects, obj)
	return true
}

// split materializes the 8 child nodes and migrates any existing objects
// that fit entirely within one octant.
func (n *OctreeNode[T]) split() {
	childBounds := n.Bounds.Split()
	var children [8]*OctreeNode[T]
	for i := range children {
		children[i] = &OctreeNode[T]{Bounds: childBounds[i], depth: n.depth + 1}
	}
	n.Children = &children

	kept := n.Objects[:0]
	for _, obj := range n.Objects {
		if !n.pushDown(obj, obj.WorldBounds()) {
			kept = append(kept, obj)
		}
	}
	n.Objects = kept
}

// pushDown moves obj into whichever single child fully contains it, and
// reports whether it found one. An object that straddles the octant planes
// is left for the caller to keep at this level. Infinite objects never
// reach here - Insert diverts them before any bounds test.
func (n *OctreeNode[T]) pushDown(obj T, objBounds Bounds) bool {
	for _, child := range n.Children {
		if child.Bounds.containsBounds(objBounds) {
			child.Insert(obj)
			return true
		}
	}
	return false
}

// Query performs a pre-order traversal, testing ray against this node's
// bounds and collecting candidates from this node's own objects and every
// child, appending into out. The caller is responsible for intersecting and
// sorting the returned candidates; the octree only culls. Infinite objects
// are appended unconditionally, ahead of the bounds gate, since they
// intersect every ray by definition regardless of where this node's own
// finite bounds sit.
func (n *OctreeNode[T]) Query(ray Ray, out []T) []T {
	out = append(out, n.Infinite...)
	if !n.Bounds.IntersectsRay(ray) {
		return out
	}
	out = append(out, n.Objects...)
	if n.Children != nil {
		for _, child := range n.Children {
			out = child.Query(ray, out)
		}
	}
	return out
}

// All returns every object stored anywhere in the tree, for brute-force
// comparison in tests.
func (n *OctreeNode[T]) All(out []T) []T {
	out = append(out, n.Infinite...)
	out = append(out, n.Objects...)
	if n.Children != nil {
		for _, child := range n.Children {
			out = child.All(out)
		}
	}
	return out
}
