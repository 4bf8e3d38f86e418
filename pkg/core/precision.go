// Package core provides the linear-algebra and scene-graph primitives shared
// by every other package in the renderer: scalars, vectors, rays, matrices,
// bounds, the octree, and the root solvers.
package core

import (
	"math"
	"sync/atomic"
)

// Precision is the real-number type used throughout the renderer. It is kept
// as a plain float64 alias (rather than a distinct defined type) so that it
// composes directly with math.* and gonum's mat.Dense, which both operate on
// float64.
type Precision = float64

// Epsilon is the process-wide tolerance for "numerically zero". It is
// intentionally looser than machine epsilon so that intersections near
// tangencies remain numerically stable.
const Epsilon Precision = 1.0 / 1024.0 // ~2^-10

// ShadowEpsilon offsets shadow rays off the surface they originate from, and
// is slightly larger than Epsilon to swallow self-shadowing acne.
const ShadowEpsilon Precision = Epsilon * 4

// RootEpsilon is the smallest of the three epsilons, used by the root
// solvers to decide whether a leading coefficient or discriminant is zero.
const RootEpsilon Precision = Epsilon / 64

// NearlyZero reports whether v is within Epsilon of zero.
func NearlyZero(v Precision) bool {
	return math.Abs(v) < Epsilon
}

// NearlyEqual reports whether a and b are within Epsilon of each other.
func NearlyEqual(a, b Precision) bool {
	return math.Abs(a-b) < Epsilon
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi Precision) Precision {
	return math.Max(lo, math.Min(hi, v))
}

// solverInvocations counts calls into the root solvers across the process,
// for profiling. It is the only piece of shared mutable state touched from
// the hot per-pixel path, so it is updated atomically.
var solverInvocations uint64

// SolverInvocations returns the number of quadratic/cubic/quartic solver
// calls made so far in this process.
func SolverInvocations() uint64 {
	return atomic.LoadUint64(&solverInvocations)
}

func countSolverInvocation() {
	atomic.AddUint64(&solverInvocations, 1)
}
