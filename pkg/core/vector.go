package core

import (
	"fmt"
	"math"
)

// Vec2 is a 2-component free vector, used for texture coordinates and
// image-plane offsets.
type Vec2 struct {
	X, Y Precision
}

// NewVec2 constructs a Vec2.
func NewVec2(x, y Precision) Vec2 { return Vec2{X: x, Y: y} }

// Add returns the sum of two Vec2 values.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Subtract returns the difference of two Vec2 values.
func (v Vec2) Subtract(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Multiply returns the Vec2 scaled by a scalar.
func (v Vec2) Multiply(s Precision) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Vec3 is a free displacement in 3-space: it has no fixed location. Vec3 -
// Vec3 = Vec3, and Vec3 scales freely. Points (below) are kept as a distinct
// type so that Point-Point = Vec3 and Point+Vec3 = Point are the only valid
// additions, matching the data model's Point/Vector algebra.
type Vec3 struct {
	X, Y, Z Precision
}

// NewVec3 constructs a Vec3.
func NewVec3(x, y, z Precision) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) String() string { return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z) }

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Subtract returns the difference of two vectors.
func (v Vec3) Subtract(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Multiply returns the vector scaled by a scalar.
func (v Vec3) Multiply(s Precision) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// MultiplyVec returns the component-wise product of two vectors; used for
// tinting colors by a material's attenuation.
func (v Vec3) MultiplyVec(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Negate returns the additive inverse of the vector.
func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) Precision { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Triple returns the scalar triple product dot(a, cross(b, c)), the signed
// volume of the parallelepiped spanned by the three vectors.
func Triple(a, b, c Vec3) Precision { return a.Dot(b.Cross(c)) }

// Quadrance returns the squared magnitude of the vector. Prefer this over
// squaring Length() anywhere a squared norm suffices - it skips the square
// root and is the hot-path choice for comparisons and falloff terms.
func (v Vec3) Quadrance() Precision { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Length returns the Euclidean magnitude of the vector.
func (v Vec3) Length() Precision { return math.Sqrt(v.Quadrance()) }

// Normalize returns a unit vector in the same direction. A null vector
// normalizes to itself rather than producing NaNs, so degenerate cases in
// lighting code don't poison downstream math.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Multiply(1.0 / length)
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Equals compares two vectors componentwise within Epsilon.
func (v Vec3) Equals(o Vec3) bool {
	return NearlyEqual(v.X, o.X) && NearlyEqual(v.Y, o.Y) && NearlyEqual(v.Z, o.Z)
}

// Clamp returns the vector with each component clamped to [lo, hi].
func (v Vec3) Clamp(lo, hi Precision) Vec3 {
	clamp := func(x Precision) Precision { return max(lo, min(hi, x)) }
	return Vec3{clamp(v.X), clamp(v.Y), clamp(v.Z)}
}

// Parallel tests whether two vectors are parallel, within Epsilon. Per the
// source this treats a == -b (anti-parallel) as parallel too; that is the
// correct test for lines, and is kept here deliberately even though it is a
// looser test for rays (see design notes).
func Parallel(a, b Vec3) bool {
	return a.Cross(b).Quadrance() < Epsilon*Epsilon
}

// Perpendicular tests whether two vectors are perpendicular, within Epsilon.
func Perpendicular(a, b Vec3) bool {
	return math.Abs(a.Dot(b)) < Epsilon
}

// Rodrigues rotates v around the unit axis k by angle theta, using the
// Rodrigues rotation formula. This is the preferred primitive for rotating a
// vector around an arbitrary axis rather than composing Euler matrices.
func Rodrigues(k, v Vec3, theta Angle) Vec3 {
	rad := theta.Radians()
	cosT, sinT := math.Cos(rad), math.Sin(rad)
	term1 := v.Multiply(cosT)
	term2 := k.Cross(v).Multiply(sinT)
	term3 := k.Multiply(k.Dot(v) * (1 - cosT))
	return term1.Add(term2).Add(term3)
}

// GammaCorrect raises each color channel to 1/gamma.
func (v Vec3) GammaCorrect(gamma Precision) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{math.Pow(v.X, invGamma), math.Pow(v.Y, invGamma), math.Pow(v.Z, invGamma)}
}

// Luminance returns the Rec.709 perceptual luminance of an RGB color.
func (v Vec3) Luminance() Precision { return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z }

// Point3 is an absolute location in 3-space, kept distinct from Vec3 so the
// type system enforces Point-Point=Vec3, Point+Vec3=Point, and disallows
// Point+Point or scaling a Point directly.
type Point3 struct {
	X, Y, Z Precision
}

// NewPoint3 constructs a Point3.
func NewPoint3(x, y, z Precision) Point3 { return Point3{X: x, Y: y, Z: z} }

func (p Point3) String() string { return fmt.Sprintf("({%.4g, %.4g, %.4g})", p.X, p.Y, p.Z) }

// Vec converts the point to a Vec3 with the same components, for the rare
// cases (matrix rows, homogenizing) that need to treat a point as a tuple of
// scalars rather than an algebraic point.
func (p Point3) Vec() Vec3 { return Vec3{p.X, p.Y, p.Z} }

// Sub returns the displacement from o to p (Point - Point = Vector).
func (p Point3) Sub(o Point3) Vec3 { return Vec3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// Add returns the point displaced by v (Point + Vector = Point).
func (p Point3) Add(v Vec3) Point3 { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// Equals compares two points componentwise within Epsilon.
func (p Point3) Equals(o Point3) bool {
	return NearlyEqual(p.X, o.X) && NearlyEqual(p.Y, o.Y) && NearlyEqual(p.Z, o.Z)
}

// Vec4 is a homogeneous 4-tuple, used by the quadric coefficient matrix and
// by the matrix runtime when it needs to carry a homogenized point.
type Vec4 struct {
	X, Y, Z, W Precision
}

// NewVec4 constructs a Vec4.
func NewVec4(x, y, z, w Precision) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

// Homogenize lifts a point into homogeneous coordinates with W=1.
func Homogenize(p Point3) Vec4 { return Vec4{p.X, p.Y, p.Z, 1} }

// Dot returns the 4-component dot product.
func (v Vec4) Dot(o Vec4) Precision { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

// Dehomogenize projects a homogeneous 4-tuple back down to a point, dividing
// through by W.
func (v Vec4) Dehomogenize() Point3 {
	if v.W == 0 || v.W == 1 {
		return Point3{v.X, v.Y, v.Z}
	}
	inv := 1.0 / v.W
	return Point3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Ray is a half-line: origin plus direction. Direction is not required to be
// unit length - intersection code scales its roots accordingly, and the
// shading path normalizes explicitly wherever it needs a cosine.
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay constructs a ray from an origin and (not necessarily unit)
// direction.
func NewRay(origin Point3, direction Vec3) Ray { return Ray{Origin: origin, Direction: direction} }

// NewRayTo constructs a unit-direction ray from origin toward target.
func NewRayTo(origin, target Point3) Ray {
	return NewRay(origin, target.Sub(origin).Normalize())
}

// Solve returns origin + t*direction, preserving the ray's own
// parameterization. Intersection code must use Solve so that roots computed
// against the (possibly non-unit) direction land on the right point.
func (r Ray) Solve(t Precision) Point3 { return r.Origin.Add(r.Direction.Multiply(t)) }

// DistanceAlong returns origin + t*normalize(direction): a physical,
// metric distance along the ray, for visibility/attenuation math that must
// not be skewed by the direction's original scale.
func (r Ray) DistanceAlong(t Precision) Point3 {
	return r.Origin.Add(r.Direction.Normalize().Multiply(t))
}

// Closest returns the point on the ray's line nearest to p.
func (r Ray) Closest(p Point3) Point3 {
	d := r.Direction
	q := d.Quadrance()
	if q == 0 {
		return r.Origin
	}
	t := p.Sub(r.Origin).Dot(d) / q
	return r.Solve(t)
}
