package core

// Transform is an entity's pose: world position, rotation and (possibly
// non-uniform) scale, plus their composed 4x4 homogeneous matrix and its
// inverse. The inverse is recomputed eagerly on every mutation - there is no
// lazy invalidation, trading a little redundant work for never having to
// reason about staleness.
type Transform struct {
	position Point3
	rotation Matrix // 3x3
	scale    Vec3

	forward Matrix // 4x4: object-space -> world-space
	reverse Matrix // 4x4: world-space -> object-space
}

// NewTransform returns an identity transform: origin, no rotation, unit
// scale.
func NewTransform() *Transform {
	t := &Transform{
		position: NewPoint3(0, 0, 0),
		rotation: Identity(3),
		scale:    NewVec3(1, 1, 1),
	}
	t.recompute()
	return t
}

// NewPositionedTransform returns an identity-oriented transform at the given
// world position.
func NewPositionedTransform(position Point3) *Transform {
	t := NewTransform()
	t.position = position
	t.recompute()
	return t
}

// Position returns the entity's world-space position.
func (t *Transform) Position() Point3 { return t.position }

// Rotation returns the entity's 3x3 rotation matrix.
func (t *Transform) Rotation() Matrix { return t.rotation }

// Scale returns the entity's per-axis scale.
func (t *Transform) Scale() Vec3 { return t.scale }

// SetPosition moves the entity to world_point and recomputes the composed
// transforms.
func (t *Transform) SetPosition(worldPoint Point3) {
	t.position = worldPoint
	t.recompute()
}

// MoveBy translates the entity by a world-space vector.
func (t *Transform) MoveBy(worldVector Vec3) {
	t.position = t.position.Add(worldVector)
	t.recompute()
}

// SetRotationMatrix sets the rotation directly from a 3x3 matrix.
func (t *Transform) SetRotationMatrix(r Matrix) {
	t.rotation = r
	t.recompute()
}

// SetRotationEuler sets the rotation from roll (x), pitch (y) and yaw (z)
// angles, composed as Rz*Ry*Rx.
func (t *Transform) SetRotationEuler(x, y, z Angle) {
	t.SetRotationMatrix(RotationEuler(x, y, z))
}

// SetRotationAxisAngle sets the rotation from an arbitrary axis and angle
// via Rodrigues' formula.
func (t *Transform) SetRotationAxisAngle(axis Vec3, theta Angle) {
	t.SetRotationMatrix(RotationAxisAngle(axis, theta))
}

// SetScale sets the entity's (possibly non-uniform) scale. Note that a
// rotation followed by a non-uniform scale only preserves right-handedness
// when the product of the scale components is positive.
func (t *Transform) SetScale(scale Vec3) {
	t.scale = scale
	t.recompute()
}

// recompute rebuilds the composed 4x4 transform T*R*S (so an object-space
// point is scaled, then rotated, then translated) and its inverse.
func (t *Transform) recompute() {
	m := Identity(4)
	m.SetBlock(0, 0, t.rotation)
	translation := NewMatrixFromRows([][]Precision{
		{1, 0, 0, t.position.X},
		{0, 1, 0, t.position.Y},
		{0, 0, 1, t.position.Z},
		{0, 0, 0, 1},
	})
	scaling := Identity(4)
	scaling.Set(0, 0, t.scale.X)
	scaling.Set(1, 1, t.scale.Y)
	scaling.Set(2, 2, t.scale.Z)

	t.forward = translation.Mul(m).Mul(scaling)
	inv, err := t.forward.Inverse()
	if err != nil {
		// A zero scale component is a construction-time error in the
		// caller; fall back to the identity rather than propagating NaNs
		// through every subsequent intersection.
		t.reverse = Identity(4)
		return
	}
	t.reverse = inv
}

// ForwardPoint maps an object-space point into world space.
func (t *Transform) ForwardPoint(p Point3) Point3 { return t.forward.MulPoint(p) }

// ReversePoint maps a world-space point into object space.
func (t *Transform) ReversePoint(p Point3) Point3 { return t.reverse.MulPoint(p) }

// ForwardVector rotates (and scales) a free vector from object space into
// world space. Vectors use the rotation+scale only, never the translation.
func (t *Transform) ForwardVector(v Vec3) Vec3 {
	return t.rotation.MulVec3(Vec3{v.X * t.scale.X, v.Y * t.scale.Y, v.Z * t.scale.Z})
}

// ReverseVector rotates (and unscales) a free vector from world space back
// into object space.
func (t *Transform) ReverseVector(v Vec3) Vec3 {
	rotated := t.rotation.Transpose().MulVec3(v)
	return Vec3{rotated.X / t.scale.X, rotated.Y / t.scale.Y, rotated.Z / t.scale.Z}
}

// ForwardRay maps an object-space ray into world space.
func (t *Transform) ForwardRay(r Ray) Ray {
	return NewRay(t.ForwardPoint(r.Origin), t.ForwardVector(r.Direction))
}

// ReverseRay maps a world-space ray into object space.
func (t *Transform) ReverseRay(r Ray) Ray {
	return NewRay(t.ReversePoint(r.Origin), t.ReverseVector(r.Direction))
}

// ForwardNormal transforms a surface normal from object space to world
// space using the inverse-transpose of the rotation+scale, which keeps
// normals perpendicular to the surface under non-uniform scaling.
func (t *Transform) ForwardNormal(n Vec3) Vec3 {
	invScale := Vec3{1 / t.scale.X, 1 / t.scale.Y, 1 / t.scale.Z}
	scaled := Vec3{n.X * invScale.X, n.Y * invScale.Y, n.Z * invScale.Z}
	return t.rotation.MulVec3(scaled).Normalize()
}
