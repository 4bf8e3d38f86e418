package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense, row-major real matrix with runtime dimensions. It wraps
// gonum's mat.Dense so that inversion, determinants and multiplication reuse
// a battle-tested LU decomposition instead of a hand-rolled cofactor
// expansion. The renderer only ever needs it sized 3x3 (rotations) and 4x4
// (homogeneous transforms and quadric coefficient matrices), but nothing
// here assumes a fixed size.
type Matrix struct {
	dense *mat.Dense
}

// NewMatrix allocates a rows x cols matrix filled with zero.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{dense: mat.NewDense(rows, cols, nil)}
}

// NewMatrixFromRows builds a matrix from row-major data, one slice per row.
func NewMatrixFromRows(rows [][]Precision) Matrix {
	if len(rows) == 0 {
		return Matrix{dense: mat.NewDense(0, 0, nil)}
	}
	r, c := len(rows), len(rows[0])
	data := make([]Precision, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}
	return Matrix{dense: mat.NewDense(r, c, data)}
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Fill sets every element of the matrix to v.
func (m Matrix) Fill(v Precision) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, v)
		}
	}
}

// Dims returns the matrix's row and column counts.
func (m Matrix) Dims() (rows, cols int) { return m.dense.Dims() }

// Get returns the element at 0-based (row, col).
func (m Matrix) Get(row, col int) Precision { return m.dense.At(row, col) }

// Set assigns the element at 0-based (row, col).
func (m Matrix) Set(row, col int, v Precision) { m.dense.Set(row, col, v) }

// Get1 returns the element at 1-based (row, col); the quadric coefficient
// path mirrors the standard derivations that are written with 1-based
// indices.
func (m Matrix) Get1(row, col int) Precision { return m.dense.At(row-1, col-1) }

// Set1 assigns the element at 1-based (row, col).
func (m Matrix) Set1(row, col int, v Precision) { m.dense.Set(row-1, col-1, v) }

// Copy returns a deep copy of the matrix.
func (m Matrix) Copy() Matrix {
	r, c := m.Dims()
	out := NewMatrix(r, c)
	out.dense.Copy(m.dense)
	return out
}

// SetBlock assigns a sub-block of the matrix starting at (row, col) from src.
func (m Matrix) SetBlock(row, col int, src Matrix) {
	r, c := src.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(row+i, col+j, src.Get(i, j))
		}
	}
}

// Mul returns the matrix product m * other.
func (m Matrix) Mul(other Matrix) Matrix {
	r, _ := m.Dims()
	_, c := other.Dims()
	out := NewMatrix(r, c)
	out.dense.Mul(m.dense, other.dense)
	return out
}

// Transpose returns the transpose of the matrix.
func (m Matrix) Transpose() Matrix {
	r, c := m.Dims()
	out := NewMatrix(c, r)
	out.dense.Copy(m.dense.T())
	return out
}

// Determinant returns the matrix's determinant.
func (m Matrix) Determinant() Precision {
	return mat.Det(m.dense)
}

// SingularMatrixError is returned by Inverse when the matrix's determinant
// magnitude falls below RootEpsilon.
type SingularMatrixError struct{ Determinant Precision }

func (e SingularMatrixError) Error() string {
	return fmt.Sprintf("matrix is singular (determinant %g is below epsilon)", e.Determinant)
}

// Inverse returns the matrix inverse via LU decomposition. Callers must not
// invert a matrix whose determinant magnitude is below RootEpsilon; doing so
// returns a SingularMatrixError rather than a garbage result.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < RootEpsilon {
		return Matrix{}, SingularMatrixError{Determinant: det}
	}
	r, c := m.Dims()
	out := NewMatrix(r, c)
	if err := out.dense.Inverse(m.dense); err != nil {
		return Matrix{}, SingularMatrixError{Determinant: det}
	}
	return out, nil
}

// MulVec3 applies a 3x3 matrix to a free vector (rotation/scale only, no
// translation).
func (m Matrix) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: m.Get(0, 0)*v.X + m.Get(0, 1)*v.Y + m.Get(0, 2)*v.Z,
		Y: m.Get(1, 0)*v.X + m.Get(1, 1)*v.Y + m.Get(1, 2)*v.Z,
		Z: m.Get(2, 0)*v.X + m.Get(2, 1)*v.Y + m.Get(2, 2)*v.Z,
	}
}

// MulPoint applies a 4x4 homogeneous matrix to a point, dehomogenizing the
// result.
func (m Matrix) MulPoint(p Point3) Point3 {
	h := Homogenize(p)
	out := Vec4{
		X: m.Get(0, 0)*h.X + m.Get(0, 1)*h.Y + m.Get(0, 2)*h.Z + m.Get(0, 3)*h.W,
		Y: m.Get(1, 0)*h.X + m.Get(1, 1)*h.Y + m.Get(1, 2)*h.Z + m.Get(1, 3)*h.W,
		Z: m.Get(2, 0)*h.X + m.Get(2, 1)*h.Y + m.Get(2, 2)*h.Z + m.Get(2, 3)*h.W,
		W: m.Get(3, 0)*h.X + m.Get(3, 1)*h.Y + m.Get(3, 2)*h.Z + m.Get(3, 3)*h.W,
	}
	return out.Dehomogenize()
}

// MulVec4 applies a 4x4 matrix to a homogeneous 4-tuple directly, without
// the dehomogenize step MulPoint performs - used by the quadric
// coefficient path, which needs the raw 4-vector result.
func (m Matrix) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m.Get(0, 0)*v.X + m.Get(0, 1)*v.Y + m.Get(0, 2)*v.Z + m.Get(0, 3)*v.W,
		Y: m.Get(1, 0)*v.X + m.Get(1, 1)*v.Y + m.Get(1, 2)*v.Z + m.Get(1, 3)*v.W,
		Z: m.Get(2, 0)*v.X + m.Get(2, 1)*v.Y + m.Get(2, 2)*v.Z + m.Get(2, 3)*v.W,
		W: m.Get(3, 0)*v.X + m.Get(3, 1)*v.Y + m.Get(3, 2)*v.Z + m.Get(3, 3)*v.W,
	}
}

// RotationX returns the 3x3 rotation matrix around the X axis.
func RotationX(theta Angle) Matrix {
	rad := theta.Radians()
	c, s := math.Cos(rad), math.Sin(rad)
	return NewMatrixFromRows([][]Precision{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	})
}

// RotationY returns the 3x3 rotation matrix around the Y axis.
func RotationY(theta Angle) Matrix {
	rad := theta.Radians()
	c, s := math.Cos(rad), math.Sin(rad)
	return NewMatrixFromRows([][]Precision{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	})
}

// RotationZ returns the 3x3 rotation matrix around the Z axis.
func RotationZ(theta Angle) Matrix {
	rad := theta.Radians()
	c, s := math.Cos(rad), math.Sin(rad)
	return NewMatrixFromRows([][]Precision{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	})
}

// RotationEuler builds the roll-pitch-yaw rotation matrix Rz*Ry*Rx. Callers
// that need a different composition order must build the matrix themselves.
func RotationEuler(x, y, z Angle) Matrix {
	return RotationZ(z).Mul(RotationY(y)).Mul(RotationX(x))
}

// RotationAxisAngle builds a 3x3 rotation matrix from an arbitrary axis and
// angle via the Rodrigues formula, rather than composing Euler matrices.
func RotationAxisAngle(axis Vec3, theta Angle) Matrix {
	k := axis.Normalize()
	rx, ry, rz := Rodrigues(k, NewVec3(1, 0, 0), theta), Rodrigues(k, NewVec3(0, 1, 0), theta), Rodrigues(k, NewVec3(0, 0, 1), theta)
	return NewMatrixFromRows([][]Precision{
		{rx.X, ry.X, rz.X},
		{rx.Y, ry.Y, rz.Y},
		{rx.Z, ry.Z, rz.Z},
	})
}
