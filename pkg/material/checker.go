package material

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
)

// Checkerboard alternates between two colors by the parity of
// floor(p/scale) summed across the active axes - 2-D (using only x,y) or
// 3-D (using x,y,z), selected by Solid.
type Checkerboard struct {
	Base
	A, B  Color
	Scale core.Precision
	Solid bool // true: 3-D volumetric checker; false: 2-D (x,y) only
}

// NewCheckerboard2D returns a 2-D checkerboard texture evaluated on the
// shaded point's x and y coordinates.
func NewCheckerboard2D(a, b Color, scale core.Precision) *Checkerboard {
	return &Checkerboard{Base: NewBase(a), A: a, B: b, Scale: scale}
}

// NewCheckerboard3D returns a volumetric checkerboard texture evaluated
// against all three of the point's coordinates.
func NewCheckerboard3D(a, b Color, scale core.Precision) *Checkerboard {
	return &Checkerboard{Base: NewBase(a), A: a, B: b, Scale: scale, Solid: true}
}

func (c *Checkerboard) Diffuse(p core.Point3) Color {
	fx := int(math.Floor(p.X / c.Scale))
	fy := int(math.Floor(p.Y / c.Scale))
	parity := fx + fy
	if c.Solid {
		parity += int(math.Floor(p.Z / c.Scale))
	}
	if ((parity % 2) + 2) % 2 == 0 {
		return c.A
	}
	return c.B
}

func (c *Checkerboard) Ambient(p core.Point3) Color { return c.Diffuse(p).Scale(c.AmbientScale) }
