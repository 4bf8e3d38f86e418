package material

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
)

// Diagonal alternates two colors along 45-degree stripes in the shaded
// point's (x,y) plane, the checkerboard's axis-rotated cousin.
type Diagonal struct {
	Base
	A, B  Color
	Scale core.Precision
}

// NewDiagonal returns a diagonal-stripe texture.
func NewDiagonal(a, b Color, scale core.Precision) *Diagonal {
	return &Diagonal{Base: NewBase(a), A: a, B: b, Scale: scale}
}

func (d *Diagonal) Diffuse(p core.Point3) Color {
	band := int(math.Floor((p.X + p.Y) / d.Scale))
	if ((band % 2) + 2) % 2 == 0 {
		return d.A
	}
	return d.B
}
