package material

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
)

// Grid draws LineColor along cell boundaries of width LineWidth spaced
// Scale apart in the shaded point's (x,y) plane, BackgroundColor elsewhere.
type Grid struct {
	Base
	BackgroundColor, LineColor Color
	Scale, LineWidth           core.Precision
}

// NewGrid returns a grid-line texture.
func NewGrid(background, line Color, scale, lineWidth core.Precision) *Grid {
	return &Grid{Base: NewBase(background), BackgroundColor: background, LineColor: line, Scale: scale, LineWidth: lineWidth}
}

func (g *Grid) Diffuse(p core.Point3) Color {
	cellX := math.Mod(math.Abs(p.X), g.Scale)
	cellY := math.Mod(math.Abs(p.Y), g.Scale)
	if cellX < g.LineWidth || cellX > g.Scale-g.LineWidth ||
		cellY < g.LineWidth || cellY > g.Scale-g.LineWidth {
		return g.LineColor
	}
	return g.BackgroundColor
}
