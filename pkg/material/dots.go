package material

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
)

// Dots ("polka") places a circular spot of color Dot of the given radius
// at the center of every Scale x Scale cell in the shaded point's (x,y) plane,
// background Base color elsewhere.
type Dots struct {
	Base
	BackgroundColor, DotColor Color
	Scale, Radius             core.Precision
}

// NewDots returns a polka-dot texture.
func NewDots(background, dot Color, scale, radius core.Precision) *Dots {
	return &Dots{Base: NewBase(background), BackgroundColor: background, DotColor: dot, Scale: scale, Radius: radius}
}

func (d *Dots) Diffuse(p core.Point3) Color {
	cellX := math.Mod(p.X, d.Scale)
	cellY := math.Mod(p.Y, d.Scale)
	if cellX < 0 {
		cellX += d.Scale
	}
	if cellY < 0 {
		cellY += d.Scale
	}
	cx, cy := d.Scale/2, d.Scale/2
	dx, dy := cellX-cx, cellY-cy
	if math.Sqrt(dx*dx+dy*dy) <= d.Radius {
		return d.DotColor
	}
	return d.BackgroundColor
}
