package renderer

import (
	"math"

	"github.com/gorender/raytrace/pkg/core"
)

// Camera is a pinhole projection: a position, an orthonormal forward/left/up
// basis, and a 3x3 intrinsics matrix whose inverse subtracts the principal
// point (width/2, height/2), so that image-plane (0,0)..(width,height) maps
// through the pinhole with the image center on the forward axis.
type Camera struct {
	Position core.Point3
	Forward  core.Vec3
	Left     core.Vec3
	Up       core.Vec3

	Width, Height int
	FOV           core.Angle
	intrinsics    core.Matrix
	inverse       core.Matrix
}

// NewCamera builds a camera at the origin looking down -Z with the given
// image dimensions and horizontal field of view.
func NewCamera(width, height int, fov core.Angle) *Camera {
	c := &Camera{Width: width, Height: height, FOV: fov}
	c.buildIntrinsics()
	c.MoveTo(core.NewPoint3(0, 0, 0), core.NewPoint3(0, 0, -1))
	return c
}

// buildIntrinsics derives the focal length from the horizontal field of
// view so that it maps the full image width, per spec. The principal
// point is stored positive here so its inverse subtracts (cx,cy) from an
// image point before dividing by f:
//
//	[ f  0   cx ]
//	[ 0  f   cy ]
//	[ 0  0    1 ]
func (c *Camera) buildIntrinsics() {
	cx := core.Precision(c.Width) / 2
	cy := core.Precision(c.Height) / 2
	f := cx / math.Tan(c.FOV.Radians()/2)

	c.intrinsics = core.NewMatrixFromRows([][]core.Precision{
		{f, 0, cx},
		{0, f, cy},
		{0, 0, 1},
	})
	inv, err := c.intrinsics.Inverse()
	if err != nil {
		inv = core.Identity(3)
	}
	c.inverse = inv
}

// MoveTo repositions the camera and re-derives its orthonormal basis:
// forward = normalize(at-from), left = normalize(cross(worldUp, forward)),
// up = cross(forward, left).
func (c *Camera) MoveTo(from, at core.Point3) {
	worldUp := core.NewVec3(0, 1, 0)
	c.Position = from
	c.Forward = at.Sub(from).Normalize()
	c.Left = worldUp.Cross(c.Forward).Normalize()
	if c.Left.IsZero() {
		c.Left = core.NewVec3(1, 0, 0)
	}
	c.Up = c.Forward.Cross(c.Left)
}

// Cast constructs a world-space ray from the camera position through image
// point (x,y), mapping the point through the inverse intrinsics and then the
// camera's rotation basis.
func (c *Camera) Cast(x, y core.Precision) core.Ray {
	col := core.NewVec3(x, y, 1)
	camSpace := c.inverse.MulVec3(col)
	dir := c.Left.Multiply(camSpace.X).Add(c.Up.Multiply(camSpace.Y)).Add(c.Forward.Multiply(camSpace.Z))
	return core.NewRay(c.Position, dir.Normalize())
}

// StereoLayout selects which image axis (width or height) a StereoCamera
// splits between its two views.
type StereoLayout int

const (
	StereoLeftRight StereoLayout = iota
	StereoTopBottom
)

// StereoCamera is a pair of cameras offset along the baseline with a
// computed toe-in rotation toward a convergence point. Layout only sets
// each camera's image size; StereoCamera does not render the two views or
// composite them into one image.
type StereoCamera struct {
	Left, Right *Camera
	Layout      StereoLayout
}

// NewStereoCamera builds a stereo pair looking at converge, separated by
// baseline along the camera's left axis, each with half the combined image
// dimensions along the split axis.
func NewStereoCamera(width, height int, fov core.Angle, from, converge core.Point3, baseline core.Precision, layout StereoLayout) *StereoCamera {
	w, h := width, height
	switch layout {
	case StereoLeftRight:
		w = width / 2
	case StereoTopBottom:
		h = height / 2
	}

	base := NewCamera(w, h, fov)
	base.MoveTo(from, converge)
	halfBaseline := base.Left.Multiply(baseline / 2)

	left := NewCamera(w, h, fov)
	left.MoveTo(from.Add(halfBaseline), converge)
	right := NewCamera(w, h, fov)
	right.MoveTo(from.Add(halfBaseline.Negate()), converge)

	return &StereoCamera{Left: left, Right: right, Layout: layout}
}
