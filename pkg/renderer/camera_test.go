package renderer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/renderer"
)

func TestCameraCastThroughCenterIsForward(t *testing.T) {
	cam := renderer.NewCamera(100, 100, core.FromDegrees(90))
	cam.MoveTo(core.NewPoint3(0, 0, 5), core.NewPoint3(0, 0, 0))

	ray := cam.Cast(50, 50)
	assert.InDelta(t, 0.0, ray.Direction.X, 1e-9)
	assert.InDelta(t, 0.0, ray.Direction.Y, 1e-9)
	assert.Less(t, ray.Direction.Z, 0.0)
}

func TestCameraMoveToBuildsOrthonormalBasis(t *testing.T) {
	cam := renderer.NewCamera(10, 10, core.FromDegrees(60))
	cam.MoveTo(core.NewPoint3(1, 2, 3), core.NewPoint3(4, 2, 3))

	assert.InDelta(t, 1.0, cam.Forward.Length(), 1e-9)
	assert.InDelta(t, 1.0, cam.Left.Length(), 1e-9)
	assert.InDelta(t, 1.0, cam.Up.Length(), 1e-9)
	assert.InDelta(t, 0.0, cam.Forward.Dot(cam.Left), 1e-9)
	assert.InDelta(t, 0.0, cam.Forward.Dot(cam.Up), 1e-9)
	assert.InDelta(t, 0.0, cam.Left.Dot(cam.Up), 1e-9)
}

func TestCameraMoveToDegenerateForwardFallsBack(t *testing.T) {
	cam := renderer.NewCamera(10, 10, core.FromDegrees(60))
	// Looking straight up is parallel to world up, so Left falls back to +X.
	cam.MoveTo(core.NewPoint3(0, 0, 0), core.NewPoint3(0, 1, 0))

	assert.False(t, cam.Left.IsZero())
	assert.InDelta(t, 1.0, cam.Up.Length(), 1e-9)
}

func TestStereoCameraBaselineSeparatesEyes(t *testing.T) {
	stereo := renderer.NewStereoCamera(200, 100, core.FromDegrees(60),
		core.NewPoint3(0, 0, 10), core.NewPoint3(0, 0, 0), 0.5, renderer.StereoLeftRight)

	assert.Equal(t, 100, stereo.Left.Width)
	assert.Equal(t, 100, stereo.Right.Width)
	sep := stereo.Left.Position.Sub(stereo.Right.Position).Length()
	assert.InDelta(t, 0.5, sep, 1e-9)
}
