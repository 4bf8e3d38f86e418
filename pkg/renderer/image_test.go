package renderer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/renderer"
)

func TestImageBlendAveragesSamples(t *testing.T) {
	img := renderer.NewImage(2, 2)
	img.Blend(0, 0, []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 1, 1),
	})
	c := img.At(0, 0)
	assert.InDelta(t, 0.5, c.X, 1e-6)
	assert.InDelta(t, 0.5, c.Y, 1e-6)
	assert.InDelta(t, 0.5, c.Z, 1e-6)
}

func TestImageSkipRespectsMask(t *testing.T) {
	img := renderer.NewImage(2, 2)
	assert.False(t, img.Skip(0, 0))

	img.Mask = make([]uint8, 4)
	img.Mask[1] = 1
	assert.True(t, img.Skip(0, 0))
	assert.False(t, img.Skip(1, 0))
}

func TestWritePPMHeader(t *testing.T) {
	img := renderer.NewImage(2, 3)
	img.Set(0, 0, core.NewVec3(1, 1, 1))

	var buf bytes.Buffer
	require.NoError(t, img.WritePPM(&buf, 1.0))

	want := "P6\n2 3\n255\n"
	got := buf.String()
	require.True(t, len(got) >= len(want))
	assert.Equal(t, want, got[:len(want)])
	assert.Equal(t, len(want)+2*3*3, buf.Len())
}

func TestWritePAMHeader(t *testing.T) {
	img := renderer.NewImage(2, 2)
	var buf bytes.Buffer
	require.NoError(t, img.WritePAM(&buf, 1.0))

	want := "P7\nWIDTH 2\nHEIGHT 2\nDEPTH 4\nMAXVAL 255\nTUPLTYPE RGB_ALPHA\nENDHDR\n"
	got := buf.String()
	require.True(t, len(got) >= len(want))
	assert.Equal(t, want, got[:len(want)])
	assert.Equal(t, len(want)+2*2*4, buf.Len())
}

func TestWriteTGAHeader(t *testing.T) {
	img := renderer.NewImage(4, 5)
	var buf bytes.Buffer
	require.NoError(t, img.WriteTGA(&buf, 1.0))

	b := buf.Bytes()
	require.True(t, len(b) >= 18)
	assert.Equal(t, byte(2), b[2])
	assert.Equal(t, byte(4), b[12])
	assert.Equal(t, byte(0), b[13])
	assert.Equal(t, byte(5), b[14])
	assert.Equal(t, byte(0), b[15])
	assert.Equal(t, byte(24), b[16])
	assert.Equal(t, byte(0x20), b[17])
	assert.Equal(t, 18+4*5*3, len(b))
}

func TestWritePPMGammaBrightensMidtones(t *testing.T) {
	img := renderer.NewImage(1, 1)
	img.Set(0, 0, core.NewVec3(0.5, 0.5, 0.5))

	var linear, gamma bytes.Buffer
	require.NoError(t, img.WritePPM(&linear, 1.0))
	require.NoError(t, img.WritePPM(&gamma, 2.2))

	linearBytes := linear.Bytes()
	gammaBytes := gamma.Bytes()
	header := len("P6\n1 1\n255\n")
	assert.Greater(t, gammaBytes[header], linearBytes[header])
}
