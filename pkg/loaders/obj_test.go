package loaders

import (
	"strings"
	"testing"

	"github.com/gorender/raytrace/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOBJ = `
# a unit triangle
o tri
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`

func TestLoadOBJParsesTriangle(t *testing.T) {
	faces, warnings, err := LoadOBJ(strings.NewReader(sampleOBJ))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, faces, 1)
	assert.True(t, faces[0].Smooth)
}

func TestLoadOBJSkipsBadLines(t *testing.T) {
	doc := "v 0 0 0\nv not a number 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	faces, warnings, err := LoadOBJ(strings.NewReader(doc))
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)
	assert.Len(t, faces, 1)
}

func TestLoadOBJDropsOutOfRangeFace(t *testing.T) {
	doc := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n"
	faces, warnings, err := LoadOBJ(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, faces)
	assert.NotEmpty(t, warnings)
}

func TestLoadOBJModelBuildsModel(t *testing.T) {
	model, _, err := LoadOBJModel(strings.NewReader(sampleOBJ), material.NewPhong(material.Gray))
	require.NoError(t, err)
	assert.Len(t, model.Triangles, 1)
}
