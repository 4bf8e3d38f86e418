// Package loaders parses external mesh documents into geometry primitives.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/geometry"
	"github.com/gorender/raytrace/pkg/material"
)

// LoadOBJ parses a textual OBJ document into a set of triangle faces ready
// for geometry.NewModel. Bad lines are skipped, never abort the parse; a
// face referencing an out-of-range index is dropped with a warning written
// to warnings rather than failing the whole load.
func LoadOBJ(r io.Reader) (faces []geometry.ModelFace, warnings []string, err error) {
	var vertices []core.Point3
	var normals []core.Vec3

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "o":
			// object name, semantically ignored

		case "v":
			p, ok := parsePoint(fields[1:])
			if !ok {
				warnings = append(warnings, fmt.Sprintf("line %d: malformed vertex, skipped", lineNo))
				continue
			}
			vertices = append(vertices, p)

		case "vn":
			n, ok := parsePoint(fields[1:])
			if !ok {
				warnings = append(warnings, fmt.Sprintf("line %d: malformed normal, skipped", lineNo))
				continue
			}
			normals = append(normals, core.NewVec3(n.X, n.Y, n.Z).Normalize())

		case "vt":
			// texture coordinate lines are ignored: the Model primitive has
			// no per-vertex UV override.

		case "f":
			face, ok := parseFace(fields[1:], vertices, normals)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("line %d: face references out-of-range index, dropped", lineNo))
				continue
			}
			faces = append(faces, face...)

		default:
			// unrecognized leading token, ignored per the format's grammar
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("reading OBJ stream: %w", err)
	}
	return faces, warnings, nil
}

func parsePoint(fields []string) (core.Point3, bool) {
	if len(fields) < 3 {
		return core.Point3{}, false
	}
	x, err1 := strconv.ParseFloat(fields[0], 64)
	y, err2 := strconv.ParseFloat(fields[1], 64)
	z, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return core.Point3{}, false
	}
	return core.NewPoint3(core.Precision(x), core.Precision(y), core.Precision(z)), true
}

// faceVertex is a single a/ta/na token: a 1-based vertex index plus
// optional 1-based texture and normal indices (0 meaning absent).
type faceVertex struct {
	v, vt, vn int
}

func parseFaceVertex(token string) (faceVertex, bool) {
	parts := strings.Split(token, "/")
	idx := make([]int, len(parts))
	for i, p := range parts {
		if p == "" {
			idx[i] = 0
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return faceVertex{}, false
		}
		idx[i] = n
	}
	fv := faceVertex{}
	fv.v = idx[0]
	if len(idx) > 1 {
		fv.vt = idx[1]
	}
	if len(idx) > 2 {
		fv.vn = idx[2]
	}
	return fv, true
}

// parseFace fan-triangulates an N-gon face line into triangle faces,
// converting 1-based indices to 0-based and rejecting the whole face if any
// referenced index is out of range.
func parseFace(tokens []string, vertices []core.Point3, normals []core.Vec3) ([]geometry.ModelFace, bool) {
	if len(tokens) < 3 {
		return nil, false
	}
	fvs := make([]faceVertex, len(tokens))
	for i, tok := range tokens {
		fv, ok := parseFaceVertex(tok)
		if !ok {
			return nil, false
		}
		fvs[i] = fv
	}

	resolve := func(fv faceVertex) (core.Point3, core.Vec3, bool) {
		vi := fv.v - 1
		if vi < 0 || vi >= len(vertices) {
			return core.Point3{}, core.Vec3{}, false
		}
		p := vertices[vi]
		if fv.vn > 0 {
			ni := fv.vn - 1
			if ni < 0 || ni >= len(normals) {
				return core.Point3{}, core.Vec3{}, false
			}
			return p, normals[ni], true
		}
		return p, core.Vec3{}, true
	}

	// Vertices keep their listed order, which is taken as counter-clockwise
	// front-facing: NewModel derives a flat face's unit normal from that
	// order, and a smooth face uses the parsed vn normals, which were
	// normalized when read.
	var faces []geometry.ModelFace
	for i := 1; i+1 < len(fvs); i++ {
		a, na, ok1 := resolve(fvs[0])
		b, nb, ok2 := resolve(fvs[i])
		c, nc, ok3 := resolve(fvs[i+1])
		if !ok1 || !ok2 || !ok3 {
			return nil, false
		}
		smooth := fvs[0].vn > 0 && fvs[i].vn > 0 && fvs[i+1].vn > 0
		faces = append(faces, geometry.ModelFace{
			Vertices: [3]core.Point3{a, b, c},
			Normals:  [3]core.Vec3{na, nb, nc},
			Smooth:   smooth,
		})
	}
	return faces, true
}

// LoadOBJModel parses r and wraps the resulting faces in a Model placed
// under m.
func LoadOBJModel(r io.Reader, m material.Material) (*geometry.Model, []string, error) {
	faces, warnings, err := LoadOBJ(r)
	if err != nil {
		return nil, warnings, err
	}
	return geometry.NewModel(faces, m), warnings, nil
}
