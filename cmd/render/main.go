// Command render drives the raytracer from the command line: pick a named
// scenario, cast it through a camera, and write the result as PPM, PAM or
// TGA. It is the ambient-minimum front door spec.md's external-interfaces
// section describes, not a general-purpose scene editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gorender/raytrace/pkg/core"
	"github.com/gorender/raytrace/pkg/renderer"
	"github.com/gorender/raytrace/pkg/scene"
)

// Exit codes per spec.md §6: 0 success, 1 invalid argument, 2 I/O error,
// 3 render error.
const (
	exitOK = iota
	exitInvalidArgument
	exitIOError
	exitRenderError
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)

	width := fs.Int("width", 400, "image width in pixels")
	height := fs.Int("height", 300, "image height in pixels")
	fov := fs.Float64("fov", 60, "horizontal field of view in degrees")
	samples := fs.String("samples", "deterministic", "subsample stencil: 'deterministic' or 'jittered'")
	depth := fs.Int("depth", 4, "reflection/refraction recursion depth")
	output := fs.String("output", "render.ppm", "output image path (.ppm, .pam or .tga)")
	sceneName := fs.String("scene", "sphere-axis", "scenario name (see -list)")
	gamma := fs.Float64("gamma", 2.2, "gamma correction applied on save")
	workers := fs.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	list := fs.Bool("list", false, "list available scenario names and exit")

	if err := fs.Parse(args); err != nil {
		return exitInvalidArgument
	}

	if *list {
		names := scene.Names()
		sort.Strings(names)
		fmt.Fprintln(stdout, strings.Join(names, "\n"))
		return exitOK
	}

	if *width <= 0 || *height <= 0 {
		fmt.Fprintf(stderr, "render: width and height must be positive\n")
		return exitInvalidArgument
	}
	if *fov <= 0 || *fov >= 180 {
		fmt.Fprintf(stderr, "render: fov must be in (0, 180)\n")
		return exitInvalidArgument
	}

	scenario, err := scene.Build(*sceneName)
	if err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return exitInvalidArgument
	}
	scenario.Scene.MaxDepth = *depth

	cam := renderer.NewCamera(*width, *height, core.FromDegrees(core.Precision(*fov)))
	cam.MoveTo(scenario.CameraFrom, scenario.CameraAt)

	r := renderer.NewRenderer(scenario.Scene, cam)
	r.NumWorkers = *workers
	switch *samples {
	case "deterministic":
		r.Mode = renderer.SampleDeterministic
	case "jittered":
		r.Mode = renderer.SampleJittered
		r.Seed = time.Now().UnixNano()
	default:
		fmt.Fprintf(stderr, "render: unknown -samples mode %q\n", *samples)
		return exitInvalidArgument
	}

	writer, err := writerFor(*output)
	if err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return exitInvalidArgument
	}

	logger := core.NewStdLogger()
	start := time.Now()
	img := r.Render(nil)
	elapsed := time.Since(start)
	stats := renderer.NewRenderStats(*width, *height, 25, elapsed)
	logger.Printf("rendered %dx%d in %v (%d solver invocations)", stats.Width, stats.Height, stats.Elapsed, stats.SolverInvocations)

	if err := writeImage(img, *output, writer, core.Precision(*gamma)); err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return exitIOError
	}

	return exitOK
}

type imageWriter func(img *renderer.Image, w io.Writer, gamma core.Precision) error

// writerFor resolves the output path's extension to a writer before
// anything is rendered, so an unrecognized extension is reported as an
// invalid argument rather than surfacing later as a misleading I/O error.
func writerFor(path string) (imageWriter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return (*renderer.Image).WritePPM, nil
	case ".pam":
		return (*renderer.Image).WritePAM, nil
	case ".tga":
		return (*renderer.Image).WriteTGA, nil
	default:
		return nil, fmt.Errorf("unrecognized output extension %q (want .ppm, .pam or .tga)", path)
	}
}

func writeImage(img *renderer.Image, path string, write imageWriter, gamma core.Precision) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return write(img, f, gamma)
}
