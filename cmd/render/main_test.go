package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunInvalidDimensions(t *testing.T) {
	code := run([]string{"-width=0"}, os.Stdout, os.Stderr)
	if code != exitInvalidArgument {
		t.Fatalf("expected exitInvalidArgument, got %d", code)
	}
}

func TestRunUnknownScenario(t *testing.T) {
	code := run([]string{"-scene=does-not-exist"}, os.Stdout, os.Stderr)
	if code != exitInvalidArgument {
		t.Fatalf("expected exitInvalidArgument, got %d", code)
	}
}

func TestRunUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "render.bmp")
	code := run([]string{"-width=4", "-height=4", "-output=" + out}, os.Stdout, os.Stderr)
	if code != exitInvalidArgument {
		t.Fatalf("expected exitInvalidArgument for unrecognized extension, got %d", code)
	}
	if _, err := os.Stat(out); err == nil {
		t.Fatalf("expected no file to be created for an unrecognized extension")
	}
}

func TestRunProducesPPM(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "render.ppm")
	code := run([]string{"-width=4", "-height=4", "-scene=sphere-axis", "-output=" + out}, os.Stdout, os.Stderr)
	if code != exitOK {
		t.Fatalf("expected exitOK, got %d", code)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty PPM file")
	}
}

func TestRunListsScenarios(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	code := run([]string{"-list"}, w, os.Stderr)
	w.Close()
	if code != exitOK {
		t.Fatalf("expected exitOK, got %d", code)
	}
	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	if n == 0 {
		t.Fatalf("expected scenario names on stdout")
	}
}
