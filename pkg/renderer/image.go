package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/chewxy/math32"
	"github.com/gorender/raytrace/pkg/core"
)

// pixel32 is one accumulator slot of the render target, kept in float32
// rather than core.Precision's float64: a render target is a write-many,
// read-once buffer bounded by 8-bit output, and accumulating thousands of
// per-pixel subsamples in float32 halves the buffer's footprint without
// costing the final image any visible precision.
type pixel32 struct {
	R, G, B float32
}

func toPixel32(c core.Vec3) pixel32 {
	return pixel32{R: float32(c.X), G: float32(c.Y), B: float32(c.Z)}
}

func (p pixel32) toVec3() core.Vec3 {
	return core.NewVec3(core.Precision(p.R), core.Precision(p.G), core.Precision(p.B))
}

// Image is the renderer's H x W raster. Pixels are stored in linear color
// space; gamma correction is applied only on save, per spec.md's "state is
// carried by the color" model.
type Image struct {
	Width, Height int
	pixels        []pixel32
	// Mask gates adaptive antialiasing: a zero entry means the pixel is
	// skipped entirely. Nil means every pixel is rendered.
	Mask []uint8
}

// NewImage allocates a black Width x Height image.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, pixels: make([]pixel32, width*height)}
}

func (img *Image) index(x, y int) int {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		panic(fmt.Sprintf("image: pixel (%d,%d) outside %dx%d", x, y, img.Width, img.Height))
	}
	return y*img.Width + x
}

// Set writes a pixel. Out-of-bounds access is a programmer error and panics
// rather than silently clamping, per spec.md §4.12.
func (img *Image) Set(x, y int, c core.Vec3) {
	img.pixels[img.index(x, y)] = toPixel32(c)
}

// At reads a pixel.
func (img *Image) At(x, y int) core.Vec3 {
	return img.pixels[img.index(x, y)].toVec3()
}

// Skip reports whether the mask gates this pixel out of rendering.
func (img *Image) Skip(x, y int) bool {
	if img.Mask == nil {
		return false
	}
	return img.Mask[img.index(x, y)] == 0
}

// Blend averages a set of linear-space subsample colors, accumulating in
// the render target's native float32 precision, and writes the result to
// (x,y).
func (img *Image) Blend(x, y int, samples []core.Vec3) {
	if len(samples) == 0 {
		return
	}
	var sum pixel32
	for _, s := range samples {
		p := toPixel32(s)
		sum.R += p.R
		sum.G += p.G
		sum.B += p.B
	}
	inv := 1.0 / float32(len(samples))
	img.pixels[img.index(x, y)] = pixel32{R: sum.R * inv, G: sum.G * inv, B: sum.B * inv}
}

// clamp32 restricts a float32 channel to [0,1] using math32's native
// float32 comparisons, keeping the render target's accumulation path off
// the float64 core.Clamp the geometric kernel uses.
func clamp32(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

// gammaCorrected rasterizes the clamped float32 buffer into a Go image.Image so
// adjust.Gamma can operate on it, then hands back the gamma-corrected bytes.
func (img *Image) gammaCorrected(gamma core.Precision) *image.RGBA {
	raw := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.pixels[img.index(x, y)]
			raw.SetRGBA(x, y, color.RGBA{
				R: uint8(clamp32(p.R)*255 + 0.5),
				G: uint8(clamp32(p.G)*255 + 0.5),
				B: uint8(clamp32(p.B)*255 + 0.5),
				A: 255,
			})
		}
	}
	if gamma == 1.0 {
		return raw
	}
	return adjust.Gamma(raw, float64(gamma))
}

// WritePPM writes a binary P6 (color) PPM image, gamma-corrected by gamma
// (pass 1.0 for no correction).
func (img *Image) WritePPM(w io.Writer, gamma core.Precision) error {
	buf := bufio.NewWriter(w)
	rgba := img.gammaCorrected(gamma)

	if _, err := fmt.Fprintf(buf, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := rgba.RGBAAt(x, y)
			if _, err := buf.Write([]byte{c.R, c.G, c.B}); err != nil {
				return err
			}
		}
	}
	return buf.Flush()
}

// WritePAM writes a 4-channel PAM (P7) image with an explicit alpha
// channel, gamma-corrected by gamma.
func (img *Image) WritePAM(w io.Writer, gamma core.Precision) error {
	buf := bufio.NewWriter(w)
	rgba := img.gammaCorrected(gamma)

	header := fmt.Sprintf("P7\nWIDTH %d\nHEIGHT %d\nDEPTH 4\nMAXVAL 255\nTUPLTYPE RGB_ALPHA\nENDHDR\n", img.Width, img.Height)
	if _, err := buf.WriteString(header); err != nil {
		return err
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := rgba.RGBAAt(x, y)
			if _, err := buf.Write([]byte{c.R, c.G, c.B, c.A}); err != nil {
				return err
			}
		}
	}
	return buf.Flush()
}

// WriteTGA writes a 24-bit uncompressed, top-down TGA image (type 2, BGR
// pixel order), gamma-corrected by gamma.
func (img *Image) WriteTGA(w io.Writer, gamma core.Precision) error {
	buf := bufio.NewWriter(w)
	rgba := img.gammaCorrected(gamma)

	header := make([]byte, 18)
	header[2] = 2 // uncompressed true-color
	header[12] = byte(img.Width & 0xFF)
	header[13] = byte((img.Width >> 8) & 0xFF)
	header[14] = byte(img.Height & 0xFF)
	header[15] = byte((img.Height >> 8) & 0xFF)
	header[16] = 24   // bits per pixel
	header[17] = 0x20 // top-down origin
	if _, err := buf.Write(header); err != nil {
		return err
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := rgba.RGBAAt(x, y)
			if _, err := buf.Write([]byte{c.B, c.G, c.R}); err != nil {
				return err
			}
		}
	}
	return buf.Flush()
}
