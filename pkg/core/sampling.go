package core

import (
	"math"
	"math/rand"
)

// SubpixelStencil returns the offsets (in pixel units relative to the pixel
// center, each coordinate within +/-0.5) at which a pixel is subsampled. The default is a fixed, deterministic
// 5x5 stencil - reproducible across runs and across the row-parallel
// workers, which matters for the renderer's determinism guarantee.
func SubpixelStencil() []Vec2 {
	const n = 5
	offsets := make([]Vec2, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			offsets = append(offsets, Vec2{
				X: (Precision(col)+0.5)/n - 0.5,
				Y: (Precision(row)+0.5)/n - 0.5,
			})
		}
	}
	return offsets
}

// JitteredStencil returns n random offsets within the pixel (relative to
// its center, each coordinate in [-0.5,0.5)), seeded
// deterministically from the pixel's own coordinates so that the uniform-
// random subsampling mode stays reproducible given the same (x, y, seed)
// even though it's not a fixed stencil.
func JitteredStencil(n int, x, y int, seed int64) []Vec2 {
	r := rand.New(rand.NewSource(seed ^ int64(x)<<32 ^ int64(y)))
	offsets := make([]Vec2, n)
	for i := range offsets {
		offsets[i] = Vec2{X: r.Float64() - 0.5, Y: r.Float64() - 0.5}
	}
	return offsets
}

// CosineHemisphere maps a pair of canonical [0,1) samples to a direction
// distributed proportionally to cosine-weighted solid angle about the +Z
// axis, via Malley's method (disk sampling projected onto the hemisphere).
func CosineHemisphere(u1, u2 Precision) Vec3 {
	r := math.Sqrt(u1)
	phi := Tau * u2
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	z := math.Sqrt(math.Max(0, 1-u1))
	return Vec3{X: x, Y: y, Z: z}
}
