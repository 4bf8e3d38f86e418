package material

import (
	"math"
	"math/rand"

	"github.com/gorender/raytrace/pkg/core"
)

// Perlin implements Ken Perlin's improved noise: a permutation table of
// 256 entries (duplicated to 512 to avoid wraparound index math), the
// quintic fade curve 6t^5-15t^4+10t^3, and the canonical 12-direction
// gradient set.
type Perlin struct {
	perm [512]int
}

var gradients = [12][3]core.Precision{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// NewPerlin builds a permutation table seeded deterministically from seed,
// so that two Perlin textures built with the same seed produce identical
// noise fields.
func NewPerlin(seed int64) *Perlin {
	p := &Perlin{}
	var base [256]int
	for i := range base {
		base[i] = i
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(256, func(i, j int) { base[i], base[j] = base[j], base[i] })
	for i := 0; i < 512; i++ {
		p.perm[i] = base[i%256]
	}
	return p
}

func fade(t core.Precision) core.Precision {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b core.Precision) core.Precision { return a + t*(b-a) }

func grad(hash int, x, y, z core.Precision) core.Precision {
	g := gradients[hash%12]
	return g[0]*x + g[1]*y + g[2]*z
}

// Noise3 samples the noise field at (x,y,z), returning a value in roughly
// [-1,1].
func (p *Perlin) Noise3(x, y, z core.Precision) core.Precision {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)
	zf := z - math.Floor(z)

	u, v, w := fade(xf), fade(yf), fade(zf)

	a := p.perm[xi] + yi
	aa := p.perm[a] + zi
	ab := p.perm[a+1] + zi
	b := p.perm[xi+1] + yi
	ba := p.perm[b] + zi
	bb := p.perm[b+1] + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(p.perm[aa], xf, yf, zf), grad(p.perm[ba], xf-1, yf, zf)),
			lerp(u, grad(p.perm[ab], xf, yf-1, zf), grad(p.perm[bb], xf-1, yf-1, zf))),
		lerp(v,
			lerp(u, grad(p.perm[aa+1], xf, yf, zf-1), grad(p.perm[ba+1], xf-1, yf, zf-1)),
			lerp(u, grad(p.perm[ab+1], xf, yf-1, zf-1), grad(p.perm[bb+1], xf-1, yf-1, zf-1))))
}

// Turbulence sums |Noise3| across octaves doublings of frequency, the
// standard way to build marble-style veining from a single noise field.
func (p *Perlin) Turbulence(x, y, z core.Precision, octaves int) core.Precision {
	var sum, freq, amp core.Precision = 0, 1, 1
	for i := 0; i < octaves; i++ {
		sum += amp * math.Abs(p.Noise3(x*freq, y*freq, z*freq))
		freq *= 2
		amp *= 0.5
	}
	return sum
}
