package rng

import "math"

// Skewing factors for 2D simplex noise.
const (
	f2 = 0.36602540378443865 // (sqrt(3) - 1) / 2
	g2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// initNoise shuffles the permutation table from the engine stream. It
// consumes exactly 255 draws, always before any caller-visible draw.
func (e *Engine) initNoise() {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	Shuffle(e, p[:])
	for i := range e.perm {
		e.perm[i] = p[i&255]
	}
}

func fastFloor(x float64) int {
	i := int(x)
	if x < float64(i) {
		return i - 1
	}
	return i
}

// Noise2D returns smooth gradient noise at (x, y), approximately in [-1, 1].
// It is continuous in both coordinates and depends only on the seed.
func (e *Engine) Noise2D(x, y float64) float64 {
	s := (x + y) * f2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Which of the two triangles of the skewed cell contains the point.
	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := i & 255
	jj := j & 255
	gi0 := e.perm[ii+int(e.perm[jj])] & 7
	gi1 := e.perm[ii+i1+int(e.perm[jj+j1])] & 7
	gi2 := e.perm[ii+1+int(e.perm[jj+1])] & 7

	n := corner(gi0, x0, y0) + corner(gi1, x1, y1) + corner(gi2, x2, y2)
	return math.Max(-1, math.Min(1, 70*n))
}

func corner(gi uint8, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := grad2[gi]
	return t * t * (g[0]*x + g[1]*y)
}

// Fractal sums octaves of Noise2D (fractional Brownian motion) and
// normalizes the result back to approximately [-1, 1].
// octaves < 1 is treated as 1.
func (e *Engine) Fractal(x, y float64, octaves int, lacunarity, gain float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	var sum, norm float64
	amp, freq := 1.0, 1.0
	for range octaves {
		sum += amp * e.Noise2D(x*freq, y*freq)
		norm += amp
		amp *= gain
		freq *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
