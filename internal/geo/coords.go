// Spatial layout — smooth simplex-noise offsets for city coordinates and
// per-individual position jitter around a settlement.
package geo

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Distance returns the euclidean distance between two coordinates.
func Distance(a, b Coord) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// cityScatter is the maximum city offset from its planet (light-years are
// far too coarse for surface positions; the scale is only used for the
// distance buckets in interaction scoring).
const cityScatter = 0.5

// layoutCities derives city coordinates from planet coordinates plus a
// smooth noise offset, so neighboring city indexes land near each other.
func layoutCities(systems []*System, seed int64) {
	noise := opensimplex.NewNormalized(seed)
	for si, sys := range systems {
		for pi, p := range sys.Planets {
			for ci, c := range p.Cities {
				fx := noise.Eval3(float64(si), float64(pi), float64(ci))
				fy := noise.Eval3(float64(pi), float64(ci), float64(si)+100)
				fz := noise.Eval3(float64(ci), float64(si), float64(pi)+200)
				c.Coordinates = Coord{
					X: p.Coordinates.X + (fx-0.5)*2*cityScatter,
					Y: p.Coordinates.Y + (fy-0.5)*2*cityScatter,
					Z: p.Coordinates.Z + (fz-0.5)*2*cityScatter,
				}
			}
		}
	}
}

// NoiseField produces smooth positional jitter for generated individuals.
type NoiseField struct {
	noise opensimplex.Noise
}

// NewNoiseField creates a jitter field from a seed.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{noise: opensimplex.NewNormalized(seed)}
}

// Jitter returns a position near base for the n-th individual placed there.
// Successive n values walk the noise field, clustering neighbors.
func (f *NoiseField) Jitter(base Coord, n int) Coord {
	t := float64(n) * 0.13
	dx := (f.noise.Eval3(t, base.X, base.Y) - 0.5) * 2
	dy := (f.noise.Eval3(base.Y, t, base.Z) - 0.5) * 2
	dz := (f.noise.Eval3(base.Z, base.X, t) - 0.5) * 2
	return Coord{X: base.X + dx, Y: base.Y + dy, Z: base.Z + dz}
}
