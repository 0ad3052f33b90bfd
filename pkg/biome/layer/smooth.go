package layer

import "github.com/dshills/mcseed/pkg/mcrng"

// NewSmooth builds the 3x3 layer that erases single-cell checkerboard
// noise: when the west/east neighbours match each other and the
// north/south neighbours match each other, the center is redrawn from
// one pair (randomly, if both pairs differ from each other); otherwise
// a matching pair alone is enough to pull the center to it.
func NewSmooth(parent Layer, baseSeed, worldSeed uint64) *Stencil3x3 {
	return &Stencil3x3{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: smoothRewrite}
}

func smoothRewrite(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
	v11 := nb.C
	if nb.W == nb.E && nb.N == nb.S {
		if rng.NextIntN(2) == 0 {
			v11 = nb.W
		} else {
			v11 = nb.N
		}
		return v11
	}
	if nb.W == nb.E {
		v11 = nb.W
	}
	if nb.N == nb.S {
		v11 = nb.N
	}
	return v11
}
