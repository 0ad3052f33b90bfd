package layer

import "github.com/dshills/mcseed/pkg/mcrng"

// NewAddSnow builds the layer that turns land into one of the three
// climate categories (freezing/cold/warm) and leaves ocean (0) alone.
func NewAddSnow(parent Layer, baseSeed, worldSeed uint64) *Stencil3x3 {
	return &Stencil3x3{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: addSnowRewrite}
}

func addSnowRewrite(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
	if nb.C == 0 {
		return 0
	}
	switch r := rng.NextIntN(6); {
	case r == 0:
		return catFreezing
	case r <= 1:
		return catCold
	default:
		return catWarm
	}
}
