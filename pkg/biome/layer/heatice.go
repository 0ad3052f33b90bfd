package layer

import "github.com/dshills/mcseed/pkg/mcrng"

// NewHeatIce builds the layer that downgrades a Freezing cell adjacent to
// a Warm or Lush cell to Cold. It draws no randomness.
func NewHeatIce(parent Layer, baseSeed, worldSeed uint64) *Stencil3x3 {
	return &Stencil3x3{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: heatIceRewrite}
}

func heatIceRewrite(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
	if nb.C != catFreezing {
		return nb.C
	}
	isWarmOrLush := func(v int32) bool { return v == catWarm || v == catLush }
	if isWarmOrLush(nb.N) || isWarmOrLush(nb.E) || isWarmOrLush(nb.W) || isWarmOrLush(nb.S) {
		return catCold
	}
	return nb.C
}
