package layer

import "github.com/dshills/mcseed/pkg/mcrng"

// NewCoolWarm builds the layer that downgrades a Warm cell adjacent to a
// Cold or Freezing cell to Lush. It draws no randomness.
func NewCoolWarm(parent Layer, baseSeed, worldSeed uint64) *Stencil3x3 {
	return &Stencil3x3{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: coolWarmRewrite}
}

func coolWarmRewrite(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
	if nb.C != catWarm {
		return nb.C
	}
	isColdOrFreezing := func(v int32) bool { return v == catCold || v == catFreezing }
	if isColdOrFreezing(nb.N) || isColdOrFreezing(nb.E) || isColdOrFreezing(nb.W) || isColdOrFreezing(nb.S) {
		return catLush
	}
	return nb.C
}
