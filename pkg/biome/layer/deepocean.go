package layer

import "github.com/dshills/mcseed/pkg/mcrng"

// NewDeepOcean builds the layer that promotes an ocean cell to deepOcean
// when all four orthogonal neighbours are also ocean. It draws no
// randomness.
func NewDeepOcean(parent Layer, baseSeed, worldSeed uint64) *Stencil3x3 {
	return &Stencil3x3{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: deepOceanRewrite}
}

func deepOceanRewrite(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
	if nb.C == 0 && nb.N == 0 && nb.E == 0 && nb.W == 0 && nb.S == 0 {
		return 24 // deepOcean
	}
	return nb.C
}
