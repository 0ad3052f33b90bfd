package layer

import "github.com/dshills/mcseed/pkg/mcrng"

// NewRemoveTooMuchOcean builds the layer that occasionally fills in a
// single ocean cell whose four orthogonal neighbours are all ocean too.
func NewRemoveTooMuchOcean(parent Layer, baseSeed, worldSeed uint64) *Stencil3x3 {
	return &Stencil3x3{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: removeTooMuchOceanRewrite}
}

func removeTooMuchOceanRewrite(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
	if nb.C == 0 && nb.N == 0 && nb.E == 0 && nb.W == 0 && nb.S == 0 {
		if rng.NextIntN(2) == 0 {
			return 1
		}
	}
	return nb.C
}
