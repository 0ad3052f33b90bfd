package layer

import "github.com/dshills/mcseed/pkg/mcrng"

// NewAddMushroomIsland builds the layer that rarely (1/100) spawns a
// mushroom island on an ocean cell whose four diagonal neighbours and own
// center are all ocean.
func NewAddMushroomIsland(parent Layer, baseSeed, worldSeed uint64) *Stencil3x3 {
	return &Stencil3x3{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: addMushroomIslandRewrite}
}

func addMushroomIslandRewrite(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
	if nb.C == 0 && nb.NW == 0 && nb.NE == 0 && nb.SW == 0 && nb.SE == 0 {
		if rng.NextIntN(100) == 0 {
			return 14 // mushroomIsland
		}
	}
	return nb.C
}
