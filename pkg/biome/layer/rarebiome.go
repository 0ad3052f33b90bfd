package layer

import (
	"github.com/dshills/mcseed/pkg/biomeinfo"
	"github.com/dshills/mcseed/pkg/mcrng"
)

// NewRareBiome builds the 3x3-margin layer (it only reads the center
// cell) that rarely (1/57) promotes plains to its rare Sunflower Plains
// variant.
func NewRareBiome(parent Layer, baseSeed, worldSeed uint64) *Stencil3x3 {
	return &Stencil3x3{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: rareBiomeRewrite}
}

func rareBiomeRewrite(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
	if rng.NextIntN(57) == 0 && nb.C == biomeinfo.Plains {
		return biomeinfo.RareVariant(biomeinfo.Plains)
	}
	return nb.C
}
