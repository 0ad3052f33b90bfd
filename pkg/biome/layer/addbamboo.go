package layer

import (
	"github.com/dshills/mcseed/pkg/biomeinfo"
	"github.com/dshills/mcseed/pkg/mcrng"
)

// NewAddBamboo builds the 1:1 no-border layer that rarely (1/10) turns a
// jungle cell into a bambooJungle cell.
func NewAddBamboo(parent Layer, baseSeed, worldSeed uint64) *Identity1to1 {
	return &Identity1to1{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: addBambooRewrite}
}

func addBambooRewrite(v int32, x, z int64, rng *mcrng.McRng) int32 {
	if v == biomeinfo.Jungle && rng.NextIntN(10) == 0 {
		return biomeinfo.BambooJungle
	}
	return v
}
