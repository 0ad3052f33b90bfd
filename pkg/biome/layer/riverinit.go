package layer

import "github.com/dshills/mcseed/pkg/mcrng"

// NewRiverInit builds the 1:1 no-border layer that seeds a wide-range
// value on every land cell, later reduced to a simple river/no-river
// signal by Hills and River. Land (v > 0) becomes a value in
// [2, 300000]; ocean (v == 0) stays 0.
func NewRiverInit(parent Layer, baseSeed, worldSeed uint64) *Identity1to1 {
	return &Identity1to1{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: riverInitRewrite}
}

func riverInitRewrite(v int32, x, z int64, rng *mcrng.McRng) int32 {
	if v > 0 {
		return rng.NextIntN(299999) + 2
	}
	return 0
}
