package layer

import "github.com/dshills/mcseed/pkg/mcrng"

// reduceID collapses a river-init value to one of four buckets so River
// can compare neighbours cheaply: values below 2 pass through (0 = no
// land, 1 = reserved), values 2 and up collapse to 2 or 3 by parity.
func reduceID(id int32) int32 {
	if id >= 2 {
		return 2 + (id & 1)
	}
	return id
}

// NewRiver builds the 3x3 layer that turns a river-init value map into
// a river/no-river signal: -1 (no river) when all five reduced values
// in the cross agree, biomeinfo.River (7) otherwise. It draws no
// randomness.
func NewRiver(parent Layer, baseSeed, worldSeed uint64) *Stencil3x3 {
	return &Stencil3x3{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: riverRewrite}
}

func riverRewrite(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
	v11 := reduceID(nb.C)
	v10 := reduceID(nb.N)
	v21 := reduceID(nb.E)
	v01 := reduceID(nb.W)
	v12 := reduceID(nb.S)
	if v11 == v01 && v11 == v10 && v11 == v21 && v11 == v12 {
		return -1
	}
	return 7 // river
}
