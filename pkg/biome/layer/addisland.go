package layer

import "github.com/dshills/mcseed/pkg/mcrng"

// NewAddIsland builds the layer that grows small islands one cell into
// ocean and erodes single-cell peninsulas, reading the four diagonal
// neighbours of each cell.
func NewAddIsland(parent Layer, baseSeed, worldSeed uint64) *Stencil3x3 {
	return &Stencil3x3{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: addIslandRewrite}
}

func addIslandRewrite(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
	v00, v20, v02, v22, v11 := nb.NW, nb.NE, nb.SW, nb.SE, nb.C

	switch {
	case v11 == 0 && (v00 != 0 || v20 != 0 || v02 != 0 || v22 != 0):
		v := int32(1)
		inc := int32(1)
		if v00 != 0 {
			if rng.NextIntN(inc) == 0 {
				v = v00
			}
			inc++
		}
		if v20 != 0 {
			if rng.NextIntN(inc) == 0 {
				v = v20
			}
			inc++
		}
		if v02 != 0 {
			if rng.NextIntN(inc) == 0 {
				v = v02
			}
			inc++
		}
		if v22 != 0 {
			if rng.NextIntN(inc) == 0 {
				v = v22
			}
		}
		if rng.NextIntN(3) == 0 {
			return v
		}
		if v == 4 {
			return 4
		}
		return 0
	case v11 > 0 && (v00 == 0 || v20 == 0 || v02 == 0 || v22 == 0):
		if rng.NextIntN(5) == 0 {
			if v11 == 4 {
				return 4
			}
			return 0
		}
		return v11
	default:
		return v11
	}
}
