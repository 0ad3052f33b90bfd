package layer

import (
	"github.com/dshills/mcseed/pkg/biomeinfo"
	"github.com/dshills/mcseed/pkg/mcrng"
)

// NewShore builds the 3x3 layer that grows beaches, cold beaches, stone
// beaches, and mushroom island shores at the boundary between land and
// ocean, plus turning a jungle cell into jungleEdge when one of its
// orthogonal neighbours is not JFTO.
// It draws no randomness.
func NewShore(parent Layer, baseSeed, worldSeed uint64) *Stencil3x3 {
	return &Stencil3x3{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: shoreRewrite}
}

// replaceOcean mirrors replace_ocean: id itself must not be oceanic, and
// the four orthogonal neighbours decide whether id survives unchanged
// or is pulled to replaceID.
func replaceOcean(v10, v21, v01, v12, id, replaceID int32) int32 {
	if biomeinfo.IsOceanic(id) {
		return id
	}
	if !biomeinfo.IsOceanic(v10) && !biomeinfo.IsOceanic(v21) && !biomeinfo.IsOceanic(v01) && !biomeinfo.IsOceanic(v12) {
		return id
	}
	return replaceID
}

func shoreRewrite(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
	v10, v21, v01, v12, v11 := nb.N, nb.E, nb.W, nb.S, nb.C

	b := v11
	if !biomeinfo.Exists(v11) {
		b = 0
	}
	bInfo, _ := biomeinfo.Lookup(b)

	switch {
	case v11 == biomeinfo.MushroomIsland:
		if v10 != biomeinfo.Ocean && v21 != biomeinfo.Ocean && v01 != biomeinfo.Ocean && v12 != biomeinfo.Ocean {
			return v11
		}
		return biomeinfo.MushroomIslandShore

	case bInfo.Category == biomeinfo.CatJungle:
		if biomeinfo.IsBiomeJFTO(v10) && biomeinfo.IsBiomeJFTO(v21) && biomeinfo.IsBiomeJFTO(v01) && biomeinfo.IsBiomeJFTO(v12) {
			if !biomeinfo.IsOceanic(v10) && !biomeinfo.IsOceanic(v21) && !biomeinfo.IsOceanic(v01) && !biomeinfo.IsOceanic(v12) {
				return v11
			}
			return biomeinfo.Beach
		}
		return biomeinfo.JungleEdge

	case v11 != biomeinfo.ExtremeHills && v11 != biomeinfo.ExtremeHillsPlus && v11 != biomeinfo.ExtremeHillsEdge:
		switch {
		case biomeinfo.IsBiomeSnowy(b):
			return replaceOcean(v10, v21, v01, v12, v11, biomeinfo.ColdBeach)
		case v11 != biomeinfo.Mesa && v11 != biomeinfo.MesaPlateauF:
			if v11 != biomeinfo.Ocean && v11 != biomeinfo.DeepOcean && v11 != biomeinfo.River && v11 != biomeinfo.Swampland {
				if !biomeinfo.IsOceanic(v10) && !biomeinfo.IsOceanic(v21) && !biomeinfo.IsOceanic(v01) && !biomeinfo.IsOceanic(v12) {
					return v11
				}
				return biomeinfo.Beach
			}
			return v11
		default:
			if !biomeinfo.IsOceanic(v10) && !biomeinfo.IsOceanic(v21) && !biomeinfo.IsOceanic(v01) && !biomeinfo.IsOceanic(v12) {
				cat := func(id int32) biomeinfo.Category {
					info, _ := biomeinfo.Lookup(id)
					return info.Category
				}
				if cat(v10) == biomeinfo.CatMesa && cat(v21) == biomeinfo.CatMesa && cat(v01) == biomeinfo.CatMesa && cat(v12) == biomeinfo.CatMesa {
					return v11
				}
				return biomeinfo.Desert
			}
			return v11
		}

	default:
		return replaceOcean(v10, v21, v01, v12, v11, biomeinfo.StoneBeach)
	}
}
