package layer

import (
	"github.com/dshills/mcseed/pkg/biomeinfo"
	"github.com/dshills/mcseed/pkg/mcrng"
)

// NewBiomeEdge builds the 3x3 layer that softens a handful of biome
// boundaries: mesaPlateau(_F), megaTaiga, desert, and swampland cells
// get replaced by their edge/plains/jungleEdge biome when the
// orthogonal neighbourhood doesn't match closely enough. It draws no
// randomness.
func NewBiomeEdge(parent Layer, baseSeed, worldSeed uint64) *Stencil3x3 {
	return &Stencil3x3{Parent: parent, BaseSeed: baseSeed, WorldSeed: worldSeed, Rewrite: biomeEdgeRewrite}
}

// replaceEdge mirrors replace_edge: if v11 == baseID, every orthogonal
// neighbour must be equalOrPlateau to baseID or the cell becomes
// edgeID. It reports whether baseID matched at all (the caller chains
// several of these before falling back to its own switch).
func replaceEdge(v10, v21, v01, v12, v11, baseID, edgeID int32) (int32, bool) {
	if v11 != baseID {
		return 0, false
	}
	if biomeinfo.EqualOrPlateau(v10, baseID) && biomeinfo.EqualOrPlateau(v21, baseID) &&
		biomeinfo.EqualOrPlateau(v01, baseID) && biomeinfo.EqualOrPlateau(v12, baseID) {
		return v11, true
	}
	return edgeID, true
}

func biomeEdgeRewrite(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
	v10, v21, v01, v12, v11 := nb.N, nb.E, nb.W, nb.S, nb.C

	if v, ok := replaceEdge(v10, v21, v01, v12, v11, biomeinfo.MesaPlateauF, biomeinfo.Mesa); ok {
		return v
	}
	if v, ok := replaceEdge(v10, v21, v01, v12, v11, biomeinfo.MesaPlateau, biomeinfo.Mesa); ok {
		return v
	}
	if v, ok := replaceEdge(v10, v21, v01, v12, v11, biomeinfo.MegaTaiga, biomeinfo.Taiga); ok {
		return v
	}

	switch v11 {
	case biomeinfo.Desert:
		if v10 != biomeinfo.IcePlains && v21 != biomeinfo.IcePlains && v01 != biomeinfo.IcePlains && v12 != biomeinfo.IcePlains {
			return v11
		}
		return biomeinfo.ExtremeHillsPlus
	case biomeinfo.Swampland:
		if v10 != biomeinfo.Desert && v21 != biomeinfo.Desert && v01 != biomeinfo.Desert && v12 != biomeinfo.Desert &&
			v10 != biomeinfo.ColdTaiga && v21 != biomeinfo.ColdTaiga && v01 != biomeinfo.ColdTaiga && v12 != biomeinfo.ColdTaiga &&
			v10 != biomeinfo.IcePlains && v21 != biomeinfo.IcePlains && v01 != biomeinfo.IcePlains && v12 != biomeinfo.IcePlains {
			if v10 != biomeinfo.Jungle && v12 != biomeinfo.Jungle && v21 != biomeinfo.Jungle && v01 != biomeinfo.Jungle &&
				v10 != biomeinfo.BambooJungle && v12 != biomeinfo.BambooJungle && v21 != biomeinfo.BambooJungle && v01 != biomeinfo.BambooJungle {
				return v11
			}
			return biomeinfo.JungleEdge
		}
		return biomeinfo.Plains
	default:
		return v11
	}
}
