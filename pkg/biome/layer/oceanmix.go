package layer

import (
	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biomeinfo"
)

// OceanMix is a two-parent layer: Land carries the biome map, Ocean
// carries the ocean-temperature map. It draws no randomness. For every
// cell whose land value is oceanic, it looks at a sparse 5x5 grid of
// land-parent cells (stride 4, centered on the cell) to demote a
// warmOcean/frozenOcean cell adjacent to non-oceanic land down to
// lukewarmOcean/coldOcean, then remaps the result to its deep-ocean
// variant when the land parent is deepOcean.
//
// Land is requested enlarged by 8 cells of margin on every side plus 1,
// asymmetric with Ocean's zero margin, to give the stride-4 scan room.
type OceanMix struct {
	Land      Layer
	Ocean     Layer
	BaseSeed  uint64
	WorldSeed uint64
}

func (o *OceanMix) GetMap(area biome.Area) biome.Map {
	landArea := biome.Area{X: area.X - 8, Z: area.Z - 8, W: area.W + 17, H: area.H + 17}
	pmap1 := o.Land.GetMap(landArea)
	pmap2 := o.Ocean.GetMap(area)
	return o.GetMapFromParents(pmap1, pmap2)
}

// GetMapFromParent panics: OceanMix has two parents, so it can only be
// computed through GetMap or GetMapFromParents.
func (o *OceanMix) GetMapFromParent(parent biome.Map) biome.Map {
	panic("layer: OceanMix has two parents; use GetMapFromParents")
}

// GetMapFromParents computes the mix directly. land must cover ocean's
// area enlarged by the asymmetric margin GetMap uses.
func (o *OceanMix) GetMapFromParents(land, ocean biome.Map) biome.Map {
	out := biome.NewMap(ocean.Area)
	pw, ph := ocean.Area.W, ocean.Area.H

	for x := int64(0); x < pw; x++ {
	cellLoop:
		for z := int64(0); z < ph; z++ {
			landID := land.At(x+8, z+8)
			oceanID := ocean.At(x, z)

			if !biomeinfo.IsOceanic(landID) {
				out.Set(x, z, landID)
				continue
			}

			if oceanID == biomeinfo.WarmOcean || oceanID == biomeinfo.FrozenOcean {
				for i := int64(0); i <= 4; i++ {
					for j := int64(0); j <= 4; j++ {
						nearbyID := land.At(x+i*4, z+j*4)
						if biomeinfo.IsOceanic(nearbyID) {
							continue
						}
						if oceanID == biomeinfo.WarmOcean {
							out.Set(x, z, biomeinfo.LukewarmOcean)
							continue cellLoop
						}
						if oceanID == biomeinfo.FrozenOcean {
							out.Set(x, z, biomeinfo.ColdOcean)
							continue cellLoop
						}
					}
				}
			}

			if landID == biomeinfo.DeepOcean {
				switch oceanID {
				case biomeinfo.LukewarmOcean:
					oceanID = biomeinfo.DeepLukewarmOcean
				case biomeinfo.Ocean:
					oceanID = biomeinfo.DeepOcean
				case biomeinfo.ColdOcean:
					oceanID = biomeinfo.DeepColdOcean
				case biomeinfo.FrozenOcean:
					oceanID = biomeinfo.DeepFrozenOcean
				}
				// warmOcean intentionally falls through unmapped here,
				// matching the reference match arms.
			}

			out.Set(x, z, oceanID)
		}
	}
	return out
}
