package layer

import (
	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biomeinfo"
)

// RiverMix is a two-parent, no-margin layer: Biome carries the resolved
// biome map, River carries River's -1/river signal map over the same
// area. An oceanic biome cell passes through untouched; otherwise a
// river cell becomes frozenRiver over ice, mushroomIslandShore over a
// mushroom island (shore or not), or the river layer's own low byte
// everywhere else.
type RiverMix struct {
	Biome     Layer
	River     Layer
	BaseSeed  uint64
	WorldSeed uint64
}

func (r *RiverMix) GetMap(area biome.Area) biome.Map {
	pmap1 := r.Biome.GetMap(area)
	pmap2 := r.River.GetMap(area)
	return r.GetMapFromParents(pmap1, pmap2)
}

// GetMapFromParent panics: RiverMix has two parents, so it can only be
// computed through GetMap or GetMapFromParents.
func (r *RiverMix) GetMapFromParent(parent biome.Map) biome.Map {
	panic("layer: RiverMix has two parents; use GetMapFromParents")
}

// GetMapFromParents computes the mix directly. Both maps must share area.
func (r *RiverMix) GetMapFromParents(pmap1, pmap2 biome.Map) biome.Map {
	out := biome.NewMap(pmap1.Area)
	pw, ph := pmap1.Area.W, pmap1.Area.H
	for x := int64(0); x < pw; x++ {
		for z := int64(0); z < ph; z++ {
			buf := pmap1.At(x, z)
			riverOut := pmap2.At(x, z)

			var v int32
			switch {
			case biomeinfo.IsOceanic(buf):
				v = buf
			case riverOut == biomeinfo.River:
				switch {
				case buf == biomeinfo.IcePlains:
					v = biomeinfo.FrozenRiver
				case buf == biomeinfo.MushroomIsland || buf == biomeinfo.MushroomIslandShore:
					v = biomeinfo.MushroomIslandShore
				default:
					v = riverOut & 0xFF
				}
			default:
				v = buf
			}
			out.Set(x, z, v)
		}
	}
	return out
}
