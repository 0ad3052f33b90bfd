package layer

import (
	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biomeinfo"
	"github.com/dshills/mcseed/pkg/mcrng"
)

var warmBiomes = [6]int32{biomeinfo.Desert, biomeinfo.Desert, biomeinfo.Desert, biomeinfo.Savanna, biomeinfo.Savanna, biomeinfo.Plains}
var lushBiomes = [6]int32{biomeinfo.Forest, biomeinfo.RoofedForest, biomeinfo.ExtremeHills, biomeinfo.Plains, biomeinfo.BirchForest, biomeinfo.Swampland}
var coldBiomes = [4]int32{biomeinfo.Forest, biomeinfo.ExtremeHills, biomeinfo.Taiga, biomeinfo.Plains}
var snowBiomes = [4]int32{biomeinfo.IcePlains, biomeinfo.IcePlains, biomeinfo.IcePlains, biomeinfo.ColdTaiga}

// Biome resolves the four climate categories (Warm/Lush/Cold/Freezing)
// plus their Special-layer rare-variant hint into concrete biome ids. It
// is 1:1 with no border.
type Biome struct {
	Parent    Layer
	BaseSeed  uint64
	WorldSeed uint64
}

func (b *Biome) GetMap(area biome.Area) biome.Map {
	parent := b.Parent.GetMap(area)
	return b.GetMapFromParent(parent)
}

func (b *Biome) GetMapFromParent(parent biome.Map) biome.Map {
	out := biome.NewMap(parent.Area)
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(b.BaseSeed)
	rng.SetWorldSeed(b.WorldSeed)
	for j := int64(0); j < parent.Area.H; j++ {
		wz := parent.Area.Z + j
		for i := int64(0); i < parent.Area.W; i++ {
			wx := parent.Area.X + i
			id := parent.At(i, j)
			hasHighBit := ((id & 0xf00) >> 8) != 0
			id &^= 0xf00

			if info, ok := biomeinfo.Lookup(id); (ok && info.IsOcean) || id == biomeinfo.MushroomIsland {
				out.Set(i, j, id)
				continue
			}

			rng.SetChunkSeed(wx, wz)
			var v int32
			switch id {
			case catWarm:
				if hasHighBit {
					if rng.NextIntN(3) == 0 {
						v = biomeinfo.MesaPlateau
					} else {
						v = biomeinfo.MesaPlateauF
					}
				} else {
					v = warmBiomes[rng.NextIntN(6)]
				}
			case catLush:
				if hasHighBit {
					v = biomeinfo.Jungle
				} else {
					v = lushBiomes[rng.NextIntN(6)]
				}
			case catCold:
				if hasHighBit {
					v = biomeinfo.MegaTaiga
				} else {
					v = coldBiomes[rng.NextIntN(4)]
				}
			case catFreezing:
				v = snowBiomes[rng.NextIntN(4)]
			default:
				v = biomeinfo.MushroomIsland
			}
			out.Set(i, j, v)
		}
	}
	return out
}
