package layer

import (
	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biomeinfo"
	"github.com/dshills/mcseed/pkg/mcrng"
)

// Hills is a two-parent layer: Biome carries the resolved biome map,
// River carries the river-init value map (both requested with a 1-cell
// margin). For most cells it either leaves the biome alone or promotes
// it to its "hills" counterpart, occasionally further promoting that to
// a rare (+128) variant when the river-init value lands on the rare
// stripe (river-2)%29==0, and separately (independently of any hill
// promotion) upgrades a river-bearing cell whose stripe is (river-2)
// %29==1 straight to its rare variant when under 128.
type Hills struct {
	Biome     Layer
	River     Layer
	BaseSeed  uint64
	WorldSeed uint64
}

var hillBiomes = map[int32]int32{
	biomeinfo.Desert:           biomeinfo.DesertHills,
	biomeinfo.Forest:           biomeinfo.ForestHills,
	biomeinfo.BirchForest:      biomeinfo.BirchForestHills,
	biomeinfo.RoofedForest:     biomeinfo.Plains,
	biomeinfo.Taiga:            biomeinfo.TaigaHills,
	biomeinfo.MegaTaiga:        biomeinfo.MegaTaigaHills,
	biomeinfo.ColdTaiga:        biomeinfo.ColdTaigaHills,
	biomeinfo.IcePlains:        biomeinfo.IceMountains,
	biomeinfo.Jungle:           biomeinfo.JungleHills,
	biomeinfo.BambooJungle:     biomeinfo.BambooJungleHills,
	biomeinfo.Ocean:            biomeinfo.DeepOcean,
	biomeinfo.ExtremeHills:     biomeinfo.ExtremeHillsPlus,
	biomeinfo.Savanna:          biomeinfo.SavannaPlateau,
}

func (h *Hills) GetMap(area biome.Area) biome.Map {
	parea := biome.Area{X: area.X - 1, Z: area.Z - 1, W: area.W + 2, H: area.H + 2}
	pmap1 := h.Biome.GetMap(parea)
	pmap2 := h.River.GetMap(parea)
	return h.GetMapFromParents(pmap1, pmap2)
}

// GetMapFromParent panics: Hills has two parents, so it can only be
// computed through GetMap or GetMapFromParents.
func (h *Hills) GetMapFromParent(parent biome.Map) biome.Map {
	panic("layer: Hills has two parents; use GetMapFromParents")
}

// GetMapFromParents computes the mix directly. Both maps must share the
// same area, enlarged by 1 cell of margin around the output.
func (h *Hills) GetMapFromParents(pmap1, pmap2 biome.Map) biome.Map {
	outArea := biome.Area{X: pmap1.Area.X + 1, Z: pmap1.Area.Z + 1, W: pmap1.Area.W - 2, H: pmap1.Area.H - 2}
	out := biome.NewMap(outArea)
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(h.BaseSeed)
	rng.SetWorldSeed(h.WorldSeed)

	for x := int64(0); x < outArea.W; x++ {
		for z := int64(0); z < outArea.H; z++ {
			chunkX, chunkZ := x+outArea.X, z+outArea.Z
			rng.SetChunkSeed(chunkX, chunkZ)

			a11 := pmap1.At(x+1, z+1)
			b11 := pmap2.At(x+1, z+1)
			rareStripe := (b11-2)%29 == 0

			var result int32
			switch {
			case a11 != 0 && b11 >= 2 && (b11-2)%29 == 1 && a11 < biomeinfo.RareVariantOffset:
				rare := a11 + biomeinfo.RareVariantOffset
				if biomeinfo.Exists(rare) {
					result = rare
				} else {
					result = a11
				}
			case rng.NextIntN(3) != 0 && !rareStripe:
				result = a11
			default:
				hillID, ok := hillBiomes[a11]
				if !ok {
					switch {
					case a11 == biomeinfo.Plains:
						if rng.NextIntN(3) == 0 {
							hillID = biomeinfo.ForestHills
						} else {
							hillID = biomeinfo.Forest
						}
					case biomeinfo.EqualOrPlateau(a11, biomeinfo.MesaPlateauF):
						hillID = biomeinfo.Mesa
					case isDeepOcean(a11) && rng.NextIntN(3) == 0:
						if rng.NextIntN(2) == 0 {
							hillID = biomeinfo.Plains
						} else {
							hillID = biomeinfo.Forest
						}
					default:
						hillID = a11
					}
				}

				if rareStripe && hillID != a11 {
					rare := hillID + biomeinfo.RareVariantOffset
					if biomeinfo.Exists(rare) {
						hillID = rare
					} else {
						hillID = a11
					}
				}

				if hillID == a11 {
					result = a11
				} else {
					a10 := pmap1.At(x+1, z+0)
					a21 := pmap1.At(x+2, z+1)
					a01 := pmap1.At(x+0, z+1)
					a12 := pmap1.At(x+1, z+2)
					equals := 0
					if biomeinfo.EqualOrPlateau(a10, a11) {
						equals++
					}
					if biomeinfo.EqualOrPlateau(a21, a11) {
						equals++
					}
					if biomeinfo.EqualOrPlateau(a01, a11) {
						equals++
					}
					if biomeinfo.EqualOrPlateau(a12, a11) {
						equals++
					}
					if equals >= 3 {
						result = hillID
					} else {
						result = a11
					}
				}
			}
			out.Set(x, z, result)
		}
	}
	return out
}

func isDeepOcean(id int32) bool {
	info, ok := biomeinfo.Lookup(id)
	return ok && info.IsDeepOcean
}
