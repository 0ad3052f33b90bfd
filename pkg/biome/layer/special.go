package layer

import (
	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/mcrng"
)

// Special is a 1:1 no-border layer that stashes a rare-variant hint in
// bits 8-11 of a nonzero cell with probability 1/13. Biome only checks
// whether the hint (1-15) is present, and if so produces the category's
// rare biome; the hint never changes the low byte a downstream non-Biome
// consumer still reads as the plain category id.
type Special struct {
	Parent    Layer
	BaseSeed  uint64
	WorldSeed uint64
}

func (s *Special) GetMap(area biome.Area) biome.Map {
	parent := s.Parent.GetMap(area)
	return s.GetMapFromParent(parent)
}

func (s *Special) GetMapFromParent(parent biome.Map) biome.Map {
	out := biome.NewMap(parent.Area)
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(s.BaseSeed)
	rng.SetWorldSeed(s.WorldSeed)
	for j := int64(0); j < parent.Area.H; j++ {
		wz := parent.Area.Z + j
		for i := int64(0); i < parent.Area.W; i++ {
			wx := parent.Area.X + i
			v := parent.At(i, j)
			if v != 0 {
				rng.SetChunkSeed(wx, wz)
				if rng.NextIntN(13) == 0 {
					v |= (1 + rng.NextIntN(15)) << 8 & 0xf00
				}
			}
			out.Set(i, j, v)
		}
	}
	return out
}
