package layer

import (
	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/mcrng"
)

// Island is the root source layer: no parent. Every cell is land (1)
// with probability 1/10, ocean (0) otherwise, except (0, 0) which is
// always forced to land so a world always has solid ground at spawn.
type Island struct {
	BaseSeed  uint64
	WorldSeed uint64
}

func (s *Island) GetMap(area biome.Area) biome.Map {
	out := biome.NewMap(area)
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(s.BaseSeed)
	rng.SetWorldSeed(s.WorldSeed)
	for j := int64(0); j < area.H; j++ {
		wz := area.Z + j
		for i := int64(0); i < area.W; i++ {
			wx := area.X + i
			rng.SetChunkSeed(wx, wz)
			v := int32(0)
			if rng.NextIntN(10) == 0 {
				v = 1
			}
			out.Set(i, j, v)
		}
	}
	if area.Contains(0, 0) {
		out.Set(-area.X, -area.Z, 1)
	}
	return out
}

// GetMapFromParent ignores the parent's data — Island is a source — and
// produces output covering exactly the parent's area.
func (s *Island) GetMapFromParent(parent biome.Map) biome.Map {
	return s.GetMap(parent.Area)
}
