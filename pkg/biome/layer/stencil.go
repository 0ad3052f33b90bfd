package layer

import (
	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/mcrng"
)

// Neighborhood is the 3x3 window a stencil layer's rewrite function reads,
// centered on the cell being produced.
type Neighborhood struct {
	NW, N, NE int32
	W, C, E   int32
	SW, S, SE int32
}

// RewriteFunc computes one output cell from its 3x3 parent neighborhood.
// It is called with rng already chunk-seeded at (x, z); a rewrite that
// needs randomness draws from rng directly.
type RewriteFunc func(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32

// Stencil3x3 is the shared scaffolding every 3x3-stencil layer in §4.3
// builds on: AddIsland, RemoveTooMuchOcean, AddSnow, CoolWarm, HeatIce,
// AddMushroomIsland, DeepOcean, RareBiome, Smooth, River, Shore, and
// BiomeEdge all embed one, supplying only Rewrite.
type Stencil3x3 struct {
	Parent    Layer
	BaseSeed  uint64
	WorldSeed uint64
	Rewrite   RewriteFunc
}

// GetMap implements Layer.
func (s *Stencil3x3) GetMap(area biome.Area) biome.Map {
	return baseGetMap(FamilyStencil3x3, area, s.Parent.GetMap, s.GetMapFromParent)
}

// GetMapFromParent implements Layer. parent must cover requested enlarged
// by one cell of margin on every side.
func (s *Stencil3x3) GetMapFromParent(parent biome.Map) biome.Map {
	outArea := biome.Area{X: parent.Area.X + 1, Z: parent.Area.Z + 1, W: parent.Area.W - 2, H: parent.Area.H - 2}
	out := biome.NewMap(outArea)
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(s.BaseSeed)
	rng.SetWorldSeed(s.WorldSeed)
	for j := int64(0); j < outArea.H; j++ {
		pz := j + 1
		wz := outArea.Z + j
		for i := int64(0); i < outArea.W; i++ {
			pi := i + 1
			wx := outArea.X + i
			nb := Neighborhood{
				NW: parent.At(pi-1, pz-1), N: parent.At(pi, pz-1), NE: parent.At(pi+1, pz-1),
				W: parent.At(pi-1, pz), C: parent.At(pi, pz), E: parent.At(pi+1, pz),
				SW: parent.At(pi-1, pz+1), S: parent.At(pi, pz+1), SE: parent.At(pi+1, pz+1),
			}
			rng.SetChunkSeed(wx, wz)
			out.Set(i, j, s.Rewrite(nb, wx, wz, rng))
		}
	}
	return out
}

// Identity1to1 is the shared scaffolding for 1:1 no-border layers whose
// output at (x, z) depends only on the parent's own value there plus a
// chunk-seeded draw (e.g. RiverInit).
type Identity1to1 struct {
	Parent    Layer
	BaseSeed  uint64
	WorldSeed uint64
	Rewrite   func(v int32, x, z int64, rng *mcrng.McRng) int32
}

// GetMap implements Layer.
func (s *Identity1to1) GetMap(area biome.Area) biome.Map {
	return baseGetMap(FamilyIdentity, area, s.Parent.GetMap, s.GetMapFromParent)
}

// GetMapFromParent implements Layer.
func (s *Identity1to1) GetMapFromParent(parent biome.Map) biome.Map {
	out := biome.NewMap(parent.Area)
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(s.BaseSeed)
	rng.SetWorldSeed(s.WorldSeed)
	for j := int64(0); j < parent.Area.H; j++ {
		wz := parent.Area.Z + j
		for i := int64(0); i < parent.Area.W; i++ {
			wx := parent.Area.X + i
			rng.SetChunkSeed(wx, wz)
			out.Set(i, j, s.Rewrite(parent.At(i, j), wx, wz, rng))
		}
	}
	return out
}
