package layer

import (
	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/mcrng"
)

// Zoom doubles resolution. For every parent 2x2 block (a at (x,z), a1 at
// (x+1,z), b at (x,z+1), b1 at (x+1,z+1)) it produces a 2x2 output block:
// top-left copies a unchanged, bottom-left is choose2(a, b), top-right is
// choose2(a, a1), and bottom-right is choose4(a, a1, b, b1) in Fuzzy mode
// (used once, directly above Island) or SelectModeOrRandom otherwise.
//
// WorldSeedNotSet reproduces a defect present in one historical caller:
// when true, SetWorldSeed is never called, so the fresh McRng built for
// each GetMapFromParent call keeps WorldSeed at its zero value instead
// of the configured world seed.
type Zoom struct {
	Parent          Layer
	BaseSeed        uint64
	WorldSeed       uint64
	Fuzzy           bool
	WorldSeedNotSet bool
}

func (z *Zoom) GetMap(area biome.Area) biome.Map {
	return baseGetMap(FamilyZoom2x, area, z.Parent.GetMap, z.GetMapFromParent)
}

func (z *Zoom) GetMapFromParent(parent biome.Map) biome.Map {
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(z.BaseSeed)
	if !z.WorldSeedNotSet {
		rng.SetWorldSeed(z.WorldSeed)
	}

	pw, ph := parent.Area.W, parent.Area.H
	outArea := biome.Area{
		X: parent.Area.X << 1,
		Z: parent.Area.Z << 1,
		W: (pw - 1) << 1,
		H: (ph - 1) << 1,
	}
	out := biome.NewMap(outArea)

	for x := int64(0); x < pw-1; x++ {
		a := parent.At(x, 0)
		a1 := parent.At(x+1, 0)
		for zi := int64(0); zi < ph-1; zi++ {
			b := parent.At(x, zi+1)
			b1 := parent.At(x+1, zi+1)

			col, row := x<<1, zi<<1
			if a == a1 && a == b && a == b1 {
				out.Set(col, row, a)
				out.Set(col, row+1, a)
				out.Set(col+1, row, a)
				out.Set(col+1, row+1, a)
				a = b
				a1 = b1
				continue
			}

			rng.SetChunkSeed((x+parent.Area.X)<<1, (zi+parent.Area.Z)<<1)
			aOrB := rng.Choose2(a, b)
			out.Set(col, row, a)
			out.Set(col, row+1, aOrB)

			aOrA1 := rng.Choose2(a, a1)
			out.Set(col+1, row, aOrA1)

			if z.Fuzzy {
				out.Set(col+1, row+1, rng.Choose4(a, a1, b, b1))
			} else {
				out.Set(col+1, row+1, rng.SelectModeOrRandom(a, a1, b, b1))
			}

			a = b
			a1 = b1
		}
	}
	return out
}
