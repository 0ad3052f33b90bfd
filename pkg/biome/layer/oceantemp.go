package layer

import (
	"math"

	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biomeinfo"
	"github.com/dshills/mcseed/pkg/javarng"
)

// OceanTemp is a source layer: it classifies every cell into one of the
// five ocean temperature bands straight from 2D noise, ignoring every
// earlier layer.
//
// The reference generator drives this from Minecraft's octaved 3D
// Perlin noise (NoiseGeneratorPerlin), built from 256 permutation
// tables seeded off the world seed. That lattice-gradient generator is
// not reproduced here: porting its exact permutation shuffle and
// gradient-dot-product kernel faithfully is a project of its own.
// lattice implements single-octave value noise instead: a
// javarng-seeded permutation table assigns each integer lattice point a
// pseudo-random corner value, and noise interpolates those corners with
// a smoothstep fade. The five band cutoffs below are unchanged from the
// reference, but the band each cell falls in is not, and OceanMix reads
// those band values directly, so 1.13+ ocean biomes differ from the
// reference's.
type OceanTemp struct {
	WorldSeed uint64

	lattice [512]float64
}

// NewOceanTemp builds an OceanTemp layer, seeding its noise lattice
// from worldSeed.
func NewOceanTemp(worldSeed uint64) *OceanTemp {
	o := &OceanTemp{WorldSeed: worldSeed}
	r := javarng.NewFromSeed(worldSeed)
	for i := range o.lattice {
		o.lattice[i] = r.NextDouble()*2 - 1
	}
	return o
}

func (o *OceanTemp) GetMap(area biome.Area) biome.Map {
	out := biome.NewMap(area)
	for j := int64(0); j < area.H; j++ {
		wz := area.Z + j
		for i := int64(0); i < area.W; i++ {
			wx := area.X + i
			tmp := o.noise(float64(wx)/8.0, float64(wz)/8.0)
			out.Set(i, j, oceanTempBand(tmp))
		}
	}
	return out
}

func (o *OceanTemp) GetMapFromParent(parent biome.Map) biome.Map {
	return o.GetMap(parent.Area)
}

func oceanTempBand(tmp float64) int32 {
	switch {
	case tmp > 0.4:
		return biomeinfo.WarmOcean
	case tmp > 0.2:
		return biomeinfo.LukewarmOcean
	case tmp < -0.4:
		return biomeinfo.FrozenOcean
	case tmp < -0.2:
		return biomeinfo.ColdOcean
	default:
		return biomeinfo.Ocean
	}
}

func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

func (o *OceanTemp) corner(xi, zi int64) float64 {
	idx := (uint64(xi)*374761393 + uint64(zi)*668265263) & 0x1ff
	return o.lattice[idx]
}

func (o *OceanTemp) noise(x, z float64) float64 {
	x0 := int64(math.Floor(x))
	z0 := int64(math.Floor(z))
	fx := x - float64(x0)
	fz := z - float64(z0)
	u, v := fade(fx), fade(fz)

	n00 := o.corner(x0, z0)
	n10 := o.corner(x0+1, z0)
	n01 := o.corner(x0, z0+1)
	n11 := o.corner(x0+1, z0+1)

	return lerp(v, lerp(u, n00, n10), lerp(u, n01, n11))
}
