package layer

import (
	"testing"

	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biomeinfo"
)

func TestRiverMixOceanicBiomePassesThrough(t *testing.T) {
	r := &RiverMix{Biome: constLayer{v: biomeinfo.Ocean}, River: constLayer{v: biomeinfo.River}}
	m := r.GetMap(biome.Area{X: 0, Z: 0, W: 4, H: 4})
	for i, v := range m.Data {
		if v != biomeinfo.Ocean {
			t.Fatalf("data[%d] = %d, want Ocean unchanged", i, v)
		}
	}
}

func TestRiverMixFreezesRiverOverIcePlains(t *testing.T) {
	r := &RiverMix{Biome: constLayer{v: biomeinfo.IcePlains}, River: constLayer{v: biomeinfo.River}}
	m := r.GetMap(biome.Area{X: 0, Z: 0, W: 4, H: 4})
	for i, v := range m.Data {
		if v != biomeinfo.FrozenRiver {
			t.Fatalf("data[%d] = %d, want FrozenRiver", i, v)
		}
	}
}

func TestRiverMixNoRiverPassesThroughBiome(t *testing.T) {
	r := &RiverMix{Biome: constLayer{v: biomeinfo.Plains}, River: constLayer{v: -1}}
	m := r.GetMap(biome.Area{X: 0, Z: 0, W: 4, H: 4})
	for i, v := range m.Data {
		if v != biomeinfo.Plains {
			t.Fatalf("data[%d] = %d, want Plains unchanged", i, v)
		}
	}
}

func TestRiverMixRiverOverPlainsTakesRiverLowByte(t *testing.T) {
	r := &RiverMix{Biome: constLayer{v: biomeinfo.Plains}, River: constLayer{v: biomeinfo.River}}
	m := r.GetMap(biome.Area{X: 0, Z: 0, W: 4, H: 4})
	for i, v := range m.Data {
		if v != biomeinfo.River {
			t.Fatalf("data[%d] = %d, want River", i, v)
		}
	}
}
