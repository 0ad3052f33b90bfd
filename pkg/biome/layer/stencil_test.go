package layer

import (
	"testing"

	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/mcrng"
)

func TestStencil3x3PassesCenterThroughByDefault(t *testing.T) {
	identity := func(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 { return nb.C }
	s := &Stencil3x3{Parent: checkerLayer{}, BaseSeed: 1, WorldSeed: 2, Rewrite: identity}
	area := biome.Area{X: 0, Z: 0, W: 6, H: 6}
	out := s.GetMap(area)
	want := checkerLayer{}.GetMap(area)
	for i := range out.Data {
		if out.Data[i] != want.Data[i] {
			t.Fatalf("identity Stencil3x3 data[%d] = %d, want %d", i, out.Data[i], want.Data[i])
		}
	}
}

func TestStencil3x3SeesExpectedNeighborhood(t *testing.T) {
	var seen Neighborhood
	capture := func(nb Neighborhood, x, z int64, rng *mcrng.McRng) int32 {
		if x == 0 && z == 0 {
			seen = nb
		}
		return nb.C
	}
	s := &Stencil3x3{Parent: checkerLayer{}, BaseSeed: 1, WorldSeed: 2, Rewrite: capture}
	s.GetMap(biome.Area{X: 0, Z: 0, W: 4, H: 4})

	parent := checkerLayer{}.GetMap(biome.Area{X: -1, Z: -1, W: 3, H: 3})
	if seen.C != parent.At(1, 1) || seen.N != parent.At(1, 0) || seen.S != parent.At(1, 2) ||
		seen.W != parent.At(0, 1) || seen.E != parent.At(2, 1) {
		t.Fatalf("captured neighborhood %+v did not match the parent's 3x3 window", seen)
	}
}

func TestIdentity1to1PreservesArea(t *testing.T) {
	double := func(v int32, x, z int64, rng *mcrng.McRng) int32 { return v * 2 }
	s := &Identity1to1{Parent: checkerLayer{}, BaseSeed: 1, WorldSeed: 2, Rewrite: double}
	area := biome.Area{X: 0, Z: 0, W: 5, H: 5}
	out := s.GetMap(area)
	parent := checkerLayer{}.GetMap(area)
	for i := range out.Data {
		if out.Data[i] != parent.Data[i]*2 {
			t.Fatalf("data[%d] = %d, want %d", i, out.Data[i], parent.Data[i]*2)
		}
	}
}
