package layer

import (
	"testing"

	"github.com/dshills/mcseed/pkg/biomeinfo"
	"github.com/dshills/mcseed/pkg/mcrng"
)

func TestShoreMushroomIslandNextToOceanGetsShore(t *testing.T) {
	rng := &mcrng.McRng{}
	nb := Neighborhood{C: biomeinfo.MushroomIsland, N: biomeinfo.Ocean, E: biomeinfo.MushroomIsland, W: biomeinfo.MushroomIsland, S: biomeinfo.MushroomIsland}
	if got := shoreRewrite(nb, 0, 0, rng); got != biomeinfo.MushroomIslandShore {
		t.Fatalf("shoreRewrite(mushroomIsland next to ocean) = %d, want MushroomIslandShore", got)
	}
}

func TestShorePlainsNextToOceanGetsBeach(t *testing.T) {
	rng := &mcrng.McRng{}
	nb := Neighborhood{C: biomeinfo.Plains, N: biomeinfo.Ocean, E: biomeinfo.Plains, W: biomeinfo.Plains, S: biomeinfo.Plains}
	if got := shoreRewrite(nb, 0, 0, rng); got != biomeinfo.Beach {
		t.Fatalf("shoreRewrite(plains next to ocean) = %d, want Beach", got)
	}
}

func TestShoreInlandPlainsUnchanged(t *testing.T) {
	rng := &mcrng.McRng{}
	nb := Neighborhood{C: biomeinfo.Plains, N: biomeinfo.Plains, E: biomeinfo.Plains, W: biomeinfo.Plains, S: biomeinfo.Plains}
	if got := shoreRewrite(nb, 0, 0, rng); got != biomeinfo.Plains {
		t.Fatalf("shoreRewrite(inland plains) = %d, want unchanged Plains", got)
	}
}

func TestShoreSnowyBiomeNextToOceanGetsColdBeach(t *testing.T) {
	rng := &mcrng.McRng{}
	nb := Neighborhood{C: biomeinfo.IcePlains, N: biomeinfo.Ocean, E: biomeinfo.IcePlains, W: biomeinfo.IcePlains, S: biomeinfo.IcePlains}
	if got := shoreRewrite(nb, 0, 0, rng); got != biomeinfo.ColdBeach {
		t.Fatalf("shoreRewrite(icePlains next to ocean) = %d, want ColdBeach", got)
	}
}
