package layer

import (
	"testing"

	"github.com/dshills/mcseed/pkg/mcrng"
)

func TestRemoveTooMuchOceanOnlyAffectsFullySurroundedOcean(t *testing.T) {
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(1)
	rng.SetWorldSeed(2)
	rng.SetChunkSeed(0, 0)
	notSurrounded := Neighborhood{C: 0, N: 1, E: 0, W: 0, S: 0}
	if got := removeTooMuchOceanRewrite(notSurrounded, 0, 0, rng); got != 0 {
		t.Fatalf("removeTooMuchOceanRewrite(not fully surrounded) = %d, want 0", got)
	}
}

func TestRemoveTooMuchOceanEventuallyFillsIn(t *testing.T) {
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(1)
	rng.SetWorldSeed(2)
	surrounded := Neighborhood{C: 0, N: 0, E: 0, W: 0, S: 0}
	found := false
	for x := int64(0); x < 200; x++ {
		rng.SetChunkSeed(x, 0)
		if got := removeTooMuchOceanRewrite(surrounded, x, 0, rng); got == 1 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("removeTooMuchOceanRewrite never filled in a surrounded ocean cell in 200 draws")
	}
}
