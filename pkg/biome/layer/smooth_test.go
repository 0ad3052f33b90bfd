package layer

import (
	"testing"

	"github.com/dshills/mcseed/pkg/mcrng"
)

func TestSmoothRewriteBothPairsMatchPicksOneOfThem(t *testing.T) {
	nb := Neighborhood{C: 9, N: 1, S: 1, W: 2, E: 2}
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(1)
	rng.SetWorldSeed(2)
	rng.SetChunkSeed(0, 0)
	got := smoothRewrite(nb, 0, 0, rng)
	if got != 1 && got != 2 {
		t.Fatalf("smoothRewrite with both pairs agreeing returned %d, want 1 or 2", got)
	}
}

func TestSmoothRewriteOnlyVerticalPairMatches(t *testing.T) {
	nb := Neighborhood{C: 9, N: 1, S: 1, W: 2, E: 3}
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(1)
	rng.SetWorldSeed(2)
	rng.SetChunkSeed(0, 0)
	if got := smoothRewrite(nb, 0, 0, rng); got != 1 {
		t.Fatalf("smoothRewrite = %d, want 1 (the matching N/S pair)", got)
	}
}

func TestSmoothRewriteNoPairMatchesKeepsCenter(t *testing.T) {
	nb := Neighborhood{C: 9, N: 1, S: 2, W: 3, E: 4}
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(1)
	rng.SetWorldSeed(2)
	rng.SetChunkSeed(0, 0)
	if got := smoothRewrite(nb, 0, 0, rng); got != 9 {
		t.Fatalf("smoothRewrite = %d, want 9 (center unchanged)", got)
	}
}
