package seedfinder

import (
	"context"
	"testing"

	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biomeinfo"
)

func TestCountRivers(t *testing.T) {
	m := biome.NewMap(biome.Area{X: 0, Z: 0, W: 3, H: 1})
	m.Set(0, 0, biomeinfo.River)
	m.Set(1, 0, -1)
	m.Set(2, 0, biomeinfo.River)
	if got := countRivers(m); got != 2 {
		t.Fatalf("countRivers = %d, want 2", got)
	}
}

func TestCountRiversAnd(t *testing.T) {
	a := biome.NewMap(biome.Area{X: 0, Z: 0, W: 2, H: 1})
	b := biome.NewMap(biome.Area{X: 0, Z: 0, W: 2, H: 1})
	a.Set(0, 0, biomeinfo.River)
	a.Set(1, 0, biomeinfo.River)
	b.Set(0, 0, biomeinfo.River)
	b.Set(1, 0, -1)
	if got := countRiversAnd(a, b); got != 1 {
		t.Fatalf("countRiversAnd = %d, want 1", got)
	}
}

func TestCountRiversExactNeverNegative(t *testing.T) {
	a := biome.NewMap(biome.Area{X: 0, Z: 0, W: 1, H: 1})
	b := biome.NewMap(biome.Area{X: 0, Z: 0, W: 1, H: 1})
	a.Set(0, 0, biomeinfo.River)
	b.Set(0, 0, -1)
	if got := countRiversExact(a, b); got != 0 {
		t.Fatalf("countRiversExact = %d, want 0", got)
	}
}

func TestCandidateRiverMapDeterministic(t *testing.T) {
	area := biome.Area{X: 0, Z: 0, W: 20, H: 20}
	a := candidateRiverMap(area, 555)
	b := candidateRiverMap(area, 555)
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("candidateRiverMap non-deterministic at index %d", i)
		}
	}
}

func TestCandidateRiverMapVariesBySeed(t *testing.T) {
	area := biome.Area{X: 0, Z: 0, W: 40, H: 40}
	a := candidateRiverMap(area, 1)
	b := candidateRiverMap(area, 2)
	same := true
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("distinct world seeds produced identical candidate river maps")
	}
}

func TestCanGenerateRiverNearIsDeterministic(t *testing.T) {
	p := Point{X: 4, Z: 4}
	a := CanGenerateRiverNear(p, 12345)
	b := CanGenerateRiverNear(p, 12345)
	if a != b {
		t.Fatalf("CanGenerateRiverNear non-deterministic")
	}
}

func TestSplitRiversIntoFragmentsGroupsBy64(t *testing.T) {
	points := []Point{{X: 0, Z: 0}, {X: 10, Z: 10}, {X: 70, Z: 0}}
	fragments := splitRiversIntoFragments(points)
	if len(fragments) != 2 {
		t.Fatalf("splitRiversIntoFragments produced %d fragments, want 2", len(fragments))
	}
}

func TestFind26BitCandidatesRunsOverSmallRange(t *testing.T) {
	points := []Point{{X: 2, Z: 2}, {X: 3, Z: 2}, {X: 2, Z: 3}}
	// A tiny range keeps this fast; we only assert it runs without
	// panicking and returns a well-formed (possibly empty) slice.
	got := Find26BitCandidates(points, 0, 4)
	if got == nil {
		return
	}
	for _, v := range got {
		if v >= 1<<26 {
			t.Fatalf("candidate %d exceeds 26-bit range", v)
		}
	}
}

func TestFindRiverSeedsHonorsCancelledContext(t *testing.T) {
	points := []Point{{X: 2, Z: 2}, {X: 3, Z: 2}, {X: 2, Z: 3}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got := FindRiverSeeds(ctx, nil, points, nil, biome.Java1_15, 0, 1<<20)
	if got != nil {
		t.Fatalf("FindRiverSeeds with a pre-cancelled context returned %d candidates, want none", len(got))
	}
}

func TestFindRiverSeedsRunsOverSmallRange(t *testing.T) {
	points := []Point{{X: 2, Z: 2}, {X: 3, Z: 2}, {X: 2, Z: 3}}
	// As with Find26BitCandidates, a tiny range just exercises the full
	// staged pipeline without panicking; a nil logger must be silent.
	got := FindRiverSeeds(context.Background(), nil, points, nil, biome.Java1_15, 0, 4)
	for _, v := range got {
		if v == 0 && len(points) == 0 {
			t.Fatalf("unexpected zero candidate")
		}
	}
}

func TestTreasureMapRiverSeedFinderRunsOverSmallRange(t *testing.T) {
	m := biome.NewMap(biome.Area{X: 0, Z: 0, W: 8, H: 8})
	for i := range m.Data {
		m.Data[i] = -1
	}
	m.Set(3, 3, biomeinfo.River)
	m.Set(4, 3, biomeinfo.River)
	m.Set(3, 4, biomeinfo.River)
	got := TreasureMapRiverSeedFinder(m, 0, 4)
	for _, v := range got {
		if v >= 1<<34 {
			t.Fatalf("candidate %d exceeds 34-bit range", v)
		}
	}
}

func TestTreasureMapRiverSeedFinderNoRiverReturnsNil(t *testing.T) {
	m := biome.NewMap(biome.Area{X: 0, Z: 0, W: 4, H: 4})
	for i := range m.Data {
		m.Data[i] = biomeinfo.Plains
	}
	if got := TreasureMapRiverSeedFinder(m, 0, 4); got != nil {
		t.Fatalf("TreasureMapRiverSeedFinder with no river pixels returned %d candidates, want none", len(got))
	}
}
