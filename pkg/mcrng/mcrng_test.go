package mcrng_test

import (
	"testing"

	"github.com/dshills/mcseed/pkg/mcrng"
)

func newReady(baseConst, worldSeed uint64) *mcrng.McRng {
	r := &mcrng.McRng{}
	r.SetBaseSeed(baseConst)
	r.SetWorldSeed(worldSeed)
	return r
}

func TestSetBaseSeedDeterministic(t *testing.T) {
	a := &mcrng.McRng{}
	a.SetBaseSeed(1234)
	b := &mcrng.McRng{}
	b.SetBaseSeed(1234)
	if a.BaseSeed != b.BaseSeed {
		t.Fatalf("SetBaseSeed(1234) not deterministic: %d != %d", a.BaseSeed, b.BaseSeed)
	}
}

func TestSetWorldSeedDependsOnBaseSeed(t *testing.T) {
	a := newReady(1, 42)
	b := newReady(2, 42)
	if a.WorldSeed == b.WorldSeed {
		t.Fatalf("different base seeds produced the same world seed")
	}
}

func TestSetChunkSeedVariesByCoordinate(t *testing.T) {
	r := newReady(7, 42)
	r.SetChunkSeed(0, 0)
	s1 := r.ChunkSeed
	r.SetChunkSeed(1, 0)
	s2 := r.ChunkSeed
	r.SetChunkSeed(0, 1)
	s3 := r.ChunkSeed
	if s1 == s2 || s1 == s3 || s2 == s3 {
		t.Fatalf("SetChunkSeed collided across distinct coordinates: %d %d %d", s1, s2, s3)
	}
}

func TestNextIntNRange(t *testing.T) {
	r := newReady(7, 42)
	r.SetChunkSeed(5, -5)
	for i := 0; i < 1000; i++ {
		v := r.NextIntN(6)
		if v < 0 || v >= 6 {
			t.Fatalf("NextIntN(6) = %d, out of range", v)
		}
	}
}

func TestNextIntNPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NextIntN(0) did not panic")
		}
	}()
	r := newReady(7, 42)
	r.SetChunkSeed(0, 0)
	r.NextIntN(0)
}

func TestChoose2ReturnsOneOfInputs(t *testing.T) {
	r := newReady(3, 9)
	r.SetChunkSeed(10, 20)
	for i := 0; i < 100; i++ {
		v := r.Choose2(11, 22)
		if v != 11 && v != 22 {
			t.Fatalf("Choose2 returned %d, want 11 or 22", v)
		}
	}
}

func TestChoose4ReturnsOneOfInputs(t *testing.T) {
	r := newReady(3, 9)
	r.SetChunkSeed(10, 20)
	opts := map[int32]bool{1: true, 2: true, 3: true, 4: true}
	for i := 0; i < 200; i++ {
		v := r.Choose4(1, 2, 3, 4)
		if !opts[v] {
			t.Fatalf("Choose4 returned %d, want one of 1,2,3,4", v)
		}
	}
}

func TestSelectModeOrRandomMajority(t *testing.T) {
	r := newReady(3, 9)
	r.SetChunkSeed(10, 20)
	if v := r.SelectModeOrRandom(5, 5, 5, 9); v != 5 {
		t.Fatalf("three-of-four agreement on 5: got %d", v)
	}
	if v := r.SelectModeOrRandom(5, 9, 9, 9); v != 9 {
		t.Fatalf("three-of-four agreement on 9: got %d", v)
	}
}

func TestSelectModeOrRandomNoMajorityChoosesAmongInputs(t *testing.T) {
	r := newReady(3, 9)
	r.SetChunkSeed(10, 20)
	opts := map[int32]bool{1: true, 2: true, 3: true, 4: true}
	for i := 0; i < 200; i++ {
		v := r.SelectModeOrRandom(1, 2, 3, 4)
		if !opts[v] {
			t.Fatalf("SelectModeOrRandom returned %d, want one of the four inputs", v)
		}
	}
}

func TestSimilarBiomeSeedFlipsBit25Only(t *testing.T) {
	s := uint64(0x1234)
	twin := mcrng.SimilarBiomeSeed(s)
	if twin == s {
		t.Fatal("SimilarBiomeSeed returned the same seed")
	}
	if twin&(1<<25-1) != s&(1<<25-1) {
		t.Fatal("SimilarBiomeSeed changed bits below 25")
	}
	if mcrng.SimilarBiomeSeed(twin) != s {
		t.Fatal("SimilarBiomeSeed is not its own inverse")
	}
}

// TestSimilarBiomeSeedIteratorBitsExhaustive covers invariant/scenario S3 at
// a tractable bit width: similar_biome_seed_iterator_bits(n) must produce
// exactly 2^n distinct values, each agreeing with itself on the low n bits.
// The full width used by the 26-bit search stage (n=25) is exercised by
// TestSimilarBiomeSeedIteratorBitsCardinality below without enumerating
// every element.
func TestSimilarBiomeSeedIteratorBitsExhaustive(t *testing.T) {
	const n = 12
	values := mcrng.SimilarBiomeSeedIteratorBits(n)
	want := uint64(1) << n
	if uint64(len(values)) != want {
		t.Fatalf("len = %d, want %d", len(values), want)
	}
	seen := make(map[uint64]bool, len(values))
	mask := want - 1
	for _, v := range values {
		if seen[v] {
			t.Fatalf("duplicate value %d", v)
		}
		seen[v] = true
		if v&mask != v {
			t.Fatalf("value %d disagrees with itself on the low %d bits", v, n)
		}
	}
}

func TestSimilarBiomeSeedIteratorBitsCardinality(t *testing.T) {
	const n = 25
	values := mcrng.SimilarBiomeSeedIteratorBits(n)
	want := uint64(1) << n
	if uint64(len(values)) != want {
		t.Fatalf("len = %d, want %d", len(values), want)
	}
}
