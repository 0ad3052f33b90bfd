package javarng

import "testing"

func TestSeedSetGet(t *testing.T) {
	r := NewFromRawSeed(1234)
	if got := r.Seed(); got != 1234^A {
		t.Fatalf("Seed() = %d, want %d", got, 1234^A)
	}
	r.SetSeed(A)
	if got := r.Seed(); got != A {
		t.Fatalf("Seed() after SetSeed(A) = %d, want %d", got, A)
	}
	if r.seed != 0 {
		t.Fatalf("internal state = %d, want 0", r.seed)
	}
	r.SetSeed(1 << 48) // wraps back to 0
	if got := r.Seed(); got != 0 {
		t.Fatalf("Seed() after wraparound = %d, want 0", got)
	}
}

func TestPreviousUndoesNext(t *testing.T) {
	r := NewFromSeed(12345)
	r.NextInt()
	r.Previous()
	if got := r.Seed(); got != 12345 {
		t.Fatalf("Seed() after next+previous = %d, want 12345", got)
	}
}

func TestLongFromInts(t *testing.T) {
	r := NewFromSeed(12345)
	l := r.NextLong()
	r.SetSeed(12345)
	i0 := r.NextInt()
	i1 := r.NextInt()
	if got := LongFromInts(i0, i1); got != l {
		t.Fatalf("LongFromInts(%d, %d) = %d, want %d", i0, i1, got, l)
	}
	j0, j1 := IntsFromLong(l)
	if j0 != i0 || j1 != i1 {
		t.Fatalf("IntsFromLong(%d) = (%d, %d), want (%d, %d)", l, j0, j1, i0, i1)
	}
}

func TestCreateFromLong(t *testing.T) {
	r := NewFromRawSeed(12345)
	l := r.NextLong()
	rs, ok := CreateFromLong(uint64(l))
	if !ok {
		t.Fatal("CreateFromLong returned no solution")
	}
	if got := rs.RawSeed(); got != 12345 {
		t.Fatalf("RawSeed() = %d, want 12345", got)
	}
}

// Golden vectors transcribed from the reference implementation's own test
// suite (same_as_java).
func TestSameAsJava(t *testing.T) {
	r := NewFromSeed(12345)
	if l := r.NextLong(); l != 6674089274190705457 {
		t.Fatalf("NextLong() = %d, want 6674089274190705457", l)
	}

	r.SetSeed(12345)
	if b := r.NextBoolean(); b != false {
		t.Fatalf("NextBoolean() = %v, want false", b)
	}

	r.SetSeed(12345)
	if i := r.NextIntN(10); i != 1 {
		t.Fatalf("NextIntN(10) = %d, want 1", i)
	}

	r.SetSeed(12345)
	if i := r.NextIntN(16); i != 5 {
		t.Fatalf("NextIntN(16) = %d, want 5", i)
	}

	r.SetSeed(12345)
	if f := r.NextFloat(); f != 0.36180305 {
		t.Fatalf("NextFloat() = %v, want 0.36180305", f)
	}

	r.SetSeed(12345)
	if d := r.NextDouble(); d != 0.3618031071604718 {
		t.Fatalf("NextDouble() = %v, want 0.3618031071604718", d)
	}
}

func TestModuloBiasNextIntN(t *testing.T) {
	r := NewFromSeed(12345678)
	if x := r.NextIntN((1 << 30) + 1); x != 677997345 {
		t.Fatalf("NextIntN((1<<30)+1) = %d, want 677997345", x)
	}
}

func TestNextIntN10MatchesDedicatedPath(t *testing.T) {
	r0 := NewFromSeed(1356836617)
	r1 := *r0
	x0 := r0.NextIntN(10)
	x1 := r1.NextIntN10()
	if x0 != 6 || x0 != x1 {
		t.Fatalf("NextIntN(10) = %d, NextIntN10() = %d, want both 6", x0, x1)
	}
}

func TestAdvanceRewindIdentity(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 99, 1000, 1 << 20} {
		r := NewFromSeed(12345)
		r.AdvanceBy(n)
		r.RewindBy(n)
		if got := r.Seed(); got != 12345 {
			t.Fatalf("AdvanceBy(%d) then RewindBy(%d): Seed() = %d, want 12345", n, n, got)
		}
	}
}

func TestRewindByFullPeriodIsIdentity(t *testing.T) {
	r := NewFromSeed(12345)
	r.RewindBy(1 << 48)
	if got := r.Seed(); got != 12345 {
		t.Fatalf("RewindBy(2^48): Seed() = %d, want 12345", got)
	}
}

func TestAdvanceByMatchesRepeatedNext(t *testing.T) {
	r0 := NewFromSeed(12345)
	for i := 0; i < 1000; i++ {
		r0.NextInt()
	}
	r1 := NewFromSeed(12345)
	r1.AdvanceBy(1000)
	if r0.Seed() != r1.Seed() {
		t.Fatalf("AdvanceBy(1000) = %d, 1000 NextInt calls = %d", r1.Seed(), r0.Seed())
	}
}

func TestLowBitsForNextInt(t *testing.T) {
	r := NewFromSeed(1234)
	i0 := r.NextInt()
	expected := uint16(r.RawSeed())
	i1 := r.NextInt()
	got, ok := LowBitsForNextInt(uint32(i0), uint32(i1))
	if !ok || got != expected {
		t.Fatalf("LowBitsForNextInt(%d, %d) = (%d, %v), want (%d, true)", i0, i1, got, ok, expected)
	}
}

func TestExtendLong48(t *testing.T) {
	cases := []struct {
		low48 uint64
		want  []uint64
	}{
		{132607203138509, []uint64{4400149443144113101}},
		{113453751637441, []uint64{6895687433209288129, 955720999684314561}},
		{18021957452394, []uint64{3640896845709787754}},
		{131291916928825, []uint64{17351374756268607289}},                      // int64 -1095369317440944327
		{249127199878301, []uint64{5773582374512143517, 18280360014696721565}}, // int64 -166384059012830051
		{186701866325681, []uint64{3353398099420370609, 15860175739604948657}}, // int64 -2586568334104602959
	}
	for _, c := range cases {
		got := ExtendLong48(c.low48)
		if !equalUint64Slices(got, c.want) {
			t.Fatalf("ExtendLong48(%d) = %v, want %v", c.low48, got, c.want)
		}
	}
}

func equalUint64Slices(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNumStepsTo(t *testing.T) {
	r0 := NewFromSeed(12345)
	if d := r0.NumStepsTo(r0); d != 0 {
		t.Fatalf("NumStepsTo(self) = %d, want 0", d)
	}

	r0 = NewFromSeed(12345)
	r := *r0
	for i := 0; i < 99; i++ {
		r.Next(32)
	}
	if d := r0.NumStepsTo(&r); d != 99 {
		t.Fatalf("NumStepsTo(+99 steps) = %d, want 99", d)
	}

	if d, ok := r0.NumStepsToUnder(&r, 100); !ok || d != 99 {
		t.Fatalf("NumStepsToUnder(.., 100) = (%d, %v), want (99, true)", d, ok)
	}
	if _, ok := r0.NumStepsToUnder(&r, 99); ok {
		t.Fatal("NumStepsToUnder(.., 99) should fail: true distance is 99")
	}
}
