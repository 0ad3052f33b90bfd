package javarng

// Multiplier and increment of the 48-bit linear-congruential recurrence
// s <- (s*A + C) mod 2^48.
const (
	A uint64 = 0x5DEECE66D
	C uint64 = 0xB
)

// Modular inverses used by the inverse operations below. invA is the
// multiplicative inverse of A modulo 2^48; invA1 and invInvA1 are the
// inverses of (A-1)/4 and (invA-1)/4 respectively, used by AdvanceBy and
// RewindBy's closed-form geometric-series sums.
const (
	invA      uint64 = 0xdfe05bcb1365
	invA1     uint64 = 18698324575379
	invInvA1  uint64 = 192407907957609
	mask48    uint64 = (1 << 48) - 1
	mask32    uint64 = (1 << 32) - 1
	rejectN10 int32  = 2147483640 // (1<<31)/10*10, the last multiple of 10 below 2^31
)

// RNG is the 48-bit linear-congruential generator used by OceanTemp's
// noise lattice and by the seed finder. It stores 64 bits internally but only the
// low 48 are ever significant; callers never need to mask results
// themselves.
type RNG struct {
	seed uint64
}

// NewFromSeed scrambles a user-facing seed the way java.util.Random does:
// the stored state is seed XOR A.
func NewFromSeed(seed uint64) *RNG {
	r := &RNG{}
	r.SetSeed(seed)
	return r
}

// NewFromRawSeed builds an RNG directly from an internal LCG state, with
// no XOR scrambling. Used by the seed-recovery engine, which works with
// raw states rather than user seeds.
func NewFromRawSeed(seed uint64) *RNG {
	return &RNG{seed: seed}
}

// SetSeed re-seeds the generator the way java.util.Random does.
func (r *RNG) SetSeed(seed uint64) {
	r.seed = seed ^ A
}

// SetRawSeed sets the internal LCG state directly, with no scrambling.
func (r *RNG) SetRawSeed(seed uint64) {
	r.seed = seed
}

// Seed returns the unscrambled, user-facing seed corresponding to the
// current internal state.
func (r *RNG) Seed() uint64 {
	return (r.seed ^ A) & mask48
}

// RawSeed returns the low 48 bits of the internal LCG state.
func (r *RNG) RawSeed() uint64 {
	return r.seed & mask48
}

func nextState(s uint64) uint64 {
	return s*A + C
}

func previousState(s uint64) uint64 {
	return (s - C) * invA & mask48
}

// Next advances the state and returns the top bits bits of the resulting
// 48-bit state, sign-extended to a signed 32-bit integer exactly as the
// Java reference does.
func (r *RNG) Next(bits uint8) int32 {
	r.seed = nextState(r.seed)
	return int32((r.seed & mask48) >> (48 - bits))
}

// LastNext returns what the most recent call to Next(bits) returned,
// without advancing the state again.
func (r *RNG) LastNext(bits uint8) int32 {
	return int32((r.seed & mask48) >> (48 - bits))
}

// NextInt returns a uniform signed 32-bit integer.
func (r *RNG) NextInt() int32 {
	return r.Next(32)
}

// NextIntN returns a uniform integer in [0, n). It panics if n <= 0.
func (r *RNG) NextIntN(n int32) int32 {
	if n == 10 {
		return r.NextIntN10()
	}
	if n <= 0 {
		panic("javarng: NextIntN requires n > 0")
	}
	if n&(-n) == n { // power of two
		return int32((int64(n) * int64(r.Next(31))) >> 31)
	}
	var bits, val int32
	for {
		bits = r.Next(31)
		val = bits % n
		if bits-val+(n-1) >= 0 {
			break
		}
	}
	return val
}

// NextIntN10 is next_int_n(10)'s dedicated reject loop, preserved because
// the original game hand-specialized this common case with its own reject
// bound rather than the generic overflow check.
func (r *RNG) NextIntN10() int32 {
	var bits int32
	for {
		bits = r.Next(31)
		if bits < rejectN10 {
			break
		}
	}
	return bits % 10
}

// NextLong returns a uniform signed 64-bit integer, composed from two
// NextInt() calls exactly as java.util.Random does (the high word first).
func (r *RNG) NextLong() int64 {
	return (int64(r.NextInt()) << 32) + int64(r.NextInt())
}

// NextBoolean returns a uniform boolean.
func (r *RNG) NextBoolean() bool {
	return r.Next(1) != 0
}

// NextFloat returns a uniform float32 in [0, 1).
func (r *RNG) NextFloat() float32 {
	return float32(r.Next(24)) / float32(1<<24)
}

// NextDouble returns a uniform float64 in [0, 1).
func (r *RNG) NextDouble() float64 {
	hi := int64(r.Next(26)) << 27
	lo := int64(r.Next(27))
	return float64(hi+lo) / float64(uint64(1)<<53)
}

// AdvanceBy moves the generator forward by n steps in O(log n), using the
// closed form for the LCG's affine recurrence raised to the nth power.
func (r *RNG) AdvanceBy(n uint64) {
	switch n {
	case 0:
		return
	case 1:
		r.Next(0)
		return
	}
	an := powWrapping(A, n)
	aes := ((an - 1) >> 2) * invA1
	caa := C * aes
	r.seed = r.seed*an + caa
}

// Previous undoes the most recent Next call, one step.
func (r *RNG) Previous() {
	r.seed = previousState(r.seed)
}

// Previous2 is equivalent to two calls to Previous, folded into one affine
// step.
func (r *RNG) Previous2() {
	r.seed = (((r.seed-C)*invA)-C)*invA
}

// RewindBy moves the generator backward by n steps in O(log n), the
// mirror image of AdvanceBy using invA in place of A.
func (r *RNG) RewindBy(n uint64) {
	switch n {
	case 0:
		return
	case 1:
		r.Previous()
		return
	case 2:
		r.Previous2()
		return
	}
	dn := powWrapping(invA, n)
	des := ((dn - 1) >> 2) * invInvA1
	cdd := C * invA * des
	r.seed = r.seed*dn - cdd
}

// PreviousVerify16 checks whether target is the low 16 bits of the state
// that Next(16) would have produced one step before the current state,
// without mutating the receiver. Returns 0 on a match.
func (r *RNG) PreviousVerify16(target uint16) uint32 {
	p1 := uint16(previousState(r.seed))
	p := (uint32(target) << 16) | uint32(p1)
	p2 := p*uint32(A&mask32) + uint32(C)
	return p2 ^ uint32(r.seed)
}

// PreviousVerifyN is PreviousVerify16 generalized to an n-bit window
// (n capped at 48); returns 0 on a match.
func (r *RNG) PreviousVerifyN(target uint64, n uint8) uint64 {
	if n > 48 {
		n = 48
	}
	p1 := uint16(previousState(r.seed))
	p := (target << 16) | uint64(p1)
	p2 := nextState(p)
	return (p2 ^ r.seed) & ((uint64(1) << n) - 1)
}

// I1FromLong extracts the low 32 bits of a next_long()-style 64-bit value.
func I1FromLong(l int64) int32 {
	return int32(l)
}

// I0FromLong extracts the high-word NextInt() output that, combined with
// I1FromLong, reconstructs l via LongFromInts. The rounding term corrects
// for the sign-extension carry introduced when the low word is negative.
func I0FromLong(l int64) int32 {
	return int32((l >> 32) + ((l >> 31) & 1))
}

// IntsFromLong splits l into the pair of NextInt() outputs that produced
// it.
func IntsFromLong(l int64) (int32, int32) {
	return I0FromLong(l), I1FromLong(l)
}

// LongFromInts recombines two consecutive NextInt() outputs into the
// NextLong() value they produced.
func LongFromInts(i0, i1 int32) int64 {
	return (int64(i0) << 32) + int64(i1)
}

// LowBitsForNextInt recovers the low 16 bits of internal state joining two
// consecutive NextInt() outputs i0, i1 (the high 32 bits of that state are
// already known: they equal i0). Returns false if no consistent value
// exists, which cannot happen for outputs actually produced by this
// generator.
func LowBitsForNextInt(i0, i1 uint32) (uint16, bool) {
	x := i1 - i0*uint32(A&mask32)
	for i := uint64(0); i < 6; i++ {
		low16 := uint16((uint64(x) | (i << 32)) / (A >> 16))
		y := uint32(nextState(uint64(low16)) >> 16)
		if y == x {
			return low16, true
		}
	}
	return 0, false
}

// CreateFromLong returns an RNG r such that r.NextLong() == int64(l), if
// one exists.
func CreateFromLong(l uint64) (*RNG, bool) {
	i0, i1 := IntsFromLong(int64(l))
	front := uint64(uint32(i0)) << 16
	back, ok := LowBitsForNextInt(uint32(i0), uint32(i1))
	if !ok {
		return nil, false
	}
	r := NewFromRawSeed(front | uint64(back))
	r.Previous()
	return r, true
}

// ExtendLong48 enumerates the 64-bit NextLong() outputs whose low 48 bits
// are low48. The result has 0, 1, or 2 elements: the
// 16 bits lost because Next(32) only ever exposes the top 32 bits of the
// 48-bit state must be recovered by exhaustive search, verified with
// PreviousVerify16.
func ExtendLong48(low48 uint64) []uint64 {
	low48 &= mask48
	i0, i1 := IntsFromLong(int64(low48))
	i0Low16 := uint16(i0)
	seedHigh := (uint64(uint32(i1)) << 16) & mask48

	var out []uint64
	for k0 := uint64(0); k0 < 0x10000; k0++ {
		s := seedHigh | k0
		r := NewFromRawSeed(s)
		if r.PreviousVerify16(i0Low16) != 0 {
			continue
		}
		r.Previous()
		r.Previous()
		out = append(out, uint64(r.NextLong()))
	}
	return out
}

// NumStepsTo returns the number of Next calls needed to transform r into
// other, using the discrete-log-free doubling technique for LCGs (each
// bit of the distance is resolved independently via the recurrence's
// affine structure raised to powers of two).
func (r *RNG) NumStepsTo(other *RNG) uint64 {
	a, c, p := A, C, uint64(1)
	z := r.RawSeed()
	target := other.RawSeed()
	var d uint64
	for z != target {
		if (z^target)&p != 0 {
			z = (a*z + c) & mask48
			d += p
		}
		c = c * (a + 1)
		a = a * a
		p <<= 1
	}
	return d
}

// NumStepsToUnder is NumStepsTo bounded by limit: it returns false if the
// true distance is >= limit, without computing the full distance.
func (r *RNG) NumStepsToUnder(other *RNG, limit uint64) (uint64, bool) {
	a, c, p := A, C, uint64(1)
	z := r.RawSeed()
	target := other.RawSeed()
	var d uint64
	for z != target {
		if d+p >= limit {
			return 0, false
		}
		if (z^target)&p != 0 {
			d += p
			if d >= limit {
				return 0, false
			}
			z = (a*z + c) & mask48
		}
		c = c * (a + 1)
		a = a * a
		p <<= 1
	}
	return d, true
}

func powWrapping(base, exp uint64) uint64 {
	acc := uint64(1)
	for exp > 1 {
		if exp&1 == 1 {
			acc *= base
		}
		exp /= 2
		base *= base
	}
	if exp == 1 {
		acc *= base
	}
	return acc
}
