// Package javarng implements the 48-bit linear-congruential generator used
// throughout the biome pipeline, together with the inverse operations the
// seed-recovery engine needs.
//
// # Overview
//
// RNG holds a 48-bit state and advances it with the recurrence
//
//	s <- (s*A + C) mod 2^48
//
// where A = 0x5DEECE66D and C = 0xB. next(bits) returns the top bits of
// the state, sign-extended to a signed 32-bit integer. NextIntN(n) rejects
// modulo-biased draws for non-power-of-two n, and takes a single shifted
// multiply for power-of-two n. n == 10 uses a dedicated reject limit
// (2147483640) to match the original game's historical behavior.
//
// # Inverse operations
//
// Previous, AdvanceBy and RewindBy let a caller walk the generator
// backwards or jump by n steps in O(log n) using the closed form for a
// geometric series modulo 2^48. ExtendLong48 enumerates the 64-bit raw
// seeds consistent with an observed low-48-bits-of-NextLong() output,
// which is the final stage of the seed-recovery engine.
//
// # Determinism
//
// Every method is a pure function of the receiver's state; there is no
// global state and no use of the host's entropy source. Two RNG values
// seeded identically always produce identical sequences.
package javarng
