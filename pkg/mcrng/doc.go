// Package mcrng implements the per-cell mixing PRNG most concrete biome
// layers use to re-seed independently for every output coordinate.
//
// # Overview
//
// McRng holds three 64-bit values: a base seed (derived once from a
// layer's fixed constant), a world seed (derived once from the caller's
// world seed), and a chunk seed (re-derived for every cell). All
// derivation goes through the same mixing function:
//
//	mix(s, v) = s*(s*6364136223846793005 + 1442695040888963407) + v
//
// evaluated with unsigned 64-bit wraparound throughout.
//
// # Usage
//
// A layer constructs one McRng per GetMapFromParent call, sets its base
// seed once (SetBaseSeed) and then derives its world seed from it
// (SetWorldSeed), then for every output cell calls SetChunkSeed(x, z) followed by one or more
// NextIntN / Choose2 / Choose4 / SelectModeOrRandom calls, in the exact
// order the concrete layer's contract specifies — the draw sequence
// itself carries meaning, so skipping or reordering a draw desynchronizes
// every downstream layer.
//
// # Known limitation preserved intentionally
//
// Some callers construct an McRng and read NextIntN before ever calling
// SetWorldSeed/SetBaseSeed; McRng does not guard against this. The zero
// value's WorldSeed is a valid, if vestigial, seed rather than an error —
// this mirrors an original defect (see the MapZoom world_seed_not_set
// flag) that downstream layers are specified to reproduce, not fix.
package mcrng
