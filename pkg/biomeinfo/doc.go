// Package biomeinfo holds the static biome table the layer pipeline reads
// from and the palettes the map renderers draw with.
//
// # Overview
//
// Every biome is identified by a small non-negative int32 id. This package
// does not compute anything; it is a fixed lookup table of categories,
// heights, and temperatures keyed by id, plus two color palettes used by
// pkg/mapview: a full RGB palette (one entry per biome id, for debug SVG
// rendering) and the 64-color treasure-map palette.
package biomeinfo
