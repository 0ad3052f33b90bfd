// Package inverse reconstructs a parent layer's output from a child
// layer's output, approximately where the forward transform is lossy.
// Every function here takes a Map one layer downstream and returns what
// the corresponding parent Map most likely was; callers chain them in
// the reverse order the forward pipeline built the DAG.
package inverse

import (
	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biomeinfo"
)

// River reverses River's 3x3 reduce-and-collapse: wherever the child
// cell is not a river, its four orthogonal neighbours and itself were
// all equal going in, so reading back the center cell recovers the
// parent exactly. It is lossless.
func River(m biome.Map) biome.Map {
	w, h := m.Area.W-2, m.Area.H-2
	out := biome.NewMap(biome.Area{X: m.Area.X + 1, Z: m.Area.Z + 1, W: w, H: h})
	for x := int64(0); x < w; x++ {
		for z := int64(0); z < h; z++ {
			out.Set(x, z, m.At(x+1, z+1))
		}
	}
	return out
}

// RiverMix reverses RiverMix's biome parent: frozenRiver came from
// icePlains, a plain river cell carries no biome evidence, and every
// other cell passes through unchanged. mushroomIslandShore is ambiguous
// (RiverMix maps a river-adjacent mushroom island to the same id Shore
// uses for its own shore promotion) and is left unknown rather than
// guessed.
func RiverMix(m biome.Map) biome.SparseMap {
	out := biome.NewSparseMap(m.Area)
	for x := int64(0); x < m.Area.W; x++ {
		for z := int64(0); z < m.Area.H; z++ {
			switch v := m.At(x, z); v {
			case biomeinfo.FrozenRiver:
				out.Set(x, z, biomeinfo.IcePlains)
			case biomeinfo.MushroomIslandShore, biomeinfo.River:
				// ambiguous or no evidence: leave unknown
			default:
				out.Set(x, z, v)
			}
		}
	}
	return out
}

// RiverMixRiver reverses RiverMix's river parent: both frozenRiver and
// plain river came from a river cell; every other id means the parent
// cell was not a river (the exact non-river value is unrecoverable here,
// only the river/not-river distinction is, so this reports River or the
// sentinel -1 for "not a river").
func RiverMixRiver(m biome.Map) biome.Map {
	out := biome.NewMap(m.Area)
	for x := int64(0); x < m.Area.W; x++ {
		for z := int64(0); z < m.Area.H; z++ {
			v := m.At(x, z)
			if v == biomeinfo.FrozenRiver || v == biomeinfo.River {
				out.Set(x, z, biomeinfo.River)
			} else {
				out.Set(x, z, -1)
			}
		}
	}
	return out
}

// Zoom reverses Zoom exactly: every parent cell survives as the
// top-left corner of its 2x2 output block, so subsampling on even
// output offsets (relative to the child area's own parity) recovers it
// losslessly.
func Zoom(m biome.Map) biome.Map {
	w, h := m.Area.W>>1, m.Area.H>>1
	fx, fz := m.Area.X&1, m.Area.Z&1
	out := biome.NewMap(biome.Area{X: (m.Area.X + fx) >> 1, Z: (m.Area.Z + fz) >> 1, W: w, H: h})
	for x := int64(0); x < w; x++ {
		for z := int64(0); z < h; z++ {
			out.Set(x, z, m.At(fx+(x<<1), fz+(z<<1)))
		}
	}
	return out
}

// HalfVoronoiZoom reverses HalfVoronoiZoom the same way Zoom reverses
// Zoom, but samples the opposite parity (the odd output offset within
// each 2x2 block), since HalfVoronoiZoom keeps odd source coordinates
// rather than even ones.
func HalfVoronoiZoom(m biome.Map) biome.Map {
	w, h := m.Area.W>>1, m.Area.H>>1
	fx, fz := (^m.Area.X)&1, (^m.Area.Z)&1
	out := biome.NewMap(biome.Area{X: m.Area.X >> 1, Z: m.Area.Z >> 1, W: w, H: h})
	for x := int64(0); x < w; x++ {
		for z := int64(0); z < h; z++ {
			out.Set(x, z, m.At(fx+(x<<1), fz+(z<<1)))
		}
	}
	return out
}

// Smooth approximately reverses Smooth: it cannot know which of the four
// cells in a 2x2 pre-zoom block Smooth might have overridden, so it
// reads back the top-left cell of each aligned 2x2 block as a best
// guess. Reference measurements put this right about 9/16 of the time;
// callers that need certainty should corroborate with multiple
// overlapping reverse chains instead of trusting a single cell.
func Smooth(m biome.Map) biome.Map {
	w, h := m.Area.W-2, m.Area.H-2
	fx, fz := m.Area.X&1, m.Area.Z&1
	out := biome.NewMap(biome.Area{X: m.Area.X + 1, Z: m.Area.Z + 1, W: w, H: h})
	for x := int64(0); x < w; x++ {
		for z := int64(0); z < h; z++ {
			out.Set(x, z, m.At(fx+(x&^1), fz+(z&^1)))
		}
	}
	return out
}

// VoronoiZoom approximately reverses VoronoiZoom by resampling every
// 4th cell, shifted so index 0 lines up with a jitter center
// (VoronoiZoom anchors its output 2 cells to the right/down of the
// scaled parent origin, mirroring the +2 in VoronoiZoom.GetMapFromParent).
// It returns false if the supplied area is smaller than a single parent
// cell's 4x4 footprint, mirroring the reference's Err(()) for undersized
// input. Jitter means the recovered value is only the exact parent cell
// roughly 99.9% of the time per reference measurements; this is a lossy
// approximation, not an exact inverse.
func VoronoiZoom(m biome.Map) (biome.Map, bool) {
	area := m.Area
	if area.W < 4 || area.H < 4 {
		return biome.Map{}, false
	}

	nextMultipleOf4 := func(x int64) int64 { return (x + 3) &^ 3 }
	nx := nextMultipleOf4(area.X-2) + 2
	nz := nextMultipleOf4(area.Z-2) + 2
	adjX, adjZ := nx-area.X, nz-area.Z
	adjArea := biome.Area{X: nx, Z: nz, W: area.W - adjX, H: area.H - adjZ}

	pX, pZ := (adjArea.X-2)/4, (adjArea.Z-2)/4
	pW := (adjArea.W + 3) >> 2
	pH := (adjArea.H + 3) >> 2
	if pW == 0 || pH == 0 {
		return biome.Map{}, false
	}

	out := biome.NewMap(biome.Area{X: pX, Z: pZ, W: pW, H: pH})
	for x := int64(0); x < pW; x++ {
		for z := int64(0); z < pH; z++ {
			xx := adjX + x*4
			zz := adjZ + z*4
			if xx >= area.W || zz >= area.H {
				continue
			}
			out.Set(x, z, m.At(xx, zz))
		}
	}
	return out, true
}
