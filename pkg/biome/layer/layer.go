package layer

import "github.com/dshills/mcseed/pkg/biome"

// Layer is any node in the generation DAG.
type Layer interface {
	// GetMap computes the requested area, handling its own margin and
	// cropping.
	GetMap(area biome.Area) biome.Map
	// GetMapFromParent transforms a parent map that already covers the
	// enlarged area this layer needs for the corresponding output area.
	GetMapFromParent(parent biome.Map) biome.Map
}

// Family identifies a layer's margin policy.
type Family int

const (
	// FamilyIdentity is a 1:1 layer with no border (source layers, or
	// layers whose parent area equals the requested area exactly).
	FamilyIdentity Family = iota
	// FamilyStencil3x3 is a 1:1 layer that reads the center cell's four
	// orthogonal (and sometimes diagonal) neighbours.
	FamilyStencil3x3
	// FamilyZoom2x doubles resolution.
	FamilyZoom2x
	// FamilyVoronoi4x quadruples resolution.
	FamilyVoronoi4x
)

// ParentAreaFor returns the enlarged area a layer of the given family
// must request from its parent to be able to produce requested exactly.
func ParentAreaFor(family Family, requested biome.Area) biome.Area {
	x, z, w, h := requested.X, requested.Z, requested.W, requested.H
	switch family {
	case FamilyIdentity:
		return requested
	case FamilyStencil3x3:
		return biome.Area{X: x - 1, Z: z - 1, W: w + 2, H: h + 2}
	case FamilyZoom2x:
		return biome.Area{X: x >> 1, Z: z >> 1, W: (w >> 1) + 2, H: (h >> 1) + 2}
	case FamilyVoronoi4x:
		return biome.Area{X: (x - 2) >> 2, Z: (z - 2) >> 2, W: (w >> 2) + 3, H: (h >> 2) + 3}
	default:
		panic("layer: unknown family")
	}
}

// baseGetMap implements the GetMap half of the contract for any layer
// given its family and a GetMapFromParent-equivalent transform, by
// requesting the enlarged parent area from parentGet, transforming, and
// cropping to the requested area. Concrete layers without a real parent
// (sources) pass a parentGet that ignores its argument and produces the
// enlarged area directly.
func baseGetMap(family Family, requested biome.Area, parentGet func(biome.Area) biome.Map, transform func(biome.Map) biome.Map) biome.Map {
	parentArea := ParentAreaFor(family, requested)
	parentMap := parentGet(parentArea)
	full := transform(parentMap)
	return cropToRequested(family, requested, full)
}

// cropToRequested slices an enlarged output (whose origin sits at the
// family's parent-area convention, scaled to output resolution) down to
// exactly the requested area.
func cropToRequested(family Family, requested biome.Area, full biome.Map) biome.Map {
	out := biome.NewMap(requested)
	// full.Area.X/.Z are already expressed in the output's coordinate
	// system for every family in this package (each transform returns a
	// map whose Area matches its own enlarged/output footprint), so a
	// plain coordinate-aligned crop recovers the caller's exact area.
	for j := int64(0); j < requested.H; j++ {
		srcJ := requested.Z + j - full.Area.Z
		for i := int64(0); i < requested.W; i++ {
			srcI := requested.X + i - full.Area.X
			out.Set(i, j, full.At(srcI, srcJ))
		}
	}
	return out
}

// CachedMap wraps a Layer and memoises per-cell outputs in a map keyed on
// absolute world coordinates. It must not wrap a layer whose output
// depends on anything but (x, z) and the seed — e.g. never a layer that
// reads caller-supplied "extra biome" hints or other per-query state.
type CachedMap struct {
	inner Layer
	cache map[[2]int64]int32
}

// NewCachedMap wraps inner with per-cell memoization.
func NewCachedMap(inner Layer) *CachedMap {
	return &CachedMap{inner: inner, cache: make(map[[2]int64]int32)}
}

// GetMap fills any cached cells directly and only calls through to the
// wrapped layer for the rest.
func (c *CachedMap) GetMap(area biome.Area) biome.Map {
	out := biome.NewMap(area)
	missing := false
	for j := int64(0); j < area.H; j++ {
		for i := int64(0); i < area.W; i++ {
			key := [2]int64{area.X + i, area.Z + j}
			if v, ok := c.cache[key]; ok {
				out.Set(i, j, v)
			} else {
				missing = true
			}
		}
	}
	if !missing {
		return out
	}
	fresh := c.inner.GetMap(area)
	for j := int64(0); j < area.H; j++ {
		for i := int64(0); i < area.W; i++ {
			v := fresh.At(i, j)
			out.Set(i, j, v)
			c.cache[[2]int64{area.X + i, area.Z + j}] = v
		}
	}
	return out
}

// GetMapFromParent is not memoised: caching only makes sense at the
// absolute-coordinate GetMap boundary, since GetMapFromParent's parent
// map carries no fixed relationship to world coordinates on its own.
func (c *CachedMap) GetMapFromParent(parent biome.Map) biome.Map {
	return c.inner.GetMapFromParent(parent)
}
