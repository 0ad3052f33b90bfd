// Package pipeline assembles the fixed per-version layer DAGs: Build
// wires together every concrete layer in pkg/biome/layer into the exact
// graph a given biome.Version uses, so callers never have to hand-assemble
// layers themselves.
package pipeline

import (
	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biome/layer"
)

// Build returns the root layer of the DAG for the given version and
// world seed. Calling GetMap on the result reproduces that version's
// full biome generation pipeline.
func Build(version biome.Version, worldSeed uint64) layer.Layer {
	nodes := nodesFor(version, worldSeed)
	return nodes[len(nodes)-1]
}

// BuildPreVoronoi returns the layer immediately feeding the final voronoi
// zoom: RiverMix itself for 1.7, or the OceanMix layer for 1.13+. Treasure
// map rendering operates at this 1:4 pre-voronoi resolution rather than
// the full 1:1 resolution Build returns, so it asks for this checkpoint
// directly instead of unwinding Build's final layer.
func BuildPreVoronoi(version biome.Version, worldSeed uint64) layer.Layer {
	nodes := nodesFor(version, worldSeed)
	return nodes[len(nodes)-2]
}

// BuildUpToLayer returns the node at layerIndex in the fixed per-version
// node ordering: 0 is the world's root Island layer, and the highest
// index is the same final layer Build returns. Every intermediate layer
// in the graph is independently addressable, mirroring the Rust
// generator_up_to_layer family, whose fixed if-ladder this numbering is
// taken from directly: indices 0-17 the shared landmass prefix, 18 the
// biome layer (fused with AddBamboo on versions that carry it), 19-41 the
// biome-edge/hills/river branches, 42 RiverMix, and on 1.13+ 43-49 the
// ocean-temperature branch, 50 OceanMix, 51 the final voronoi zoom.
// BuildUpToLayer panics if layerIndex is out of range for the version.
func BuildUpToLayer(version biome.Version, worldSeed uint64, layerIndex int) layer.Layer {
	nodes := nodesFor(version, worldSeed)
	if layerIndex < 0 || layerIndex >= len(nodes) {
		panic("pipeline: layer index out of range")
	}
	return nodes[layerIndex]
}

// NumLayers reports how many addressable nodes BuildUpToLayer accepts
// for the given version.
func NumLayers(version biome.Version) int {
	return len(nodesFor(version, 0))
}

// nodesFor returns every node of the version's DAG in construction
// order, index-for-index identical to the Rust reference numbering.
func nodesFor(version biome.Version, worldSeed uint64) []layer.Layer {
	switch version {
	case biome.Java1_7:
		return nodes17(worldSeed)
	case biome.Java1_13:
		return nodesFull(worldSeed, false, false)
	case biome.Java1_14:
		return nodesFull(worldSeed, true, false)
	case biome.Java1_15:
		return nodesFull(worldSeed, true, true)
	default:
		return nodesFull(worldSeed, true, true)
	}
}

// nodesUpToRiverMix assembles the shared prefix common to every version,
// from the root Island layer up to and including RiverMix at index 42,
// returning every intermediate node in construction order. bamboo fuses
// AddBamboo onto the biome layer at index 18 for 1.14+; voronoi115 has
// no effect here (VoronoiZoom115 only ever appears as the final layer)
// but is threaded through for symmetry with nodesFull.
func nodesUpToRiverMix(worldSeed uint64, bamboo, voronoi115 bool) []layer.Layer {
	_ = voronoi115
	nodes := make([]layer.Layer, 0, 43)
	add := func(l layer.Layer) layer.Layer { nodes = append(nodes, l); return l }

	g0 := add(&layer.Island{BaseSeed: 1, WorldSeed: worldSeed})
	g1 := add(&layer.Zoom{Parent: g0, BaseSeed: 2000, WorldSeed: worldSeed, Fuzzy: true})
	g2 := add(layer.NewAddIsland(g1, 1, worldSeed))
	g3 := add(&layer.Zoom{Parent: g2, BaseSeed: 2001, WorldSeed: worldSeed})
	g4 := add(layer.NewAddIsland(g3, 2, worldSeed))
	g5 := add(layer.NewAddIsland(g4, 50, worldSeed))
	g6 := add(layer.NewAddIsland(g5, 70, worldSeed))
	g7 := add(layer.NewRemoveTooMuchOcean(g6, 2, worldSeed))
	g8 := add(layer.NewAddSnow(g7, 2, worldSeed))
	g9 := add(layer.NewAddIsland(g8, 3, worldSeed))
	g10 := add(layer.NewCoolWarm(g9, 2, worldSeed))
	g11 := add(layer.NewHeatIce(g10, 2, worldSeed))
	g12 := add(&layer.Special{Parent: g11, BaseSeed: 3, WorldSeed: worldSeed})
	g13 := add(&layer.Zoom{Parent: g12, BaseSeed: 2002, WorldSeed: worldSeed})
	g14 := add(&layer.Zoom{Parent: g13, BaseSeed: 2003, WorldSeed: worldSeed})
	g15 := add(layer.NewAddIsland(g14, 4, worldSeed))
	g16 := add(layer.NewAddMushroomIsland(g15, 5, worldSeed))
	g17 := add(layer.NewDeepOcean(g16, 4, worldSeed))

	var biomeLayer layer.Layer = &layer.Biome{Parent: g17, BaseSeed: 200, WorldSeed: worldSeed}
	if bamboo {
		biomeLayer = layer.NewAddBamboo(biomeLayer, 1001, worldSeed)
	}
	g18 := add(biomeLayer)
	g19 := add(&layer.Zoom{Parent: g18, BaseSeed: 1000, WorldSeed: worldSeed})
	g20 := add(&layer.Zoom{Parent: g19, BaseSeed: 1001, WorldSeed: worldSeed})
	g21 := add(layer.NewBiomeEdge(g20, 1000, worldSeed))

	g22 := add(layer.NewRiverInit(g17, 100, worldSeed))
	g23 := add(&layer.Zoom{Parent: g22, BaseSeed: 1000, WorldSeed: worldSeed, WorldSeedNotSet: true})
	g24 := add(&layer.Zoom{Parent: g23, BaseSeed: 1001, WorldSeed: worldSeed, WorldSeedNotSet: true})
	g25 := add(&layer.Hills{Biome: g21, River: g24, BaseSeed: 1000, WorldSeed: worldSeed})
	g26 := add(layer.NewRareBiome(g25, 1001, worldSeed))
	g27 := add(&layer.Zoom{Parent: g26, BaseSeed: 1000, WorldSeed: worldSeed})
	g28 := add(layer.NewAddIsland(g27, 3, worldSeed))
	g29 := add(&layer.Zoom{Parent: g28, BaseSeed: 1001, WorldSeed: worldSeed})
	g30 := add(layer.NewShore(g29, 1000, worldSeed))
	g31 := add(&layer.Zoom{Parent: g30, BaseSeed: 1002, WorldSeed: worldSeed})
	g32 := add(&layer.Zoom{Parent: g31, BaseSeed: 1003, WorldSeed: worldSeed})
	g33 := add(layer.NewSmooth(g32, 1000, worldSeed))

	g34 := add(&layer.Zoom{Parent: g22, BaseSeed: 1000, WorldSeed: worldSeed})
	g35 := add(&layer.Zoom{Parent: g34, BaseSeed: 1001, WorldSeed: worldSeed})
	g36 := add(&layer.Zoom{Parent: g35, BaseSeed: 1000, WorldSeed: worldSeed})
	g37 := add(&layer.Zoom{Parent: g36, BaseSeed: 1001, WorldSeed: worldSeed})
	g38 := add(&layer.Zoom{Parent: g37, BaseSeed: 1002, WorldSeed: worldSeed})
	g39 := add(&layer.Zoom{Parent: g38, BaseSeed: 1003, WorldSeed: worldSeed})
	g40 := add(layer.NewRiver(g39, 1, worldSeed))
	g41 := add(layer.NewSmooth(g40, 1000, worldSeed))

	add(&layer.RiverMix{Biome: g33, River: g41, BaseSeed: 100, WorldSeed: worldSeed})

	return nodes
}

// nodes17 extends nodesUpToRiverMix with 1.7's final voronoi zoom at
// index 43, with no ocean-temperature branch.
func nodes17(worldSeed uint64) []layer.Layer {
	nodes := nodesUpToRiverMix(worldSeed, false, false)
	riverMix := nodes[len(nodes)-1]
	nodes = append(nodes, &layer.VoronoiZoom{Parent: riverMix, BaseSeed: 10, WorldSeed: worldSeed})
	return nodes
}

// nodesFull extends nodesUpToRiverMix with the 1.13+ ocean-temperature
// branch (indices 43-49), OceanMix (50), and the final voronoi zoom
// (51), using VoronoiZoom115 in place of the legacy VoronoiZoom when
// voronoi115 is set.
func nodesFull(worldSeed uint64, bamboo, voronoi115 bool) []layer.Layer {
	nodes := nodesUpToRiverMix(worldSeed, bamboo, voronoi115)
	riverMix := nodes[len(nodes)-1]
	add := func(l layer.Layer) layer.Layer { nodes = append(nodes, l); return l }

	o0 := add(layer.NewOceanTemp(worldSeed))
	o1 := add(&layer.Zoom{Parent: o0, BaseSeed: 2001, WorldSeed: worldSeed})
	o2 := add(&layer.Zoom{Parent: o1, BaseSeed: 2002, WorldSeed: worldSeed})
	o3 := add(&layer.Zoom{Parent: o2, BaseSeed: 2003, WorldSeed: worldSeed})
	o4 := add(&layer.Zoom{Parent: o3, BaseSeed: 2004, WorldSeed: worldSeed})
	o5 := add(&layer.Zoom{Parent: o4, BaseSeed: 2005, WorldSeed: worldSeed})
	o6 := add(&layer.Zoom{Parent: o5, BaseSeed: 2006, WorldSeed: worldSeed})

	oceanMix := add(&layer.OceanMix{Land: riverMix, Ocean: o6, BaseSeed: 100, WorldSeed: worldSeed})

	if voronoi115 {
		add(layer.NewVoronoiZoom115(oceanMix, worldSeed))
	} else {
		add(&layer.VoronoiZoom{Parent: oceanMix, BaseSeed: 10, WorldSeed: worldSeed})
	}
	return nodes
}
