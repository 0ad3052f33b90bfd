// Package biome holds the data model of the layered biome-generation
// pipeline (Area, Map, SparseMap) and the Version selector. The Layer
// abstraction and the concrete layers, built on top of pkg/mcrng and
// pkg/javarng, live in pkg/biome/layer; the four version-specific
// pipelines are assembled from them in pkg/biome/pipeline.
//
// # Overview
//
// Generation is pull-based. A caller asks the final layer in a DAG for an
// Area; each layer enlarges that area by its own margin, asks its parent
// for the enlarged area, transforms the parent's Map, and crops back down
// to what was requested. The DAG is rebuilt per query and is cheap: layers
// are thin structs over an McRng/JavaRng pair, not long-lived workers.
//
// # Determinism
//
// pipeline.Build(version, seed).GetMap(area) is pure given (version,
// area, seed): no layer reads wall-clock
// time, environment state, or anything but its parent Map and its own
// seeded PRNG. CachedMap, the only stateful wrapper, only memoises; it
// never changes an output.
package biome
