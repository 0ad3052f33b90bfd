// Package layer implements the Layer abstraction and every concrete
// layer the pipeline is assembled from.
//
// # Overview
//
// A Layer exposes two operations: GetMap, which computes a parent area
// (enlarged by the layer's margin), requests it from the layer's parent,
// transforms it, and crops back to exactly what was asked for; and
// GetMapFromParent, which does the transform alone, given a parent Map
// that already covers the enlarged area. Pipelines call GetMap only on
// the final layer; every intermediate GetMapFromParent call is driven by
// the layer above it.
//
// # Margins
//
// Four margin families cover every concrete layer below: no-border 1:1,
// 3x3-stencil 1:1, 2x zoom, and 4x voronoi zoom. ParentAreaFor computes
// the enlarged parent area for a given family; Crop restores the caller's
// exact area afterward.
package layer
