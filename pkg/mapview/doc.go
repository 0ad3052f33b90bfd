// Package mapview renders a biome Map to RGBA pixels and to treasure-map
// color indices, and provides an SVG debug view of either.
package mapview
