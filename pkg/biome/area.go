package biome

// Area is a half-open axis-aligned rectangle on the integer grid: origin
// (X, Z) and positive extents (W, H). It describes a request into the
// pipeline, never a result — Map carries the data.
type Area struct {
	X, Z int64
	W, H int64
}

// Contains reports whether (x, z) falls within the half-open rectangle.
func (a Area) Contains(x, z int64) bool {
	return x >= a.X && x < a.X+a.W && z >= a.Z && z < a.Z+a.H
}

// Equal reports whether a and other describe the same rectangle.
func (a Area) Equal(other Area) bool {
	return a == other
}

// BoundingArea returns the smallest Area containing every point in pts.
// It panics if pts is empty — an empty point set has no bounding box.
func BoundingArea(pts [][2]int64) Area {
	if len(pts) == 0 {
		panic("biome: BoundingArea requires at least one point")
	}
	minX, minZ := pts[0][0], pts[0][1]
	maxX, maxZ := pts[0][0], pts[0][1]
	for _, p := range pts[1:] {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minZ {
			minZ = p[1]
		}
		if p[1] > maxZ {
			maxZ = p[1]
		}
	}
	return Area{X: minX, Z: minZ, W: maxX - minX + 1, H: maxZ - minZ + 1}
}
