package biome

// Map is a dense 2-D array of biome/category ids plus its origin. Cell
// (i, j) holds the id at world coordinate (Area.X+i, Area.Z+j). The
// element type is signed: intermediate layers use -1 as a "not river"
// sentinel, and a few helpers sum values past the range of an int16.
type Map struct {
	Area Area
	Data []int32 // row-major, length Area.W*Area.H
}

// NewMap allocates a zeroed Map for the given area.
func NewMap(a Area) Map {
	return Map{Area: a, Data: make([]int32, a.W*a.H)}
}

// At returns the id at local offset (i, j) within the map.
func (m Map) At(i, j int64) int32 {
	return m.Data[j*m.Area.W+i]
}

// Set stores the id at local offset (i, j) within the map.
func (m Map) Set(i, j int64, v int32) {
	m.Data[j*m.Area.W+i] = v
}

// AtWorld returns the id at absolute world coordinate (x, z). It panics
// if (x, z) is outside m.Area.
func (m Map) AtWorld(x, z int64) int32 {
	if !m.Area.Contains(x, z) {
		panic("biome: AtWorld coordinate outside map area")
	}
	return m.At(x-m.Area.X, z-m.Area.Z)
}

// Crop returns a new Map holding the sub-rectangle target, which must lie
// entirely within m.Area.
func (m Map) Crop(target Area) Map {
	out := NewMap(target)
	for j := int64(0); j < target.H; j++ {
		srcJ := target.Z + j - m.Area.Z
		for i := int64(0); i < target.W; i++ {
			srcI := target.X + i - m.Area.X
			out.Set(i, j, m.At(srcI, srcJ))
		}
	}
	return out
}

// SparseMap is shaped like Map but each cell is either a known id or
// unknown. It is produced only by inverse operations that cannot recover
// every cell from partial/ambiguous evidence.
type SparseMap struct {
	Area  Area
	Data  []int32
	Known []bool
}

// NewSparseMap allocates an all-unknown SparseMap for the given area.
func NewSparseMap(a Area) SparseMap {
	return SparseMap{Area: a, Data: make([]int32, a.W*a.H), Known: make([]bool, a.W*a.H)}
}

// Get returns the id at local offset (i, j) and whether it is known.
func (m SparseMap) Get(i, j int64) (int32, bool) {
	idx := j*m.Area.W + i
	return m.Data[idx], m.Known[idx]
}

// Set records a known id at local offset (i, j).
func (m SparseMap) Set(i, j int64, v int32) {
	idx := j*m.Area.W + i
	m.Data[idx] = v
	m.Known[idx] = true
}
