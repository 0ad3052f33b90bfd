package layer

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/mcrng"
)

// VoronoiZoom115 is the 4x final-zoom layer used from version 1.15
// onward. Unlike VoronoiZoom it jitters in three dimensions (a fixed
// y is folded in so the same lattice could in principle back a 3D
// voronoi diagram, though this pipeline only ever samples y = -1/-2)
// and seeds its jitter from a SHA-256 hash of the world seed rather
// than the base-seed/world-seed McRng chain every earlier layer uses.
type VoronoiZoom115 struct {
	Parent          Layer
	HashedWorldSeed int64
}

// NewVoronoiZoom115 builds the layer, hashing worldSeed once up front.
func NewVoronoiZoom115(parent Layer, worldSeed uint64) *VoronoiZoom115 {
	return &VoronoiZoom115{Parent: parent, HashedWorldSeed: sha256LongToLong(int64(worldSeed))}
}

// sha256LongToLong hashes the little-endian bytes of x and reinterprets
// the first 8 hash bytes as a little-endian int64.
func sha256LongToLong(x int64) int64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(x))
	sum := sha256.Sum256(buf[:])
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}

func (v *VoronoiZoom115) GetMap(area biome.Area) biome.Map {
	parea := biome.Area{
		X: (area.X - 2) >> 2,
		Z: (area.Z - 2) >> 2,
		W: (area.W >> 2) + 2 + 1,
		H: (area.H >> 2) + 2 + 1,
	}
	pmap := v.Parent.GetMap(parea)
	full := v.GetMapFromParent(pmap)

	nx, nz := (area.X-2)&3, (area.Z-2)&3
	target := biome.Area{X: full.Area.X + nx, Z: full.Area.Z + nz, W: area.W, H: area.H}
	return full.Crop(target)
}

func (v *VoronoiZoom115) GetMapFromParent(pmap biome.Map) biome.Map {
	pw, ph := pmap.Area.W, pmap.Area.H
	px, pz := pmap.Area.X, pmap.Area.Z
	out := biome.NewMap(biome.Area{
		X: (px << 2) + 2,
		Z: (pz << 2) + 2,
		W: (pw - 1) << 2,
		H: (ph - 1) << 2,
	})

	for x := int64(0); x < pw-1; x++ {
		v00 := pmap.At(x, 0)
		v10 := pmap.At(x+1, 0)
		for z := int64(0); z < ph-1; z++ {
			v01 := pmap.At(x, z+1)
			v11 := pmap.At(x+1, z+1)

			if v00 == v01 && v00 == v10 && v00 == v11 {
				for j := int64(0); j < 4; j++ {
					for i := int64(0); i < 4; i++ {
						out.Set((x<<2)+i, (z<<2)+j, v00)
					}
				}
				v00, v10 = v01, v11
				continue
			}

			posOffset := voronoi115PosOffset(v.HashedWorldSeed, px+x, -1, pz+z)
			biomeAt := [8]int32{v00, v01, v00, v01, v10, v11, v10, v11}
			for j := int32(0); j < 4; j++ {
				for i := int32(0); i < 4; i++ {
					val := mapVoronoi115(i, -2, j, &posOffset, &biomeAt)
					out.Set((x<<2)+int64(i), (z<<2)+int64(j), val)
				}
			}

			v00, v10 = v01, v11
		}
	}
	return out
}

type vec3 struct{ x, y, z float64 }

func voronoi115PosOffset(seed, px, py, pz int64) [8]vec3 {
	var posOffset [8]vec3
	for i := 0; i < 8; i++ {
		flagx := i&4 == 0
		flagy := i&2 == 0
		flagz := i&1 == 0

		x1, y1, z1 := px, py, pz
		if !flagx {
			x1++
		}
		if !flagy {
			y1++
		}
		if !flagz {
			z1++
		}

		o := randOffset3D(seed, x1, y1, z1)
		if !flagx {
			o.x--
		}
		if !flagy {
			o.y--
		}
		if !flagz {
			o.z--
		}
		posOffset[i] = o
	}
	return posOffset
}

func randOffset3D(seed, x, y, z int64) vec3 {
	randOffset := func(s int64) float64 {
		d := float64(mcrng.FloorDiv(s>>24, 1024)) / 1024.0
		return (d - 0.5) * 0.9
	}

	r := mcrng.Mix(uint64(seed), uint64(x))
	r = mcrng.Mix(r, uint64(y))
	r = mcrng.Mix(r, uint64(z))
	r = mcrng.Mix(r, uint64(x))
	r = mcrng.Mix(r, uint64(y))
	r = mcrng.Mix(r, uint64(z))
	dx := randOffset(int64(r))

	r = mcrng.Mix(r, uint64(seed))
	dy := randOffset(int64(r))

	r = mcrng.Mix(r, uint64(seed))
	dz := randOffset(int64(r))

	return vec3{dx, dy, dz}
}

func modSquared3D(x, y, z float64) float64 {
	return z*z + y*y + x*x
}

func mapVoronoi115(x, y, z int32, posOffset *[8]vec3, biomeAt *[8]int32) int32 {
	dx := float64(x&3) / 4.0
	dy := float64(y&3) / 4.0
	dz := float64(z&3) / 4.0

	var dists [8]float64
	for i := 0; i < 8; i++ {
		dists[i] = modSquared3D(posOffset[i].x+dx, posOffset[i].y+dy, posOffset[i].z+dz)
	}

	minIdx := 0
	for i := 1; i < 8; i++ {
		if dists[i] < dists[minIdx] {
			minIdx = i
		}
	}
	return biomeAt[minIdx]
}
