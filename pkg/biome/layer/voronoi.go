package layer

import (
	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/mcrng"
)

// VoronoiZoom magnifies its parent by four. For each parent 2x2 block it
// jitters four points inside a 3.6-wide square around each corner, then
// assigns every one of the 16 output pixels to the nearest jittered
// point. When all four corners of a parent 2x2 block are equal, the 4x4
// output block is filled with that value and no jitter is drawn for it.
type VoronoiZoom struct {
	Parent    Layer
	BaseSeed  uint64
	WorldSeed uint64
}

func (v *VoronoiZoom) GetMap(area biome.Area) biome.Map {
	return baseGetMap(FamilyVoronoi4x, area, v.Parent.GetMap, v.GetMapFromParent)
}

// GetMapFromParent expects parent.Area.W,H >= 2; it produces an output of
// size (W-1)*4 x (H-1)*4 anchored so that parent cell (0,0) maps to
// output (0,0).
func (v *VoronoiZoom) GetMapFromParent(parent biome.Map) biome.Map {
	pw, ph := parent.Area.W, parent.Area.H
	outArea := biome.Area{
		X: (parent.Area.X << 2) + 2,
		Z: (parent.Area.Z << 2) + 2,
		W: (pw - 1) << 2,
		H: (ph - 1) << 2,
	}
	out := biome.NewMap(outArea)
	rng := &mcrng.McRng{}
	rng.SetBaseSeed(v.BaseSeed)
	rng.SetWorldSeed(v.WorldSeed)

	for x := int64(0); x < pw-1; x++ {
		v00 := parent.At(x, 0)
		v10 := parent.At(x+1, 0)
		for z := int64(0); z < ph-1; z++ {
			v01 := parent.At(x, z+1)
			v11 := parent.At(x+1, z+1)

			if v00 == v01 && v00 == v10 && v00 == v11 {
				for j := int64(0); j < 4; j++ {
					for i := int64(0); i < 4; i++ {
						out.Set(x<<2+i, z<<2+j, v00)
					}
				}
				v00 = v01
				v10 = v11
				continue
			}

			px, pz := parent.Area.X, parent.Area.Z

			rng.SetChunkSeed((x+px)<<2, (z+pz)<<2)
			da1 := (float64(rng.NextIntN(1024))/1024.0-0.5)*3.6
			da2 := (float64(rng.NextIntN(1024))/1024.0-0.5)*3.6

			rng.SetChunkSeed((x+px+1)<<2, (z+pz)<<2)
			db1 := (float64(rng.NextIntN(1024))/1024.0-0.5)*3.6 + 4.0
			db2 := (float64(rng.NextIntN(1024))/1024.0 - 0.5) * 3.6

			rng.SetChunkSeed((x+px)<<2, (z+pz+1)<<2)
			dc1 := (float64(rng.NextIntN(1024))/1024.0 - 0.5) * 3.6
			dc2 := (float64(rng.NextIntN(1024))/1024.0-0.5)*3.6 + 4.0

			rng.SetChunkSeed((x+px+1)<<2, (z+pz+1)<<2)
			dd1 := (float64(rng.NextIntN(1024))/1024.0-0.5)*3.6 + 4.0
			dd2 := (float64(rng.NextIntN(1024))/1024.0-0.5)*3.6 + 4.0

			for j := int64(0); j < 4; j++ {
				for i := int64(0); i < 4; i++ {
					fi, fj := float64(i), float64(j)
					da := (fj-da2)*(fj-da2) + (fi-da1)*(fi-da1)
					db := (fj-db2)*(fj-db2) + (fi-db1)*(fi-db1)
					dc := (fj-dc2)*(fj-dc2) + (fi-dc1)*(fi-dc1)
					dd := (fj-dd2)*(fj-dd2) + (fi-dd1)*(fi-dd1)

					var val int32
					switch {
					case da < db && da < dc && da < dd:
						val = v00
					case db < da && db < dc && db < dd:
						val = v10
					case dc < da && dc < db && dc < dd:
						val = v01
					default:
						val = v11
					}
					out.Set(x<<2+i, z<<2+j, val)
				}
			}

			v00 = v01
			v10 = v11
		}
	}
	return out
}

// HalfVoronoiZoom runs a full VoronoiZoom and downsamples 2:1, used by
// the treasure-map renderer which only needs 1:2 resolution relative to
// the full biome map.
type HalfVoronoiZoom struct {
	Parent    Layer
	BaseSeed  uint64
	WorldSeed uint64
}

func (h *HalfVoronoiZoom) GetMap(area biome.Area) biome.Map {
	// GetMapFromParent places half-map cell h at 2*parent.Area.X+1+h, so
	// the parent must start at (area.X-1)>>1 for the result to cover area.
	parentArea := biome.Area{X: (area.X - 1) >> 1, Z: (area.Z - 1) >> 1, W: (area.W >> 1) + 2, H: (area.H >> 1) + 2}
	parent := h.Parent.GetMap(parentArea)
	return h.GetMapFromParent(parent).Crop(area)
}

func (h *HalfVoronoiZoom) GetMapFromParent(parent biome.Map) biome.Map {
	vz := &VoronoiZoom{BaseSeed: h.BaseSeed, WorldSeed: h.WorldSeed}
	vmap := vz.GetMapFromParent(parent)
	marea := biome.Area{X: vmap.Area.X >> 1, Z: vmap.Area.Z >> 1, W: vmap.Area.W >> 1, H: vmap.Area.H >> 1}
	out := biome.NewMap(marea)
	for x := int64(0); x < marea.W; x++ {
		for z := int64(0); z < marea.H; z++ {
			out.Set(x, z, vmap.At(x*2, z*2))
		}
	}
	return out
}
