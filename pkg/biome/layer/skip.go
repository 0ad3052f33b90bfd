package layer

import "github.com/dshills/mcseed/pkg/biome"

// Skip raises a layer's output to a finer coordinate grid by nearest-
// neighbour replication, with no randomness of its own. ZoomFactor n
// multiplies resolution by 2^n: each parent cell becomes a 2x2 block of
// identical output cells, repeated n times. ZoomFactor 0 is a pure
// passthrough.
//
// NewSkip builds the n-level chain as nested single-level Skip layers,
// mirroring how a single recursive replication step composes into a
// full 2^n zoom.
type Skip struct {
	Parent     Layer
	ZoomFactor uint8
}

// NewSkip constructs a Skip chain for the requested zoom factor.
func NewSkip(parent Layer, zoomFactor uint8) Layer {
	if zoomFactor >= 2 {
		return &Skip{Parent: NewSkip(parent, zoomFactor-1), ZoomFactor: 1}
	}
	return &Skip{Parent: parent, ZoomFactor: zoomFactor}
}

func (s *Skip) GetMap(area biome.Area) biome.Map {
	if s.ZoomFactor == 0 {
		return s.Parent.GetMap(area)
	}

	parentArea := biome.Area{
		X: area.X >> 1,
		Z: area.Z >> 1,
		W: (area.W >> 1) + 2,
		H: (area.H >> 1) + 2,
	}
	pmap := s.Parent.GetMap(parentArea)
	full := replicate2x(pmap)

	nx, nz := area.X&1, area.Z&1
	target := biome.Area{X: full.Area.X + nx, Z: full.Area.Z + nz, W: area.W, H: area.H}
	return full.Crop(target)
}

func (s *Skip) GetMapFromParent(parent biome.Map) biome.Map {
	if s.ZoomFactor == 0 {
		return parent
	}
	return replicate2x(parent)
}

func replicate2x(pmap biome.Map) biome.Map {
	pw, ph := pmap.Area.W, pmap.Area.H
	out := biome.NewMap(biome.Area{
		X: pmap.Area.X << 1,
		Z: pmap.Area.Z << 1,
		W: (pw - 1) << 1,
		H: (ph - 1) << 1,
	})
	for x := int64(0); x < pw-1; x++ {
		for z := int64(0); z < ph-1; z++ {
			a := pmap.At(x, z)
			out.Set((x<<1)+0, (z<<1)+0, a)
			out.Set((x<<1)+0, (z<<1)+1, a)
			out.Set((x<<1)+1, (z<<1)+0, a)
			out.Set((x<<1)+1, (z<<1)+1, a)
		}
	}
	return out
}
