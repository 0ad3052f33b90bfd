package mapview

import (
	"math"

	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biome/layer"
	"github.com/dshills/mcseed/pkg/biome/pipeline"
	"github.com/dshills/mcseed/pkg/biomeinfo"
)

// treasure color ids a classified pixel can take before the ×4 shade
// split; color 0 is reserved (rendered transparent over parchment).
const (
	colorLand  = 0
	colorWater = 15
	colorShore = 26
)

// classifyTreasurePixel applies the in-game treasure-map land/water/shore
// classifier to the cell at local offset (x, z) of pmap, which must carry
// a 1-cell margin on every side. x and z are pixel coordinates within the
// map being produced, used only for the sinusoidal long-water-stretch
// shading.
func classifyTreasurePixel(pmap biome.Map, x, z int64) int32 {
	numWaterNeighbors := 8
	for i := int64(0); i < 3; i++ {
		for j := int64(0); j < 3; j++ {
			if i == 1 && j == 1 {
				continue
			}
			if biomeinfo.IsLand(pmap.At(x-1+i+1, z-1+j+1)) {
				numWaterNeighbors--
			}
		}
	}

	color := int32(colorLand)
	variant := int32(3)

	center := pmap.At(x+1, z+1)
	switch {
	case !biomeinfo.IsLand(center):
		color = colorWater
		switch {
		case numWaterNeighbors > 7 && z%2 == 0:
			v := (x%128 + int64(math.Sin(float64(z%128))*7.0)) / 8 % 5
			switch v {
			case 3:
				v = 1
			case 4:
				v = 0
			}
			variant = int32(v)
		case numWaterNeighbors > 7:
			color = colorLand
		case numWaterNeighbors > 5:
			variant = 1
		case numWaterNeighbors > 3:
			variant = 0
		case numWaterNeighbors > 1:
			variant = 0
		}
	case numWaterNeighbors > 0:
		color = colorShore
		if numWaterNeighbors > 3 {
			variant = 1
		} else {
			variant = 3
		}
	}

	if color == colorLand {
		return 0
	}
	return color*4 + variant
}

// treasureFromMargined renders the treasure-map classifier over pmap,
// which must carry a 1-cell margin on every side (pmap.Area.W ==
// area.W+2), returning a Map sized to the unmargined interior.
func treasureFromMargined(pmap biome.Map) biome.Map {
	area := biome.Area{X: pmap.Area.X + 1, Z: pmap.Area.Z + 1, W: pmap.Area.W - 2, H: pmap.Area.H - 2}
	out := biome.NewMap(area)
	for x := int64(0); x < area.W; x++ {
		for z := int64(0); z < area.H; z++ {
			out.Set(x, z, classifyTreasurePixel(pmap, x, z))
		}
	}
	return out
}

// treasureLayer adapts treasureFromMargined into a Layer, requesting the
// 1-cell margin its parent needs from whatever feeds it.
type treasureLayer struct{ parent layer.Layer }

func (t treasureLayer) GetMap(area biome.Area) biome.Map {
	pArea := biome.Area{X: area.X - 1, Z: area.Z - 1, W: area.W + 2, H: area.H + 2}
	return treasureFromMargined(t.parent.GetMap(pArea))
}
func (t treasureLayer) GetMapFromParent(parent biome.Map) biome.Map {
	return treasureFromMargined(parent)
}

// GenerateFragmentTreasureMap renders a biome Map at the same 1:2 scale
// and color-index encoding an in-game treasure map uses, from the
// pre-voronoi pipeline checkpoint scaled up through a HalfVoronoiZoom.
func GenerateFragmentTreasureMap(version biome.Version, area biome.Area, worldSeed uint64) biome.Map {
	parent := pipeline.BuildPreVoronoi(version, worldSeed)
	hv := &layer.HalfVoronoiZoom{Parent: parent, BaseSeed: 10, WorldSeed: worldSeed}
	return treasureLayer{parent: hv}.GetMap(area)
}

// TreasureMapAt renders the fixed 128×128 (126×126 usable, 1-pixel
// border) tile an in-game treasure map covers for (fragmentX, fragmentZ),
// from a full-resolution biome Map pmap already covering that tile at
// 2:1 scale (pmap must be 256×256, aligned so pmap's local index (i, j)
// corresponds to that tile's (i/2, j/2)).
func TreasureMapAt(fragmentX, fragmentZ int64, pmap biome.Map) biome.Map {
	cornerX := (fragmentX*256 - 64) / 2
	cornerZ := (fragmentZ*256 - 64) / 2
	area := biome.Area{X: cornerX, Z: cornerZ, W: 128, H: 128}
	out := biome.NewMap(area)

	for x := int64(1); x < area.W-1; x++ {
		for z := int64(1); z < area.H-1; z++ {
			numWaterNeighbors := 8
			for i := int64(0); i < 3; i++ {
				for j := int64(0); j < 3; j++ {
					if i == 1 && j == 1 {
						continue
					}
					if biomeinfo.IsLand(pmap.At((x-1+i)*2, (z-1+j)*2)) {
						numWaterNeighbors--
					}
				}
			}

			color := int32(colorLand)
			variant := int32(3)
			v11 := pmap.At(x*2, z*2)

			switch {
			case !biomeinfo.IsLand(v11):
				color = colorWater
				switch {
				case numWaterNeighbors > 7 && z%2 == 0:
					v := (x%128 + int64(math.Sin(float64(z%128))*7.0)) / 8 % 5
					switch v {
					case 3:
						v = 1
					case 4:
						v = 0
					}
					variant = int32(v)
				case numWaterNeighbors > 7:
					color = colorLand
				case numWaterNeighbors > 5:
					variant = 1
				case numWaterNeighbors > 3:
					variant = 0
				case numWaterNeighbors > 1:
					variant = 0
				}
			case numWaterNeighbors > 0:
				color = colorShore
				if numWaterNeighbors > 3 {
					variant = 1
				} else {
					variant = 3
				}
			}

			if color != colorLand {
				out.Set(x, z, color*4+variant)
			}
		}
	}
	return out
}

// TreasureMapToColor resolves a treasure-map color-index id (as produced
// by TreasureMapAt / GenerateFragmentTreasureMap) to an RGBA pixel.
func TreasureMapToColor(id int32) [4]byte {
	idx, variant := id/4, id%4
	base := biomeinfo.TreasureBackground
	if idx != 0 {
		base = biomeinfo.TreasurePalette[idx]
	}
	c := biomeinfo.ColorVariant(base, biomeinfo.TreasureShadeRatios[variant])
	return [4]byte{c.R, c.G, c.B, 255}
}

// DrawTreasureMapImage renders m (a treasure-map color-index Map) to a
// row-major RGBA byte slice.
func DrawTreasureMapImage(m biome.Map) []byte {
	out := make([]byte, m.Area.W*m.Area.H*4)
	for x := int64(0); x < m.Area.W; x++ {
		for z := int64(0); z < m.Area.H; z++ {
			c := TreasureMapToColor(m.At(x, z))
			i := (z*m.Area.W + x) * 4
			copy(out[i:i+4], c[:])
		}
	}
	return out
}

// GenerateImageTreasureMapAt renders the full in-game-aligned treasure
// map image for (fragmentX, fragmentZ) at the given world seed, running
// the full pipeline up to the final voronoi zoom.
func GenerateImageTreasureMapAt(version biome.Version, worldSeed uint64, fragmentX, fragmentZ int64) []byte {
	cornerX := fragmentX*256 - 64
	cornerZ := fragmentZ*256 - 64
	area := biome.Area{X: cornerX, Z: cornerZ, W: 256, H: 256}
	root := pipeline.Build(version, worldSeed)
	pmap := root.GetMap(area)
	m := TreasureMapAt(fragmentX, fragmentZ, pmap)
	return DrawTreasureMapImage(m)
}

// GenerateImageTreasureMapAtFast renders the same fragment as
// GenerateImageTreasureMapAt but skips the real final voronoi zoom: the
// pre-voronoi checkpoint sits at 1:4 scale, and Skip(2) replicates each
// of its cells into the 4x4 block of full-resolution cells it covers
// instead of running voronoi's per-cell jitter. This is the same
// nearest-neighbour shortcut the upstream treasure map renderer notes as
// untried ("only 1:1 maps are implemented"; real per-fragment renders
// fall back to the full build): shore/variant boundaries it draws will
// disagree with the true in-game map near voronoi cell borders, but the
// coarse land/water/shore classification it is built on is unaffected,
// and it avoids computing the final zoom at all.
func GenerateImageTreasureMapAtFast(version biome.Version, worldSeed uint64, fragmentX, fragmentZ int64) []byte {
	cornerX := fragmentX*256 - 64
	cornerZ := fragmentZ*256 - 64
	area := biome.Area{X: cornerX, Z: cornerZ, W: 256, H: 256}
	checkpoint := pipeline.BuildPreVoronoi(version, worldSeed)
	upscaled := layer.NewSkip(checkpoint, 2)
	pmap := upscaled.GetMap(area)
	m := TreasureMapAt(fragmentX, fragmentZ, pmap)
	return DrawTreasureMapImage(m)
}
