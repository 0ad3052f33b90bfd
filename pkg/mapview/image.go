package mapview

import (
	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biome/pipeline"
	"github.com/dshills/mcseed/pkg/biomeinfo"
)

// BiomeToColor resolves a biome id to its RGBA swatch. Rare-variant ids
// (128-167, the RareBiome range) brighten each channel by 40 with
// saturating addition, the same highlight the reference applies so a
// mutated biome reads as a lighter tint of its base on a rendered map.
func BiomeToColor(id int32) [4]byte {
	id &= 0xFF
	c := biomeinfo.RGBFor(id)
	if id >= 128 && id <= 167 {
		return [4]byte{saturatingAdd(c.R, 40), saturatingAdd(c.G, 40), saturatingAdd(c.B, 40), 255}
	}
	return [4]byte{c.R, c.G, c.B, 255}
}

func saturatingAdd(v uint8, delta int) uint8 {
	sum := int(v) + delta
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// DrawMapImage renders m to a row-major RGBA byte slice via BiomeToColor.
func DrawMapImage(m biome.Map) []byte {
	out := make([]byte, m.Area.W*m.Area.H*4)
	for x := int64(0); x < m.Area.W; x++ {
		for z := int64(0); z < m.Area.H; z++ {
			c := BiomeToColor(m.At(x, z))
			i := (z*m.Area.W + x) * 4
			copy(out[i:i+4], c[:])
		}
	}
	return out
}

// GenerateImage builds the full biome map for (version, area, worldSeed)
// and renders it straight to RGBA pixels.
func GenerateImage(version biome.Version, area biome.Area, worldSeed uint64) []byte {
	m := pipeline.Build(version, worldSeed).GetMap(area)
	return DrawMapImage(m)
}
