package mapview_test

import (
	"testing"

	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biomeinfo"
	"github.com/dshills/mcseed/pkg/mapview"
)

func TestTreasureMapToColorBackgroundForId0(t *testing.T) {
	c := mapview.TreasureMapToColor(0)
	bg := biomeinfo.TreasureBackground
	if c[0] != bg.R || c[1] != bg.G || c[2] != bg.B || c[3] != 255 {
		t.Fatalf("TreasureMapToColor(0) = %v, want background %v", c, bg)
	}
}

func TestTreasureMapToColorOpaque(t *testing.T) {
	for id := int32(0); id < 64; id++ {
		c := mapview.TreasureMapToColor(id)
		if c[3] != 255 {
			t.Fatalf("TreasureMapToColor(%d) alpha = %d, want 255", id, c[3])
		}
	}
}

func TestDrawTreasureMapImageSizesCorrectly(t *testing.T) {
	m := biome.NewMap(biome.Area{X: 0, Z: 0, W: 4, H: 3})
	img := mapview.DrawTreasureMapImage(m)
	if len(img) != 4*3*4 {
		t.Fatalf("DrawTreasureMapImage len = %d, want %d", len(img), 4*3*4)
	}
}

func TestTreasureMapAtProducesFixedSizeTile(t *testing.T) {
	pmap := biome.NewMap(biome.Area{X: -128, Z: -128, W: 256, H: 256})
	for i := range pmap.Data {
		pmap.Data[i] = biomeinfo.Plains
	}
	out := mapview.TreasureMapAt(0, 0, pmap)
	if out.Area.W != 128 || out.Area.H != 128 {
		t.Fatalf("TreasureMapAt area = %+v, want 128x128", out.Area)
	}
}

func TestTreasureMapAtAllLandIsTransparent(t *testing.T) {
	pmap := biome.NewMap(biome.Area{X: -128, Z: -128, W: 256, H: 256})
	for i := range pmap.Data {
		pmap.Data[i] = biomeinfo.Plains
	}
	out := mapview.TreasureMapAt(0, 0, pmap)
	for _, v := range out.Data {
		if v != 0 {
			t.Fatalf("expected all-land tile to stay color id 0 (land/transparent), got %d", v)
		}
	}
}

func TestTreasureMapAtAllOceanIsWater(t *testing.T) {
	pmap := biome.NewMap(biome.Area{X: -128, Z: -128, W: 256, H: 256})
	for i := range pmap.Data {
		pmap.Data[i] = biomeinfo.Ocean
	}
	out := mapview.TreasureMapAt(0, 0, pmap)
	nonzero := 0
	for _, v := range out.Data {
		if v != 0 {
			nonzero++
		}
	}
	if nonzero == 0 {
		t.Fatalf("expected an all-ocean tile to produce water color ids, got all zero")
	}
}

func TestGenerateFragmentTreasureMapDeterministic(t *testing.T) {
	area := biome.Area{X: 0, Z: 0, W: 16, H: 16}
	a := mapview.GenerateFragmentTreasureMap(biome.Java1_15, area, 7)
	b := mapview.GenerateFragmentTreasureMap(biome.Java1_15, area, 7)
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("GenerateFragmentTreasureMap non-deterministic at index %d", i)
		}
	}
}

func TestGenerateImageTreasureMapAtFastDeterministic(t *testing.T) {
	a := mapview.GenerateImageTreasureMapAtFast(biome.Java1_15, 2024, 0, 0)
	b := mapview.GenerateImageTreasureMapAtFast(biome.Java1_15, 2024, 0, 0)
	if len(a) != len(b) {
		t.Fatalf("GenerateImageTreasureMapAtFast length mismatch: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("GenerateImageTreasureMapAtFast non-deterministic at byte %d", i)
		}
	}
}

func TestGenerateImageTreasureMapAtFastSizedLikeExact(t *testing.T) {
	fast := mapview.GenerateImageTreasureMapAtFast(biome.Java1_15, 99, 1, -1)
	exact := mapview.GenerateImageTreasureMapAt(biome.Java1_15, 99, 1, -1)
	if len(fast) != len(exact) {
		t.Fatalf("GenerateImageTreasureMapAtFast length = %d, want %d matching the exact renderer", len(fast), len(exact))
	}
}
