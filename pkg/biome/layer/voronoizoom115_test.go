package layer

import (
	"testing"

	"github.com/dshills/mcseed/pkg/biome"
)

func TestVoronoiZoom115QuadruplesResolution(t *testing.T) {
	v := NewVoronoiZoom115(checkerLayer{}, 42)
	area := biome.Area{X: 0, Z: 0, W: 8, H: 8}
	out := v.GetMap(area)
	if out.Area.W != area.W || out.Area.H != area.H {
		t.Fatalf("VoronoiZoom115 output area = %+v, want size matching %+v", out.Area, area)
	}
}

func TestVoronoiZoom115UniformParentShortCircuits(t *testing.T) {
	v := NewVoronoiZoom115(constLayer{v: 6}, 42)
	out := v.GetMap(biome.Area{X: 0, Z: 0, W: 8, H: 8})
	for i, got := range out.Data {
		if got != 6 {
			t.Fatalf("data[%d] = %d, want 6", i, got)
		}
	}
}

func TestVoronoiZoom115Deterministic(t *testing.T) {
	mk := func() biome.Map {
		v := NewVoronoiZoom115(checkerLayer{}, 99)
		return v.GetMap(biome.Area{X: -4, Z: 1, W: 8, H: 8})
	}
	a, b := mk(), mk()
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("VoronoiZoom115 non-deterministic at %d", i)
		}
	}
}

func TestVoronoiZoom115DiffersFromLegacyVoronoiZoom(t *testing.T) {
	area := biome.Area{X: 0, Z: 0, W: 16, H: 16}
	legacy := (&VoronoiZoom{Parent: checkerLayer{}, BaseSeed: 10, WorldSeed: 42}).GetMap(area)
	modern := NewVoronoiZoom115(checkerLayer{}, 42).GetMap(area)
	same := true
	for i := range legacy.Data {
		if legacy.Data[i] != modern.Data[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("VoronoiZoom115 produced identical output to the legacy VoronoiZoom over a 16x16 checkered area")
	}
}

func TestSha256LongToLongDeterministic(t *testing.T) {
	a := sha256LongToLong(42)
	b := sha256LongToLong(42)
	if a != b {
		t.Fatalf("sha256LongToLong not deterministic: %d != %d", a, b)
	}
	if a == sha256LongToLong(43) {
		t.Fatalf("sha256LongToLong(42) == sha256LongToLong(43), want different hashes")
	}
}
