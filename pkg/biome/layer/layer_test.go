package layer

import (
	"testing"

	"github.com/dshills/mcseed/pkg/biome"
)

func TestParentAreaForIdentity(t *testing.T) {
	req := biome.Area{X: 5, Z: -3, W: 10, H: 10}
	got := ParentAreaFor(FamilyIdentity, req)
	if got != req {
		t.Fatalf("ParentAreaFor(Identity) = %+v, want %+v", got, req)
	}
}

func TestParentAreaForStencil3x3(t *testing.T) {
	req := biome.Area{X: 0, Z: 0, W: 8, H: 8}
	got := ParentAreaFor(FamilyStencil3x3, req)
	want := biome.Area{X: -1, Z: -1, W: 10, H: 10}
	if got != want {
		t.Fatalf("ParentAreaFor(Stencil3x3) = %+v, want %+v", got, want)
	}
}

func TestParentAreaForZoom2xHalvesCoordinates(t *testing.T) {
	req := biome.Area{X: 8, Z: 16, W: 8, H: 8}
	got := ParentAreaFor(FamilyZoom2x, req)
	want := biome.Area{X: 4, Z: 8, W: 6, H: 6}
	if got != want {
		t.Fatalf("ParentAreaFor(Zoom2x) = %+v, want %+v", got, want)
	}
}

func TestParentAreaForUnknownFamilyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for an unknown Family")
		}
	}()
	ParentAreaFor(Family(99), biome.Area{W: 1, H: 1})
}

// constLayer is a fixed-value source used to isolate generic scaffolding
// (baseGetMap/cropToRequested/CachedMap) from any concrete layer's logic.
type constLayer struct{ v int32 }

func (c constLayer) GetMap(area biome.Area) biome.Map {
	m := biome.NewMap(area)
	for i := range m.Data {
		m.Data[i] = c.v
	}
	return m
}
func (c constLayer) GetMapFromParent(parent biome.Map) biome.Map { return c.GetMap(parent.Area) }

func TestCachedMapReturnsUnderlyingValuesOnMiss(t *testing.T) {
	inner := constLayer{v: 42}
	cached := NewCachedMap(inner)
	area := biome.Area{X: 0, Z: 0, W: 4, H: 4}
	m := cached.GetMap(area)
	for i, v := range m.Data {
		if v != 42 {
			t.Fatalf("data[%d] = %d, want 42", i, v)
		}
	}
}

func TestCachedMapServesOverlappingRequestFromCache(t *testing.T) {
	calls := 0
	counting := countingLayer{&calls}
	cached := NewCachedMap(counting)

	cached.GetMap(biome.Area{X: 0, Z: 0, W: 4, H: 4})
	firstCalls := calls
	cached.GetMap(biome.Area{X: 0, Z: 0, W: 2, H: 2})
	if calls != firstCalls {
		t.Fatalf("a fully-cached sub-area triggered %d more inner GetMap calls, want 0", calls-firstCalls)
	}
}

type countingLayer struct{ calls *int }

func (c countingLayer) GetMap(area biome.Area) biome.Map {
	*c.calls++
	return constLayer{v: 1}.GetMap(area)
}
func (c countingLayer) GetMapFromParent(parent biome.Map) biome.Map { return c.GetMap(parent.Area) }

// checkerLayer is a source whose cells vary with a 4x4 period, giving
// zoom/voronoi tests a parent with real structure to disambiguate
// instead of a uniform short-circuit.
type checkerLayer struct{}

func (checkerLayer) GetMap(area biome.Area) biome.Map {
	out := biome.NewMap(area)
	for j := int64(0); j < area.H; j++ {
		for i := int64(0); i < area.W; i++ {
			x, z := area.X+i, area.Z+j
			out.Set(i, j, int32(((x%4+4)%4)*4+((z%4+4)%4)))
		}
	}
	return out
}
func (c checkerLayer) GetMapFromParent(parent biome.Map) biome.Map { return c.GetMap(parent.Area) }

func TestCachedMapGetMapFromParentDelegates(t *testing.T) {
	inner := constLayer{v: 7}
	cached := NewCachedMap(inner)
	parent := biome.NewMap(biome.Area{X: 0, Z: 0, W: 2, H: 2})
	out := cached.GetMapFromParent(parent)
	for _, v := range out.Data {
		if v != 7 {
			t.Fatalf("GetMapFromParent data = %d, want 7", v)
		}
	}
}
