package mapview_test

import (
	"bytes"
	"testing"

	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biomeinfo"
	"github.com/dshills/mcseed/pkg/mapview"
)

func TestExportSVGRejectsEmptyArea(t *testing.T) {
	m := biome.Map{Area: biome.Area{X: 0, Z: 0, W: 0, H: 0}}
	if _, err := mapview.ExportSVG(m, mapview.DefaultSVGOptions()); err == nil {
		t.Fatalf("expected an error for an empty area")
	}
}

func TestExportSVGProducesWellFormedSVG(t *testing.T) {
	m := biome.NewMap(biome.Area{X: 0, Z: 0, W: 4, H: 4})
	for i := range m.Data {
		m.Data[i] = biomeinfo.Plains
	}
	data, err := mapview.ExportSVG(m, mapview.DefaultSVGOptions())
	if err != nil {
		t.Fatalf("ExportSVG: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) || !bytes.Contains(data, []byte("</svg>")) {
		t.Fatalf("ExportSVG output is not well-formed SVG")
	}
}
