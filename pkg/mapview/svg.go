package mapview

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/mcseed/pkg/biome"
)

// SVGOptions configures the debug SVG renderer.
type SVGOptions struct {
	CellSize  int  // Pixel size of one map cell (default: 4)
	ShowGrid  bool // Draw a 1px grid line between cells
	Treasure  bool // Interpret cell values as treasure-map color ids instead of biome ids
	ShowTitle bool
	Title     string
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{CellSize: 4, ShowTitle: true, Title: "Biome Map"}
}

// ExportSVG renders m as a grid of colored rects, one per cell, useful for
// eyeballing a generated region without a full image pipeline.
func ExportSVG(m biome.Map, opts SVGOptions) ([]byte, error) {
	if m.Area.W <= 0 || m.Area.H <= 0 {
		return nil, fmt.Errorf("mapview: cannot render an empty area")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 4
	}

	titleHeight := 0
	if opts.ShowTitle && opts.Title != "" {
		titleHeight = 24
	}
	width := int(m.Area.W) * opts.CellSize
	height := int(m.Area.H)*opts.CellSize + titleHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	if titleHeight > 0 {
		canvas.Text(width/2, 16, opts.Title,
			"text-anchor:middle;font-size:14px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	for x := int64(0); x < m.Area.W; x++ {
		for z := int64(0); z < m.Area.H; z++ {
			id := m.At(x, z)
			var c [4]byte
			if opts.Treasure {
				c = TreasureMapToColor(id)
			} else {
				c = BiomeToColor(id)
			}
			style := fmt.Sprintf("fill:#%02x%02x%02x;stroke:none", c[0], c[1], c[2])
			if opts.ShowGrid {
				style = fmt.Sprintf("fill:#%02x%02x%02x;stroke:#000;stroke-width:0.5", c[0], c[1], c[2])
			}
			canvas.Rect(int(x)*opts.CellSize, titleHeight+int(z)*opts.CellSize, opts.CellSize, opts.CellSize, style)
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders m and writes the SVG to filepath.
func SaveSVGToFile(m biome.Map, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(m, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
