package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/stripnest/pkg/cde"
	"github.com/dshills/stripnest/pkg/playout"
)

// SVGOptions configures a layout's visual rendering.
type SVGOptions struct {
	Width      int    // Canvas width in pixels
	Height     int    // Canvas height in pixels
	Margin     int    // Canvas margin in pixels (default: 40)
	ShowLabels bool   // Show item id labels at each placement's centroid
	Title      string // Optional title drawn above the container
}

// DefaultSVGOptions returns sensible default rendering options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      1000,
		Height:     800,
		Margin:     40,
		ShowLabels: true,
		Title:      "",
	}
}

// ExportSVG renders layout's container and every placed polygon,
// scaled and flipped into SVG's top-left, y-down coordinate space.
func ExportSVG(layout *playout.Layout, opts SVGOptions) ([]byte, error) {
	if layout == nil {
		return nil, fmt.Errorf("export: layout cannot be nil")
	}
	if opts.Width <= 0 {
		opts.Width = 1000
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	containerW, containerH := layout.ContainerWidth(), layout.ContainerHeight()
	scale := fitScale(containerW, containerH, opts.Width-2*opts.Margin, opts.Height-2*opts.Margin)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	toPx := func(x, y float64) (int, int) {
		return opts.Margin + int(x*scale), opts.Margin + int((containerH-y)*scale)
	}

	cx, cy := toPx(0, containerH)
	canvas.Rect(cx, cy, int(containerW*scale), int(containerH*scale),
		"fill:none;stroke:#48bb78;stroke-width:2;stroke-dasharray:6,4")

	feasible := layout.IsFeasible()
	for i, id := range layout.Placements() {
		drawPlacement(canvas, layout, id, toPx, colorForIndex(i, feasible), opts)
	}

	if opts.Title != "" {
		canvas.Text(opts.Width/2, opts.Margin/2, opts.Title,
			"text-anchor:middle;font-size:18px;fill:#e2e8f0;font-family:sans-serif")
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders layout and writes it to path.
func SaveSVGToFile(layout *playout.Layout, opts SVGOptions, path string) error {
	data, err := ExportSVG(layout, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func drawPlacement(canvas *svg.SVG, layout *playout.Layout, id cde.PlacementID, toPx func(x, y float64) (int, int), style string, opts SVGOptions) {
	item := layout.Item(id)
	pose := layout.Pose(id)
	world := item.Polygon.Transformed(pose.X, pose.Y, pose.Rotation)

	xs := make([]int, len(world.Points))
	ys := make([]int, len(world.Points))
	for i, pt := range world.Points {
		xs[i], ys[i] = toPx(pt.X, pt.Y)
	}
	canvas.Polygon(xs, ys, style)

	if opts.ShowLabels {
		centroid := world.Centroid()
		lx, ly := toPx(centroid.X, centroid.Y)
		canvas.Text(lx, ly, item.ID, "text-anchor:middle;font-size:10px;fill:#0b0b0f;font-family:sans-serif")
	}
}

// fitScale returns the largest scale factor that fits a worldW x
// worldH box inside a pxW x pxH pixel box without distortion.
func fitScale(worldW, worldH float64, pxW, pxH int) float64 {
	if worldW <= 0 || worldH <= 0 {
		return 1
	}
	sx := float64(pxW) / worldW
	sy := float64(pxH) / worldH
	if sx < sy {
		return sx
	}
	return sy
}

var palette = []string{
	"#4299e1", "#48bb78", "#ed8936", "#9f7aea", "#f56565",
	"#38b2ac", "#ecc94b", "#ed64a6",
}

func colorForIndex(i int, feasible bool) string {
	stroke := "#1a202c"
	if !feasible {
		stroke = "#f56565"
	}
	fill := palette[i%len(palette)]
	return fmt.Sprintf("fill:%s;fill-opacity:0.85;stroke:%s;stroke-width:1", fill, stroke)
}
