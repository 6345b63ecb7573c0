package optimizer

import (
	"github.com/dshills/stripnest/pkg/model"
	"github.com/dshills/stripnest/pkg/playout"
)

// initialLayout builds a deliberately loose starting layout: every
// demanded item placed row by row in demand order (next-fit, no
// sorting), at the admissible rotation nearest 0, inside a container
// generous enough that nothing needs to overlap yet.
// The Explore phase's first Separator attempt is expected to do real
// work resolving whatever this naive placement leaves infeasible
// (typically nothing, since the container starts oversized).
func initialLayout(inst model.Instance, width, height, cellSize float64) *playout.Layout {
	l := playout.NewLayout(inst.Mode, width, height, cellSize)

	x, y, rowHeight := 0.0, 0.0, 0.0
	for _, demand := range inst.Demands {
		item := demand.Item
		theta := item.Rotation.Nearest(0)
		bounds := item.Polygon.Transformed(0, 0, theta).Bounds()
		bw, bh := bounds.Width(), bounds.Height()

		for i := 0; i < demand.Qty; i++ {
			if x+bw > width && x > 0 {
				x = 0
				y += rowHeight
				rowHeight = 0
			}
			pose := model.Pose{X: x - bounds.MinX, Y: y - bounds.MinY, Rotation: theta}
			l.Place(&item, pose)

			x += bw
			if bh > rowHeight {
				rowHeight = bh
			}
		}
	}

	return l
}

// medianBoundingDiameter returns a representative cell size for the
// CDE's spatial grid: the median of every demanded item's bounding
// diameter (spec.md's recommendation), falling back to 1.0 for an
// empty instance (model.Instance.Validate already rejects that case,
// but initialLayout's callers may probe dimensions before validating).
func medianBoundingDiameter(inst model.Instance) float64 {
	var diameters []float64
	for _, demand := range inst.Demands {
		for i := 0; i < demand.Qty; i++ {
			diameters = append(diameters, demand.Item.BoundingDiameter)
		}
	}
	if len(diameters) == 0 {
		return 1.0
	}
	insertionSort(diameters)
	return diameters[len(diameters)/2]
}

func insertionSort(xs []float64) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}

// looseInitialWidth sums every demanded item's bounding diameter: a
// deliberately generous single-row upper bound that guarantees the
// naive initial placement never needs to overlap.
func looseInitialWidth(inst model.Instance) float64 {
	total := 0.0
	for _, demand := range inst.Demands {
		total += demand.Item.BoundingDiameter * float64(demand.Qty)
	}
	return total
}
