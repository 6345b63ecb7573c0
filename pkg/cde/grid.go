package cde

import "math"

// cellKey addresses one cell of the uniform grid overlaid on the
// container. The grid is a broad-phase filter only: a placement is
// indexed under every cell its bounding box touches, and a query
// gathers candidates from the cells its own bounding box touches.
type cellKey struct {
	x, y int
}

type grid struct {
	cellSize float64
	cells    map[cellKey][]PlacementID
}

func newGrid(cellSize float64) *grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]PlacementID),
	}
}

func (g *grid) cellRange(minX, minY, maxX, maxY float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(minX / g.cellSize))
	y0 = int(math.Floor(minY / g.cellSize))
	x1 = int(math.Floor(maxX / g.cellSize))
	y1 = int(math.Floor(maxY / g.cellSize))
	return
}

func (g *grid) insert(p *placement) {
	x0, y0, x1, y1 := g.cellRange(p.bounds.MinX, p.bounds.MinY, p.bounds.MaxX, p.bounds.MaxY)
	p.cellMinX, p.cellMinY, p.cellMaxX, p.cellMaxY = x0, y0, x1, y1
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			k := cellKey{x, y}
			g.cells[k] = append(g.cells[k], p.id)
		}
	}
}

func (g *grid) remove(p *placement) {
	for x := p.cellMinX; x <= p.cellMaxX; x++ {
		for y := p.cellMinY; y <= p.cellMaxY; y++ {
			k := cellKey{x, y}
			bucket := g.cells[k]
			for i, id := range bucket {
				if id == p.id {
					bucket[i] = bucket[len(bucket)-1]
					g.cells[k] = bucket[:len(bucket)-1]
					break
				}
			}
			if len(g.cells[k]) == 0 {
				delete(g.cells, k)
			}
		}
	}
}

// candidates returns the set of placement IDs (deduplicated) sharing at
// least one cell with the given bounds.
func (g *grid) candidates(minX, minY, maxX, maxY float64) []PlacementID {
	x0, y0, x1, y1 := g.cellRange(minX, minY, maxX, maxY)
	seen := make(map[PlacementID]struct{})
	var out []PlacementID
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for _, id := range g.cells[cellKey{x, y}] {
				if _, ok := seen[id]; !ok {
					seen[id] = struct{}{}
					out = append(out, id)
				}
			}
		}
	}
	return out
}
