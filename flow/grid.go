package flow

import (
	"math"

	"github.com/gogpu/lineart"
)

// Occupancy grid cell size limits and the minimum resolution per axis.
const (
	CellMin  = 0.5
	CellMax  = 20.0
	MinCells = 4
)

// OccupancyGrid is a coarse index of committed ink over the drawable region.
// A cell is marked only when a whole trajectory touching it is committed.
type OccupancyGrid struct {
	bounds     lineart.Rect
	cell       float64
	cols, rows int
	occupied   []bool
}

// NewOccupancyGrid creates an empty grid over bounds. The cell size is
// minSpacing/2 clamped to [CellMin, CellMax], shrunk further when needed so
// that each axis has at least MinCells cells.
func NewOccupancyGrid(bounds lineart.Rect, minSpacing float64) *OccupancyGrid {
	cell := lineart.Clamp(minSpacing/2, CellMin, CellMax)
	cell = math.Min(cell, bounds.Width()/MinCells)
	cell = math.Min(cell, bounds.Height()/MinCells)
	cell = math.Max(cell, lineart.Epsilon)

	cols := int(math.Floor(bounds.Width()/cell)) + 1
	rows := int(math.Floor(bounds.Height()/cell)) + 1
	return &OccupancyGrid{
		bounds:   bounds,
		cell:     cell,
		cols:     cols,
		rows:     rows,
		occupied: make([]bool, cols*rows),
	}
}

// CellSize returns the edge length of one cell.
func (g *OccupancyGrid) CellSize() float64 {
	return g.cell
}

// Dims returns the number of columns and rows.
func (g *OccupancyGrid) Dims() (cols, rows int) {
	return g.cols, g.rows
}

// cellOf returns the cell containing p, or ok=false outside the bounds.
func (g *OccupancyGrid) cellOf(p lineart.Point) (cx, cy int, ok bool) {
	if !g.bounds.Contains(p) {
		return 0, 0, false
	}
	cx = int((p.X - g.bounds.Min.X) / g.cell)
	cy = int((p.Y - g.bounds.Min.Y) / g.cell)
	return min(cx, g.cols-1), min(cy, g.rows-1), true
}

// Occupied reports whether any cell in the 3x3 neighborhood of p's cell
// holds ink. Points outside the bounds count as occupied.
func (g *OccupancyGrid) Occupied(p lineart.Point) bool {
	cx, cy, ok := g.cellOf(p)
	if !ok {
		return true
	}
	for y := max(cy-1, 0); y <= min(cy+1, g.rows-1); y++ {
		row := y * g.cols
		for x := max(cx-1, 0); x <= min(cx+1, g.cols-1); x++ {
			if g.occupied[row+x] {
				return true
			}
		}
	}
	return false
}

// Mark records ink at p. Points outside the bounds are ignored.
func (g *OccupancyGrid) Mark(p lineart.Point) {
	if cx, cy, ok := g.cellOf(p); ok {
		g.occupied[cy*g.cols+cx] = true
	}
}

// MarkPolyline records ink at every point of pl.
func (g *OccupancyGrid) MarkPolyline(pl lineart.Polyline) {
	for _, p := range pl {
		g.Mark(p)
	}
}

// Coverage returns the fraction of occupied cells.
func (g *OccupancyGrid) Coverage() float64 {
	n := 0
	for _, o := range g.occupied {
		if o {
			n++
		}
	}
	return float64(n) / float64(len(g.occupied))
}
