package main

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/lineart"
)

// unitsPerMM is the resolution of the integer SVG user space.
const unitsPerMM = 100

// writeSVG writes set as unfilled polylines on a page-sized canvas whose
// physical size is in millimeters.
func writeSVG(w io.Writer, page lineart.Page, set lineart.PolylineSet, stroke float64) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)

	wmm := int(math.Ceil(page.Width))
	hmm := int(math.Ceil(page.Height))
	canvas.StartviewUnit(wmm, hmm, "mm", 0, 0, wmm*unitsPerMM, hmm*unitsPerMM)
	canvas.Gstyle(fmt.Sprintf("fill:none;stroke:black;stroke-width:%d;stroke-linecap:round;stroke-linejoin:round",
		max(1, int(math.Round(stroke*unitsPerMM)))))
	for _, pl := range set {
		xs, ys := toUnits(pl)
		if len(xs) >= 2 {
			canvas.Polyline(xs, ys)
		}
	}
	canvas.Gend()
	canvas.End()
	return bw.Flush()
}

// toUnits converts pl to integer user-space coordinates, dropping points
// that collapse onto their predecessor.
func toUnits(pl lineart.Polyline) (xs, ys []int) {
	xs = make([]int, 0, len(pl))
	ys = make([]int, 0, len(pl))
	for _, p := range pl {
		x := int(math.Round(p.X * unitsPerMM))
		y := int(math.Round(p.Y * unitsPerMM))
		if n := len(xs); n > 0 && xs[n-1] == x && ys[n-1] == y {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}
