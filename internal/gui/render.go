package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/cfdsteps/internal/grid"
	"github.com/san-kum/cfdsteps/internal/sim"
	"github.com/san-kum/cfdsteps/internal/viz"
)

func drawSnapshot(snap sim.Snapshot, pal viz.Palette, area rl.Rectangle) {
	prim := snap.Primary()
	if !prim.View.Valid() {
		return
	}
	if _, ny := prim.View.Size(); ny == 1 {
		drawProfile(snap, area)
		return
	}
	cells := Layout(prim.View, area)
	scale := viz.ScaleOf(prim.View.Values())
	for _, c := range cells {
		r, g, b := pal.RGB(scale.Norm(prim.View.At(c.I, c.J)))
		rl.DrawRectangle(c.X, c.Y, c.W, c.H, rl.NewColor(r, g, b, 255))
	}
	if u, v, ok := snap.Velocity(); ok {
		drawArrows(u, v, area)
	}
}

// Cell is the screen rectangle of grid cell (I, J).
type Cell struct {
	I, J       int
	X, Y, W, H int32
}

// Layout fits the grid into area keeping cells square, with row 0 at the
// bottom.
func Layout(v grid.View, area rl.Rectangle) []Cell {
	nx, ny := v.Size()
	side := int32(math.Min(float64(area.Width)/float64(nx), float64(area.Height)/float64(ny)))
	if side < 1 {
		side = 1
	}
	x0 := int32(area.X) + (int32(area.Width)-side*int32(nx))/2
	y0 := int32(area.Y) + (int32(area.Height)-side*int32(ny))/2

	cells := make([]Cell, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			cells = append(cells, Cell{
				I: i, J: j,
				X: x0 + int32(i)*side,
				Y: y0 + int32(ny-1-j)*side,
				W: side, H: side,
			})
		}
	}
	return cells
}

func drawArrows(u, v grid.View, area rl.Rectangle) {
	cells := Layout(u, area)
	nx, _ := u.Size()
	stride := nx / 20
	if stride < 1 {
		stride = 1
	}

	var peak float64
	for _, c := range cells {
		peak = math.Max(peak, math.Hypot(u.At(c.I, c.J), v.At(c.I, c.J)))
	}
	if peak == 0 || math.IsNaN(peak) {
		return
	}
	reach := float64(cells[0].W) * float64(stride)
	for _, c := range cells {
		if c.I%stride != 0 || c.J%stride != 0 {
			continue
		}
		cx, cy := float32(c.X+c.W/2), float32(c.Y+c.H/2)
		dx := float32(u.At(c.I, c.J) / peak * reach)
		dy := float32(v.At(c.I, c.J) / peak * reach)
		rl.DrawLineV(rl.NewVector2(cx, cy), rl.NewVector2(cx+dx, cy-dy), ColSelect)
	}
}

// ProfilePoints maps a 1D series at coordinates xs into area, with x spanning
// the first to last coordinate and y scaled to [lo, hi].
func ProfilePoints(xs, values []float64, lo, hi float64, area rl.Rectangle) []rl.Vector2 {
	pts := make([]rl.Vector2, len(values))
	if len(values) < 2 || len(xs) != len(values) {
		return pts
	}
	sx := viz.Scale{Lo: xs[0], Hi: xs[len(xs)-1]}
	sy := viz.Scale{Lo: lo, Hi: hi}
	for i, val := range values {
		px := area.X + float32(sx.Norm(xs[i]))*area.Width
		py := area.Y + area.Height - float32(sy.Norm(val))*area.Height
		pts[i] = rl.NewVector2(px, py)
	}
	return pts
}

func drawProfile(snap sim.Snapshot, area rl.Rectangle) {
	view := snap.Primary().View
	xs, u := view.XCoords(), view.Values()
	all := append([]float64(nil), u...)
	ex, hasExact := snap.Field("exact")
	var exact []float64
	if hasExact {
		exact = ex.Values()
		all = append(all, exact...)
	}
	scale := viz.ScaleOf(all)
	pad := 0.1 * (scale.Hi - scale.Lo)
	lo, hi := scale.Lo-pad, scale.Hi+pad

	rl.DrawRectangleLinesEx(area, 1, ColTextDim)
	if hasExact {
		rl.DrawLineStrip(ProfilePoints(xs, exact, lo, hi, area), ColExact)
	}
	rl.DrawLineStrip(ProfilePoints(xs, u, lo, hi, area), ColAccent)
}
