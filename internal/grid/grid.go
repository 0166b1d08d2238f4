package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid is a dense scalar field on a uniform 1D or 2D mesh.
//
// Values are stored row-major: cell (i, j) lives at Data[j*NX+i]. A 1D grid
// has NY == 1 and DY == 0. Border cells (index 0 and n-1 along each axis) are
// owned by a boundary Policy; stencils only write interior cells.
type Grid struct {
	NX, NY int
	DX, DY float64
	X0, Y0 float64
	Data   []float64
}

// Spec describes the mesh a Grid is built on.
type Spec struct {
	NX, NY int
	X0, X1 float64
	Y0, Y1 float64
}

// New1D builds a zeroed 1D grid of nx points spanning [x0, x1].
func New1D(nx int, x0, x1 float64) *Grid {
	return New(Spec{NX: nx, NY: 1, X0: x0, X1: x1})
}

// New2D builds a zeroed nx×ny grid spanning [x0, x1]×[y0, y1].
func New2D(nx, ny int, x0, x1, y0, y1 float64) *Grid {
	return New(Spec{NX: nx, NY: ny, X0: x0, X1: x1, Y0: y0, Y1: y1})
}

// New builds a zeroed grid. Non-positive dimensions panic; callers validate
// user input before reaching here.
func New(s Spec) *Grid {
	if s.NX < 2 || s.NY < 1 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", s.NX, s.NY))
	}
	g := &Grid{
		NX:   s.NX,
		NY:   s.NY,
		X0:   s.X0,
		Y0:   s.Y0,
		DX:   (s.X1 - s.X0) / float64(s.NX-1),
		Data: make([]float64, s.NX*s.NY),
	}
	if s.NY > 1 {
		g.DY = (s.Y1 - s.Y0) / float64(s.NY-1)
	}
	return g
}

func (g *Grid) Is2D() bool { return g.NY > 1 }

// Index returns the flat offset of (i, j) and panics when out of range.
func (g *Grid) Index(i, j int) int {
	if i < 0 || i >= g.NX || j < 0 || j >= g.NY {
		panic(fmt.Sprintf("grid: index (%d,%d) out of range %dx%d", i, j, g.NX, g.NY))
	}
	return j*g.NX + i
}

func (g *Grid) At(i, j int) float64 { return g.Data[g.Index(i, j)] }

func (g *Grid) Set(i, j int, v float64) { g.Data[g.Index(i, j)] = v }

func (g *Grid) X(i int) float64 { return g.X0 + float64(i)*g.DX }

func (g *Grid) Y(j int) float64 { return g.Y0 + float64(j)*g.DY }

// XCoords returns the x coordinate of every column.
func (g *Grid) XCoords() []float64 {
	xs := make([]float64, g.NX)
	return floats.Span(xs, g.X0, g.X(g.NX-1))
}

// YCoords returns the y coordinate of every row.
func (g *Grid) YCoords() []float64 {
	ys := make([]float64, g.NY)
	if g.NY == 1 {
		ys[0] = g.Y0
		return ys
	}
	return floats.Span(ys, g.Y0, g.Y(g.NY-1))
}

// Fill evaluates fn at every cell coordinate.
func (g *Grid) Fill(fn func(x, y float64) float64) {
	for j := 0; j < g.NY; j++ {
		y := g.Y(j)
		for i := 0; i < g.NX; i++ {
			g.Data[j*g.NX+i] = fn(g.X(i), y)
		}
	}
}

func (g *Grid) Clone() *Grid {
	c := *g
	c.Data = make([]float64, len(g.Data))
	copy(c.Data, g.Data)
	return &c
}

// View returns a read-only copy of the current values.
func (g *Grid) View() View { return View{g: g.Clone()} }

// View is an immutable snapshot of a Grid handed to renderers.
type View struct {
	g *Grid
}

func (v View) Valid() bool { return v.g != nil }

func (v View) Size() (nx, ny int) { return v.g.NX, v.g.NY }

func (v View) Spacing() (dx, dy float64) { return v.g.DX, v.g.DY }

func (v View) At(i, j int) float64 { return v.g.At(i, j) }

func (v View) X(i int) float64 { return v.g.X(i) }

func (v View) Y(j int) float64 { return v.g.Y(j) }

func (v View) XCoords() []float64 { return v.g.XCoords() }

func (v View) YCoords() []float64 { return v.g.YCoords() }

// Values returns a copy of the row-major data.
func (v View) Values() []float64 {
	out := make([]float64, len(v.g.Data))
	copy(out, v.g.Data)
	return out
}

// Row returns a copy of row j.
func (v View) Row(j int) []float64 {
	start := v.g.Index(0, j)
	out := make([]float64, v.g.NX)
	copy(out, v.g.Data[start:start+v.g.NX])
	return out
}
