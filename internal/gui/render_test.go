package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/cfdsteps/internal/grid"
)

func TestLayoutKeepsCellsSquareAndFlipsY(t *testing.T) {
	g := grid.New2D(20, 10, 0, 2, 0, 1)
	area := rl.NewRectangle(0, 0, 400, 400)
	cells := Layout(g.View(), area)

	if len(cells) != 200 {
		t.Fatalf("got %d cells", len(cells))
	}
	first, last := cells[0], cells[len(cells)-1]
	if first.W != 20 || first.H != 20 {
		t.Errorf("cell size %dx%d, want 20x20", first.W, first.H)
	}
	if first.I != 0 || first.J != 0 || first.Y <= last.Y {
		t.Errorf("row 0 should be drawn below the top row: %+v vs %+v", first, last)
	}
	// centred vertically: 10 rows of 20px in 400px leave 100px either side
	if last.Y != 100 {
		t.Errorf("top row at y=%d, want 100", last.Y)
	}
}

func TestLayoutNeverCollapses(t *testing.T) {
	g := grid.New2D(101, 101, 0, 2, 0, 2)
	cells := Layout(g.View(), rl.NewRectangle(0, 0, 50, 50))
	if cells[0].W < 1 {
		t.Error("cells must be at least one pixel")
	}
}

func TestProfilePoints(t *testing.T) {
	area := rl.NewRectangle(10, 20, 100, 50)
	line := grid.New1D(3, -1, 1)
	pts := ProfilePoints(line.View().XCoords(), []float64{0, 1, 2}, 0, 2, area)

	if pts[0].X != 10 || pts[1].X != 60 || pts[2].X != 110 {
		t.Errorf("x span %v %v %v", pts[0].X, pts[1].X, pts[2].X)
	}
	if pts[0].Y != 70 || pts[2].Y != 20 || pts[1].Y != 45 {
		t.Errorf("y mapping: %v %v %v", pts[0].Y, pts[1].Y, pts[2].Y)
	}
	if len(ProfilePoints([]float64{0}, []float64{1}, 0, 1, area)) != 1 {
		t.Error("single value should give one point")
	}
}
