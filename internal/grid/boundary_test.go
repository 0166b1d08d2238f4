package grid

import "testing"

func filled(nx, ny int) *Grid {
	var g *Grid
	if ny == 1 {
		g = New1D(nx, 0, 1)
	} else {
		g = New2D(nx, ny, 0, 1, 0, 1)
	}
	for k := range g.Data {
		g.Data[k] = float64(k + 1)
	}
	return g
}

func TestFixedOnlyTouchesBorder(t *testing.T) {
	for _, ny := range []int{1, 5} {
		g := filled(6, ny)
		before := g.Clone()
		Fixed{Value: 1}.Apply(g)

		for j := 0; j < g.NY; j++ {
			for i := 0; i < g.NX; i++ {
				border := i == 0 || i == g.NX-1 || (ny > 1 && (j == 0 || j == g.NY-1))
				got := g.At(i, j)
				if border && got != 1 {
					t.Errorf("ny=%d border (%d,%d) = %v, want 1", ny, i, j, got)
				}
				if !border && got != before.At(i, j) {
					t.Errorf("ny=%d interior (%d,%d) modified", ny, i, j)
				}
			}
		}
	}
}

func TestPeriodicWrapsOppositeInterior(t *testing.T) {
	for _, ny := range []int{1, 4} {
		g := filled(7, ny)
		Periodic{}.Apply(g)

		for j := 0; j < g.NY; j++ {
			if g.At(0, j) != g.At(g.NX-2, j) {
				t.Errorf("row %d: left %v != %v", j, g.At(0, j), g.At(g.NX-2, j))
			}
			if g.At(g.NX-1, j) != g.At(1, j) {
				t.Errorf("row %d: right %v != %v", j, g.At(g.NX-1, j), g.At(1, j))
			}
		}
	}
}

func TestEdges(t *testing.T) {
	g := filled(5, 5)
	Edges{
		Left:   Dirichlet(0),
		Right:  Profile(func(y float64) float64 { return 2 * y }),
		Bottom: Neumann(),
		Top:    Dirichlet(9),
	}.Apply(g)

	for j := 1; j < 4; j++ {
		if g.At(0, j) != 0 {
			t.Errorf("left (0,%d) = %v", j, g.At(0, j))
		}
		if g.At(4, j) != 2*g.Y(j) {
			t.Errorf("right (4,%d) = %v, want %v", j, g.At(4, j), 2*g.Y(j))
		}
	}
	for i := 0; i < 5; i++ {
		if g.At(i, 0) != g.At(i, 1) {
			t.Errorf("bottom (%d,0) not neumann", i)
		}
		if g.At(i, 4) != 9 {
			t.Errorf("top (%d,4) = %v, want 9", i, g.At(i, 4))
		}
	}
	if g.At(2, 2) != 13 {
		t.Errorf("interior modified: %v", g.At(2, 2))
	}
}

func TestEdgesZeroRuleLeavesEdge(t *testing.T) {
	g := filled(4, 4)
	before := g.Clone()
	Edges{}.Apply(g)

	for k := range g.Data {
		if g.Data[k] != before.Data[k] {
			t.Fatalf("cell %d changed", k)
		}
	}
}

func TestChainOrder(t *testing.T) {
	g := filled(5, 5)
	Chain{Periodic{}, Edges{Bottom: Dirichlet(0), Top: Dirichlet(0)}}.Apply(g)

	for i := 0; i < 5; i++ {
		if g.At(i, 0) != 0 || g.At(i, 4) != 0 {
			t.Errorf("walls must win corners at column %d", i)
		}
	}
	for j := 1; j < 4; j++ {
		if g.At(0, j) != g.At(3, j) || g.At(4, j) != g.At(1, j) {
			t.Errorf("row %d not periodic", j)
		}
	}
}
