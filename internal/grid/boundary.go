package grid

// Policy writes boundary values into the border cells of a grid. It never
// touches interior cells.
type Policy interface {
	Apply(g *Grid)
}

// Fixed pins every border cell to Value.
type Fixed struct {
	Value float64
}

func (f Fixed) Apply(g *Grid) {
	nx, ny := g.NX, g.NY
	if ny == 1 {
		g.Data[0] = f.Value
		g.Data[nx-1] = f.Value
		return
	}
	for i := 0; i < nx; i++ {
		g.Data[i] = f.Value
		g.Data[(ny-1)*nx+i] = f.Value
	}
	for j := 1; j < ny-1; j++ {
		g.Data[j*nx] = f.Value
		g.Data[j*nx+nx-1] = f.Value
	}
}

// Periodic wraps the x axis: each left/right border cell takes the interior
// value adjacent to the opposite edge, giving a period of NX-2 cells.
type Periodic struct{}

func (Periodic) Apply(g *Grid) {
	nx := g.NX
	for j := 0; j < g.NY; j++ {
		row := g.Data[j*nx : (j+1)*nx]
		row[0] = row[nx-2]
		row[nx-1] = row[1]
	}
}

type ruleKind int

const (
	ruleNone ruleKind = iota
	ruleDirichlet
	ruleProfile
	ruleNeumann
)

// Rule is a single-edge condition. The zero Rule leaves the edge untouched.
type Rule struct {
	kind    ruleKind
	value   float64
	profile func(s float64) float64
}

// Dirichlet sets the edge to a constant.
func Dirichlet(v float64) Rule { return Rule{kind: ruleDirichlet, value: v} }

// Profile sets the edge to fn evaluated at the along-edge coordinate
// (y for left/right edges, x for bottom/top).
func Profile(fn func(s float64) float64) Rule { return Rule{kind: ruleProfile, profile: fn} }

// Neumann copies the inner neighbour, giving a zero normal gradient.
func Neumann() Rule { return Rule{kind: ruleNeumann} }

// Edges applies one rule per side in the order left, right, bottom, top, so
// the top rule owns the top corners. 1D grids only use Left and Right.
type Edges struct {
	Left, Right, Bottom, Top Rule
}

func (e Edges) Apply(g *Grid) {
	nx, ny := g.NX, g.NY
	for j := 0; j < ny; j++ {
		e.Left.write(g, j*nx, j*nx+1, g.Y(j))
		e.Right.write(g, j*nx+nx-1, j*nx+nx-2, g.Y(j))
	}
	if ny == 1 {
		return
	}
	for i := 0; i < nx; i++ {
		e.Bottom.write(g, i, nx+i, g.X(i))
		e.Top.write(g, (ny-1)*nx+i, (ny-2)*nx+i, g.X(i))
	}
}

func (r Rule) write(g *Grid, edge, inner int, s float64) {
	switch r.kind {
	case ruleDirichlet:
		g.Data[edge] = r.value
	case ruleProfile:
		g.Data[edge] = r.profile(s)
	case ruleNeumann:
		g.Data[edge] = g.Data[inner]
	}
}

// Chain applies policies in order; later policies win shared cells.
type Chain []Policy

func (c Chain) Apply(g *Grid) {
	for _, p := range c {
		p.Apply(g)
	}
}
