package scheme

import (
	"github.com/san-kum/cfdsteps/internal/analysis"
	"github.com/san-kum/cfdsteps/internal/grid"
)

// ConvergenceTolerance is the relative L1 change below which a relaxation
// counts as converged.
const ConvergenceTolerance = 1e-4

// Relaxation solves ∇²p = b by Jacobi sweeps. A nil Source gives the Laplace
// equation. Boundary is applied after every sweep.
type Relaxation struct {
	Source   *grid.Grid
	Boundary grid.Policy
	prev     []float64
}

// Sweep runs one Jacobi pass over the interior, applies the boundary and
// returns the relative L1 change Σ|p-pn| / Σ|pn|.
func (r *Relaxation) Sweep(p *grid.Grid) float64 {
	pn := keep(&r.prev, p.Data)
	jacobi(p, pn, r.Source)
	if r.Boundary != nil {
		r.Boundary.Apply(p)
	}
	return analysis.RelativeL1(p.Data, pn)
}

// jacobi writes one sweep of the five-point Poisson update into p reading pn.
// With dx == dy and no source this is 0.25·(sum of the four neighbours).
func jacobi(p *grid.Grid, pn []float64, b *grid.Grid) {
	dx2, dy2, nx := p.DX*p.DX, p.DY*p.DY, p.NX
	den := 2 * (dx2 + dy2)
	interior(nx, p.NY, func(k int) {
		v := (pn[k+1]+pn[k-1])*dy2 + (pn[k+nx]+pn[k-nx])*dx2
		if b != nil {
			v -= b.Data[k] * dx2 * dy2
		}
		p.Data[k] = v / den
	})
}
