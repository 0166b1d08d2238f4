package scheme

import "github.com/san-kum/cfdsteps/internal/grid"

// DefaultPressureIters is the fixed inner iteration count of the pressure
// solve.
const DefaultPressureIters = 50

// Flow integrates the incompressible Navier-Stokes equations with a pressure
// Poisson projection. Cavity and channel flow differ only in Force and in the
// boundary policies supplied.
type Flow struct {
	Rho, Nu float64
	// Force is a constant body force along +x.
	Force float64
	// PressureIters inner Jacobi iterations run per step, with no early exit.
	PressureIters    int
	PressureBoundary grid.Policy

	b, pn, un, vn []float64
}

// Advance runs one step: pressure source from the current velocity, a full
// pressure solve, then the momentum update. Velocity boundaries are the
// caller's job.
func (f *Flow) Advance(u, v, p *grid.Grid, dt float64) {
	un, vn := keep(&f.un, u.Data), keep(&f.vn, v.Data)

	src := f.source(un, vn, u, dt)
	f.solvePressure(p, src)

	nx, dx, dy := u.NX, u.DX, u.DY
	kx, ky := dt/dx, dt/dy
	rx, ry := f.Nu*dt/(dx*dx), f.Nu*dt/(dy*dy)
	px, py := dt/(2*f.Rho*dx), dt/(2*f.Rho*dy)
	pd := p.Data
	interior(nx, u.NY, func(k int) {
		u.Data[k] = un[k] -
			kx*upwind(un, k, 1, un[k]) - ky*upwind(un, k, nx, vn[k]) -
			px*central(pd, k, 1) +
			rx*second(un, k, 1) + ry*second(un, k, nx) +
			f.Force*dt
		v.Data[k] = vn[k] -
			kx*upwind(vn, k, 1, un[k]) - ky*upwind(vn, k, nx, vn[k]) -
			py*central(pd, k, nx) +
			rx*second(vn, k, 1) + ry*second(vn, k, nx)
	})
}

// source builds the right-hand side of the pressure Poisson equation from the
// velocity divergence and its rate of change.
func (f *Flow) source(un, vn []float64, g *grid.Grid, dt float64) *grid.Grid {
	if len(f.b) != len(un) {
		f.b = make([]float64, len(un))
	}
	nx := g.NX
	dx2, dy2 := 2*g.DX, 2*g.DY
	interior(nx, g.NY, func(k int) {
		ux := central(un, k, 1) / dx2
		uy := central(un, k, nx) / dy2
		vx := central(vn, k, 1) / dx2
		vy := central(vn, k, nx) / dy2
		f.b[k] = f.Rho * ((ux+vy)/dt - ux*ux - 2*uy*vx - vy*vy)
	})
	return &grid.Grid{NX: g.NX, NY: g.NY, DX: g.DX, DY: g.DY, X0: g.X0, Y0: g.Y0, Data: f.b}
}

func (f *Flow) solvePressure(p, b *grid.Grid) {
	iters := f.PressureIters
	if iters <= 0 {
		iters = DefaultPressureIters
	}
	for n := 0; n < iters; n++ {
		pn := keep(&f.pn, p.Data)
		jacobi(p, pn, b)
		if f.PressureBoundary != nil {
			f.PressureBoundary.Apply(p)
		}
	}
}
