package scheme

import "github.com/san-kum/cfdsteps/internal/grid"

// Diffusion1D is explicit FTCS diffusion with coefficient Nu.
type Diffusion1D struct {
	Nu   float64
	prev []float64
}

func (s *Diffusion1D) Advance(u *grid.Grid, dt float64) {
	un := keep(&s.prev, u.Data)
	r := s.Nu * dt / (u.DX * u.DX)
	for i := 1; i < u.NX-1; i++ {
		u.Data[i] = un[i] + r*second(un, i, 1)
	}
}

// Diffusion2D is explicit FTCS diffusion on both axes.
type Diffusion2D struct {
	Nu   float64
	prev []float64
}

func (s *Diffusion2D) Advance(u *grid.Grid, dt float64) {
	un := keep(&s.prev, u.Data)
	rx, ry, nx := s.Nu*dt/(u.DX*u.DX), s.Nu*dt/(u.DY*u.DY), u.NX
	interior(nx, u.NY, func(k int) {
		u.Data[k] = un[k] + rx*second(un, k, 1) + ry*second(un, k, nx)
	})
}
