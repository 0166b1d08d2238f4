package scheme

import (
	"math"

	"github.com/san-kum/cfdsteps/internal/grid"
)

// Burgers1D combines self-advection and diffusion in one interior pass.
type Burgers1D struct {
	Nu   float64
	prev []float64
}

func (s *Burgers1D) Advance(u *grid.Grid, dt float64) {
	un := keep(&s.prev, u.Data)
	k, r := dt/u.DX, s.Nu*dt/(u.DX*u.DX)
	for i := 1; i < u.NX-1; i++ {
		u.Data[i] = un[i] - k*upwind(un, i, 1, un[i]) + r*second(un, i, 1)
	}
}

// Burgers2D is NonlinearConvection2D plus Diffusion2D for each field.
type Burgers2D struct {
	Nu           float64
	prevU, prevV []float64
}

func (s *Burgers2D) Advance(u, v *grid.Grid, dt float64) {
	un, vn := keep(&s.prevU, u.Data), keep(&s.prevV, v.Data)
	kx, ky, nx := dt/u.DX, dt/u.DY, u.NX
	rx, ry := s.Nu*dt/(u.DX*u.DX), s.Nu*dt/(u.DY*u.DY)
	interior(nx, u.NY, func(k int) {
		u.Data[k] = un[k] - kx*upwind(un, k, 1, un[k]) - ky*upwind(un, k, nx, vn[k]) +
			rx*second(un, k, 1) + ry*second(un, k, nx)
		v.Data[k] = vn[k] - kx*upwind(vn, k, 1, un[k]) - ky*upwind(vn, k, nx, vn[k]) +
			rx*second(vn, k, 1) + ry*second(vn, k, nx)
	})
}

// BurgersExact is the Cole-Hopf solution of the periodic 1D Burgers problem on
// [0, 2π) at time t, u = 4 - 2ν φ'/φ with φ a pair of periodic Gaussians
// travelling at speed 4.
func BurgersExact(x, t, nu float64) float64 {
	s := math.Mod(x-4*t, 2*math.Pi)
	if s < 0 {
		s += 2 * math.Pi
	}
	d := 4 * nu * (t + 1)
	a, b := s, s-2*math.Pi
	e1, e2 := math.Exp(-a*a/d), math.Exp(-b*b/d)
	dphi := -2*a/d*e1 - 2*b/d*e2
	return 4 - 2*nu*dphi/(e1+e2)
}
