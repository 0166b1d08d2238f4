package scheme

import "github.com/san-kum/cfdsteps/internal/grid"

// LinearConvection1D advects u at constant speed C with first-order upwind
// differences.
type LinearConvection1D struct {
	C    float64
	prev []float64
}

func (s *LinearConvection1D) Advance(u *grid.Grid, dt float64) {
	un := keep(&s.prev, u.Data)
	k := dt / u.DX
	for i := 1; i < u.NX-1; i++ {
		u.Data[i] = un[i] - k*upwind(un, i, 1, s.C)
	}
}

// NonlinearConvection1D advects u at its own local speed.
type NonlinearConvection1D struct {
	prev []float64
}

func (s *NonlinearConvection1D) Advance(u *grid.Grid, dt float64) {
	un := keep(&s.prev, u.Data)
	k := dt / u.DX
	for i := 1; i < u.NX-1; i++ {
		u.Data[i] = un[i] - k*upwind(un, i, 1, un[i])
	}
}

// LinearConvection2D advects u at constant speeds (CX, CY).
type LinearConvection2D struct {
	CX, CY float64
	prev   []float64
}

func (s *LinearConvection2D) Advance(u *grid.Grid, dt float64) {
	un := keep(&s.prev, u.Data)
	kx, ky, nx := dt/u.DX, dt/u.DY, u.NX
	interior(nx, u.NY, func(k int) {
		u.Data[k] = un[k] - kx*upwind(un, k, 1, s.CX) - ky*upwind(un, k, nx, s.CY)
	})
}

// NonlinearConvection2D advects the coupled pair (u, v) by itself.
type NonlinearConvection2D struct {
	prevU, prevV []float64
}

func (s *NonlinearConvection2D) Advance(u, v *grid.Grid, dt float64) {
	un, vn := keep(&s.prevU, u.Data), keep(&s.prevV, v.Data)
	kx, ky, nx := dt/u.DX, dt/u.DY, u.NX
	interior(nx, u.NY, func(k int) {
		u.Data[k] = un[k] - kx*upwind(un, k, 1, un[k]) - ky*upwind(un, k, nx, vn[k])
		v.Data[k] = vn[k] - kx*upwind(vn, k, 1, un[k]) - ky*upwind(vn, k, nx, vn[k])
	})
}
