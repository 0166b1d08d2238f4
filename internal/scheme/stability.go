package scheme

// Stability holds the explicit-scheme numbers for a fixed timestep.
type Stability struct {
	// Courant is Σ speed·dt/h over the axes.
	Courant float64
	// Diffusion is Σ ν·dt/h² over the axes.
	Diffusion float64
}

// Stable reports whether both numbers sit inside the textbook bounds for
// first-order upwind convection and FTCS diffusion.
func (s Stability) Stable() bool { return s.Courant <= 1 && s.Diffusion <= 0.5 }

// Analyze computes the stability numbers for peak speeds (sx, sy), viscosity
// nu and spacing (dx, dy). dy == 0 marks a 1D grid.
func Analyze(sx, sy, nu, dt, dx, dy float64) Stability {
	s := Stability{
		Courant:   sx * dt / dx,
		Diffusion: nu * dt / (dx * dx),
	}
	if dy > 0 {
		s.Courant += sy * dt / dy
		s.Diffusion += nu * dt / (dy * dy)
	}
	return s
}
