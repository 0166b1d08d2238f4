package sim

import (
	"math"

	"github.com/san-kum/cfdsteps/internal/analysis"
	"github.com/san-kum/cfdsteps/internal/grid"
	"github.com/san-kum/cfdsteps/internal/scheme"
)

type blueprint struct {
	mesh  grid.Spec
	build func(m grid.Spec) *Step
}

var burgersDX = 2 * math.Pi / 100

var blueprints = map[scheme.Kind]blueprint{
	scheme.KindLinearConvection1D:    {grid.Spec{NX: 41, NY: 1, X1: 2}, linearConvection1D},
	scheme.KindNonlinearConvection1D: {grid.Spec{NX: 41, NY: 1, X1: 2}, nonlinearConvection1D},
	scheme.KindDiffusion1D:           {grid.Spec{NX: 41, NY: 1, X1: 2}, diffusion1D},
	// 100 periodic cells on [0, 2π) plus one ghost cell at each end
	scheme.KindBurgers1D:             {grid.Spec{NX: 102, NY: 1, X0: -burgersDX, X1: 100 * burgersDX}, burgers1D},
	scheme.KindLinearConvection2D:    {grid.Spec{NX: 81, NY: 81, X1: 2, Y1: 2}, linearConvection2D},
	scheme.KindNonlinearConvection2D: {grid.Spec{NX: 101, NY: 101, X1: 2, Y1: 2}, nonlinearConvection2D},
	scheme.KindDiffusion2D:           {grid.Spec{NX: 31, NY: 31, X1: 2, Y1: 2}, diffusion2D},
	scheme.KindBurgers2D:             {grid.Spec{NX: 41, NY: 41, X1: 2, Y1: 2}, burgers2D},
	scheme.KindLaplace2D:             {grid.Spec{NX: 31, NY: 31, X1: 2, Y1: 1}, laplace},
	scheme.KindPoisson2D:             {grid.Spec{NX: 50, NY: 50, X1: 2, Y1: 1}, poisson},
	scheme.KindCavityFlow:            {grid.Spec{NX: 41, NY: 41, X1: 2, Y1: 2}, cavityFlow},
	scheme.KindChannelFlow:           {grid.Spec{NX: 41, NY: 41, X1: 2, Y1: 2}, channelFlow},
}

// New builds the Step for kind k on its canonical mesh with its canonical
// initial condition. Every call returns fresh grids.
func New(k scheme.Kind) (*Step, error) {
	bp, ok := blueprints[k]
	if !ok {
		return nil, &ConstructionError{Kind: int(k), Err: ErrInvalidScheme}
	}
	return build(k, bp.mesh)
}

func build(k scheme.Kind, m grid.Spec) (*Step, error) {
	bp, ok := blueprints[k]
	if !ok {
		return nil, &ConstructionError{Kind: int(k), Err: ErrInvalidScheme}
	}
	if !meshFits(k, m) {
		return nil, &ConstructionError{Kind: int(k), Err: ErrInvalidDimensions}
	}
	return bp.build(m), nil
}

// meshFits requires at least one interior cell per axis.
func meshFits(k scheme.Kind, m grid.Spec) bool {
	if m.NX < 3 || !(m.X1 > m.X0) {
		return false
	}
	if !k.Is2D() {
		return m.NY == 1
	}
	return m.NY >= 3 && m.Y1 > m.Y0
}

func topHat(g *grid.Grid) {
	g.Fill(func(x, y float64) float64 {
		in := x >= 0.5 && x <= 1
		if g.Is2D() {
			in = in && y >= 0.5 && y <= 1
		}
		if in {
			return 2
		}
		return 1
	})
}

// finish applies each policy once so border cells hold their values before
// the first advance.
func finish(s *Step) *Step {
	for _, f := range s.fields {
		if f.policy != nil {
			f.policy.Apply(f.grid)
		}
	}
	return s
}

func linearConvection1D(m grid.Spec) *Step {
	u := grid.New(m)
	topHat(u)
	sc := &scheme.LinearConvection1D{C: 1}
	return finish(&Step{
		kind:   scheme.KindLinearConvection1D,
		dt:     0.5 * u.DX / sc.C,
		speeds: [2]float64{sc.C, 0},
		fields: []field{{"u", u, grid.Fixed{Value: 1}}},
		update: func(dt float64) float64 { sc.Advance(u, dt); return 0 },
	})
}

func nonlinearConvection1D(m grid.Spec) *Step {
	u := grid.New(m)
	topHat(u)
	sc := &scheme.NonlinearConvection1D{}
	return finish(&Step{
		kind:   scheme.KindNonlinearConvection1D,
		dt:     0.5 * u.DX / 2,
		speeds: [2]float64{2, 0},
		fields: []field{{"u", u, grid.Fixed{Value: 1}}},
		update: func(dt float64) float64 { sc.Advance(u, dt); return 0 },
	})
}

func diffusion1D(m grid.Spec) *Step {
	u := grid.New(m)
	topHat(u)
	sc := &scheme.Diffusion1D{Nu: 0.3}
	return finish(&Step{
		kind:   scheme.KindDiffusion1D,
		dt:     0.2 * u.DX * u.DX / sc.Nu,
		nu:     sc.Nu,
		fields: []field{{"u", u, grid.Fixed{Value: 1}}},
		update: func(dt float64) float64 { sc.Advance(u, dt); return 0 },
	})
}

func burgers1D(m grid.Spec) *Step {
	const nu = 0.07
	u := grid.New(m)
	u.Fill(func(x, _ float64) float64 { return scheme.BurgersExact(x, 0, nu) })
	sc := &scheme.Burgers1D{Nu: nu}
	return finish(&Step{
		kind:   scheme.KindBurgers1D,
		dt:     nu * u.DX,
		speeds: [2]float64{analysis.Max(u.Data), 0},
		nu:     nu,
		fields: []field{{"u", u, grid.Periodic{}}},
		update: func(dt float64) float64 { sc.Advance(u, dt); return 0 },
		exact:  func(x, t float64) float64 { return scheme.BurgersExact(x, t, nu) },
	})
}

func linearConvection2D(m grid.Spec) *Step {
	u := grid.New(m)
	topHat(u)
	sc := &scheme.LinearConvection2D{CX: 1, CY: 1}
	return finish(&Step{
		kind:   scheme.KindLinearConvection2D,
		dt:     0.2 * u.DX,
		speeds: [2]float64{sc.CX, sc.CY},
		fields: []field{{"u", u, grid.Fixed{Value: 1}}},
		update: func(dt float64) float64 { sc.Advance(u, dt); return 0 },
	})
}

func nonlinearConvection2D(m grid.Spec) *Step {
	u, v := grid.New(m), grid.New(m)
	topHat(u)
	topHat(v)
	sc := &scheme.NonlinearConvection2D{}
	return finish(&Step{
		kind:   scheme.KindNonlinearConvection2D,
		dt:     0.2 * u.DX,
		speeds: [2]float64{2, 2},
		fields: []field{{"u", u, grid.Fixed{Value: 1}}, {"v", v, grid.Fixed{Value: 1}}},
		update: func(dt float64) float64 { sc.Advance(u, v, dt); return 0 },
	})
}

func diffusion2D(m grid.Spec) *Step {
	u := grid.New(m)
	topHat(u)
	sc := &scheme.Diffusion2D{Nu: 0.05}
	return finish(&Step{
		kind:   scheme.KindDiffusion2D,
		dt:     0.2 * u.DX * u.DY / sc.Nu,
		nu:     sc.Nu,
		fields: []field{{"u", u, grid.Fixed{Value: 1}}},
		update: func(dt float64) float64 { sc.Advance(u, dt); return 0 },
	})
}

func burgers2D(m grid.Spec) *Step {
	u, v := grid.New(m), grid.New(m)
	topHat(u)
	topHat(v)
	sc := &scheme.Burgers2D{Nu: 0.01}
	return finish(&Step{
		kind:   scheme.KindBurgers2D,
		dt:     0.05 * u.DX,
		speeds: [2]float64{2, 2},
		nu:     sc.Nu,
		fields: []field{{"u", u, grid.Fixed{Value: 1}}, {"v", v, grid.Fixed{Value: 1}}},
		update: func(dt float64) float64 { sc.Advance(u, v, dt); return 0 },
	})
}

func laplace(m grid.Spec) *Step {
	p := grid.New(m)
	bc := grid.Edges{
		Left:   grid.Dirichlet(0),
		Right:  grid.Profile(func(y float64) float64 { return y }),
		Bottom: grid.Neumann(),
		Top:    grid.Neumann(),
	}
	r := &scheme.Relaxation{Boundary: bc}
	return finish(&Step{
		kind:   scheme.KindLaplace2D,
		dt:     SweepInterval,
		fields: []field{{"p", p, bc}},
		update: func(float64) float64 { return r.Sweep(p) },
	})
}

func poisson(m grid.Spec) *Step {
	p, b := grid.New(m), grid.New(m)
	b.Set(m.NX/4, m.NY/4, 100)
	b.Set(3*m.NX/4, 3*m.NY/4, -100)
	bc := grid.Fixed{Value: 0}
	r := &scheme.Relaxation{Source: b, Boundary: bc}
	return finish(&Step{
		kind:   scheme.KindPoisson2D,
		dt:     SweepInterval,
		fields: []field{{"p", p, bc}, {"b", b, nil}},
		update: func(float64) float64 { return r.Sweep(p) },
	})
}

const (
	flowRho = 1.0
	flowNu  = 0.1
	flowDT  = 0.005
)

func cavityFlow(m grid.Spec) *Step {
	u, v, p := grid.New(m), grid.New(m), grid.New(m)
	pBC := grid.Edges{
		Left:   grid.Neumann(),
		Right:  grid.Neumann(),
		Bottom: grid.Neumann(),
		Top:    grid.Dirichlet(0),
	}
	lid := grid.Edges{
		Left:   grid.Dirichlet(0),
		Right:  grid.Dirichlet(0),
		Bottom: grid.Dirichlet(0),
		Top:    grid.Dirichlet(1),
	}
	f := &scheme.Flow{Rho: flowRho, Nu: flowNu, PressureIters: scheme.DefaultPressureIters, PressureBoundary: pBC}
	return finish(&Step{
		kind:   scheme.KindCavityFlow,
		dt:     flowDT,
		speeds: [2]float64{1, 1},
		nu:     flowNu,
		fields: []field{{"p", p, pBC}, {"u", u, lid}, {"v", v, grid.Fixed{Value: 0}}},
		update: func(dt float64) float64 { f.Advance(u, v, p, dt); return 0 },
	})
}

func channelFlow(m grid.Spec) *Step {
	u, v, p := grid.New(m), grid.New(m), grid.New(m)
	walls := grid.Chain{grid.Periodic{}, grid.Edges{Bottom: grid.Dirichlet(0), Top: grid.Dirichlet(0)}}
	pBC := grid.Chain{grid.Periodic{}, grid.Edges{Bottom: grid.Neumann(), Top: grid.Neumann()}}
	f := &scheme.Flow{Rho: flowRho, Nu: flowNu, Force: 1, PressureIters: scheme.DefaultPressureIters, PressureBoundary: pBC}
	return finish(&Step{
		kind: scheme.KindChannelFlow,
		dt:   flowDT,
		// centreline speed of the developed profile, F·h²/(8ν)
		speeds: [2]float64{f.Force * 4 / (8 * flowNu), 0},
		nu:     flowNu,
		fields: []field{{"p", p, pBC}, {"u", u, walls}, {"v", v, walls}},
		update: func(dt float64) float64 { f.Advance(u, v, p, dt); return 0 },
	})
}
