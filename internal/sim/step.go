package sim

import (
	"math"

	"github.com/san-kum/cfdsteps/internal/grid"
	"github.com/san-kum/cfdsteps/internal/scheme"
)

// SweepInterval is the advance cadence of the steady schemes. Their dt is a
// pacing value only; a sweep does not integrate time.
const SweepInterval = 1.0 / 240

type field struct {
	name   string
	grid   *grid.Grid
	policy grid.Policy
}

// Step owns the grids of one scheme and advances them with a fixed dt.
// It is not safe for concurrent use.
type Step struct {
	kind   scheme.Kind
	dt     float64
	speeds [2]float64
	nu     float64
	fields []field

	// update runs the interior pass and returns the relative change for
	// steady schemes.
	update func(dt float64) float64
	exact  func(x, t float64) float64

	time   float64
	steps  int
	change float64
}

func (s *Step) Kind() scheme.Kind { return s.kind }

// Title is the host window title, e.g. "Step 4: Burgers' Equation 1D".
func (s *Step) Title() string { return s.kind.String() }

// FixedTimeStep is the dt chosen at construction from the scheme's
// stability bound.
func (s *Step) FixedTimeStep() float64 { return s.dt }

func (s *Step) Time() float64 { return s.time }

// Steps counts advances since construction.
func (s *Step) Steps() int { return s.steps }

// Converged reports whether a steady scheme's last sweep changed the field by
// less than scheme.ConvergenceTolerance. Time-dependent schemes never
// converge.
func (s *Step) Converged() bool {
	return s.kind.Steady() && s.steps > 0 && s.change < scheme.ConvergenceTolerance
}

// Stability returns the Courant and diffusion numbers at FixedTimeStep. Steady
// schemes report zero.
func (s *Step) Stability() scheme.Stability {
	if s.kind.Steady() {
		return scheme.Stability{}
	}
	g := s.fields[0].grid
	return scheme.Analyze(s.speeds[0], s.speeds[1], s.nu, s.dt, g.DX, g.DY)
}

// Advance runs the interior update then applies every grid's boundary
// policy. Steady schemes ignore dt and run one relaxation sweep.
func (s *Step) Advance(dt float64) {
	change := s.update(dt)
	for _, f := range s.fields {
		if f.policy != nil {
			f.policy.Apply(f.grid)
		}
	}
	s.steps++
	if s.kind.Steady() {
		s.change = change
		return
	}
	s.time += dt
}

// Snapshot copies the current fields for rendering.
func (s *Step) Snapshot() Snapshot {
	snap := Snapshot{
		Kind:      s.kind,
		Title:     s.Title(),
		Time:      s.time,
		Steps:     s.steps,
		Steady:    s.kind.Steady(),
		Converged: s.Converged(),
		Change:    s.change,
		Fields:    make([]Field, 0, len(s.fields)+1),
	}
	for _, f := range s.fields {
		snap.Fields = append(snap.Fields, Field{Name: f.name, View: f.grid.View()})
	}
	if s.exact != nil {
		ref := s.fields[0].grid.Clone()
		ref.Fill(func(x, _ float64) float64 { return s.exact(x, s.time) })
		snap.Fields = append(snap.Fields, Field{Name: "exact", View: ref.View()})
	}
	return snap
}

func (s *Step) finite() bool {
	for _, f := range s.fields {
		for _, v := range f.grid.Data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
