package sim

import (
	"github.com/san-kum/cfdsteps/internal/grid"
	"github.com/san-kum/cfdsteps/internal/scheme"
)

// Field is a named read-only grid view.
type Field struct {
	Name string
	View grid.View
}

// Snapshot is a consistent copy of a Step taken between advances. Renderers
// may keep it; later advances do not change it.
type Snapshot struct {
	Kind  scheme.Kind
	Title string
	// Time is simulated time; steady schemes leave it at zero and count
	// sweeps in Steps.
	Time      float64
	Steps     int
	Steady    bool
	Converged bool
	// Change is the last relative L1 change of a steady scheme.
	Change float64
	// Fields lists the primary field first: p for the flow and relaxation
	// schemes, u otherwise. Burgers 1D appends the analytic reference
	// "exact".
	Fields []Field
}

// Field looks up a view by name.
func (s Snapshot) Field(name string) (grid.View, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.View, true
		}
	}
	return grid.View{}, false
}

// Primary is the field a heatmap or plot shows by default. Flow schemes
// show pressure under their velocity arrows.
func (s Snapshot) Primary() Field {
	if len(s.Fields) == 0 {
		return Field{}
	}
	return s.Fields[0]
}

// Velocity returns the u and v views of a coupled scheme.
func (s Snapshot) Velocity() (u, v grid.View, ok bool) {
	u, okU := s.Field("u")
	v, okV := s.Field("v")
	return u, v, okU && okV
}
