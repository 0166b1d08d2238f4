package scheme

import "fmt"

// Kind tags one of the twelve discretizations. Valid kinds are 1..12.
type Kind int

const (
	KindLinearConvection1D Kind = iota + 1
	KindNonlinearConvection1D
	KindDiffusion1D
	KindBurgers1D
	KindLinearConvection2D
	KindNonlinearConvection2D
	KindDiffusion2D
	KindBurgers2D
	KindLaplace2D
	KindPoisson2D
	KindCavityFlow
	KindChannelFlow
)

// Count is the number of kinds.
const Count = 12

var names = [Count + 1]string{
	"",
	"Linear Convection 1D",
	"Nonlinear Convection 1D",
	"Diffusion 1D",
	"Burgers' Equation 1D",
	"Linear Convection 2D",
	"Nonlinear Convection 2D",
	"Diffusion 2D",
	"Burgers' Equation 2D",
	"Laplace Equation 2D",
	"Poisson Equation 2D",
	"Cavity Flow",
	"Channel Flow",
}

func (k Kind) Valid() bool { return k >= 1 && k <= Count }

func (k Kind) Name() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return names[k]
}

// String is the window title form, e.g. "Step 11: Cavity Flow".
func (k Kind) String() string {
	if !k.Valid() {
		return k.Name()
	}
	return fmt.Sprintf("Step %d: %s", int(k), names[k])
}

// Steady reports whether the kind relaxes toward a fixed point instead of
// integrating in time.
func (k Kind) Steady() bool { return k == KindLaplace2D || k == KindPoisson2D }

// Is2D reports whether the kind runs on a 2D grid.
func (k Kind) Is2D() bool { return k >= KindLinearConvection2D && k <= KindChannelFlow }

// Wrap maps any integer onto 1..12 with wrap-around, so Wrap(0) == 12 and
// Wrap(13) == 1.
func Wrap(id int) Kind {
	m := (id - 1) % Count
	if m < 0 {
		m += Count
	}
	return Kind(m + 1)
}

func (k Kind) Next() Kind { return Wrap(int(k) + 1) }

func (k Kind) Prev() Kind { return Wrap(int(k) - 1) }

// All returns every kind in order.
func All() []Kind {
	out := make([]Kind, 0, Count)
	for k := Kind(1); k <= Count; k++ {
		out = append(out, k)
	}
	return out
}
