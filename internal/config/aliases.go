package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/cfdsteps/internal/scheme"
)

// Aliases maps short names to scheme kinds.
var Aliases = map[string]scheme.Kind{
	"linear1d":    scheme.KindLinearConvection1D,
	"convection":  scheme.KindLinearConvection1D,
	"nonlinear1d": scheme.KindNonlinearConvection1D,
	"diffusion1d": scheme.KindDiffusion1D,
	"diffusion":   scheme.KindDiffusion1D,
	"burgers1d":   scheme.KindBurgers1D,
	"burgers":     scheme.KindBurgers1D,
	"linear2d":    scheme.KindLinearConvection2D,
	"nonlinear2d": scheme.KindNonlinearConvection2D,
	"diffusion2d": scheme.KindDiffusion2D,
	"burgers2d":   scheme.KindBurgers2D,
	"laplace":     scheme.KindLaplace2D,
	"poisson":     scheme.KindPoisson2D,
	"cavity":      scheme.KindCavityFlow,
	"channel":     scheme.KindChannelFlow,
}

// ResolveScheme accepts a number in 1..12 or an alias, case-insensitively.
func ResolveScheme(name string) (scheme.Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if n, err := strconv.Atoi(name); err == nil {
		k := scheme.Kind(n)
		if !k.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrUnknownScheme, n)
		}
		return k, nil
	}
	if k, ok := Aliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// ListAliases returns the sorted aliases of k.
func ListAliases(k scheme.Kind) []string {
	var names []string
	for name, kind := range Aliases {
		if kind == k {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
