package viz

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/mazznoer/colorgrad"
)

const paletteSize = 256

var ErrUnknownPalette = errors.New("viz: unknown palette")

var gradients = map[string]func() colorgrad.Gradient{
	"viridis": colorgrad.Viridis,
	"inferno": colorgrad.Inferno,
	"magma":   colorgrad.Magma,
	"plasma":  colorgrad.Plasma,
	"turbo":   colorgrad.Turbo,
	"cividis": colorgrad.Cividis,
}

// Palette maps a normalized scalar in [0, 1] to a colour. It is sampled once
// at construction and safe to share.
type Palette struct {
	Name   string
	colors []color.Color
}

func NewPalette(name string) (Palette, error) {
	mk, ok := gradients[name]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownPalette, name, strings.Join(PaletteNames(), ", "))
	}
	return Palette{Name: name, colors: mk().Colors(paletteSize)}, nil
}

// PaletteNames lists the available palettes.
func PaletteNames() []string {
	names := make([]string, 0, len(gradients))
	for n := range gradients {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// At returns the colour for t, clamped to [0, 1]. NaN maps to the low end.
func (p Palette) At(t float64) color.Color {
	if len(p.colors) == 0 {
		return color.Black
	}
	return p.colors[p.index(t)]
}

// RGB returns the 8-bit channels for t.
func (p Palette) RGB(t float64) (r, g, b uint8) {
	cr, cg, cb, _ := p.At(t).RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)
}

// Hex returns t's colour as "#rrggbb".
func (p Palette) Hex(t float64) string {
	r, g, b := p.RGB(t)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (p Palette) index(t float64) int {
	if math.IsNaN(t) || t <= 0 {
		return 0
	}
	if t >= 1 {
		return len(p.colors) - 1
	}
	return int(t * float64(len(p.colors)-1))
}

// Scale maps field values onto [0, 1].
type Scale struct {
	Lo, Hi float64
}

// ScaleOf spans the finite values in data. A flat field gets a unit span.
func ScaleOf(data []float64) Scale {
	s := Scale{Lo: math.Inf(1), Hi: math.Inf(-1)}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s.Lo = math.Min(s.Lo, v)
		s.Hi = math.Max(s.Hi, v)
	}
	if s.Lo > s.Hi {
		return Scale{0, 1}
	}
	if s.Hi == s.Lo {
		s.Hi = s.Lo + 1
	}
	return s
}

func (s Scale) Norm(v float64) float64 {
	return (v - s.Lo) / (s.Hi - s.Lo)
}
