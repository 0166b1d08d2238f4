package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/cfdsteps/internal/grid"
	"github.com/san-kum/cfdsteps/internal/sim"
)

// Heatmap draws v as cols×rows half-block characters, two samples per
// character vertically, with y increasing upward.
func Heatmap(v grid.View, s Scale, pal Palette, cols, rows int) string {
	nx, ny := v.Size()
	if cols < 1 || rows < 1 {
		return ""
	}
	samples := 2 * rows

	var b strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		top := sampleIndex(samples-1-2*r, samples, ny)
		bottom := sampleIndex(samples-2-2*r, samples, ny)
		for c := 0; c < cols; c++ {
			i := sampleIndex(c, cols, nx)
			st := lipgloss.NewStyle().
				Foreground(lipgloss.Color(pal.Hex(s.Norm(v.At(i, top))))).
				Background(lipgloss.Color(pal.Hex(s.Norm(v.At(i, bottom)))))
			b.WriteString(st.Render("▀"))
		}
	}
	return b.String()
}

// sampleIndex maps sample k of n onto a grid axis of size cells.
func sampleIndex(k, n, size int) int {
	if n <= 1 || size <= 1 {
		return 0
	}
	return int(math.Round(float64(k) * float64(size-1) / float64(n-1)))
}

// Quiver draws velocity arrows on a braille canvas of cols×rows characters,
// one arrow every spacing dots, scaled so the fastest reaches spacing dots.
func Quiver(u, v grid.View, cols, rows, spacing int) *Canvas {
	c := NewCanvas(cols, rows)
	nx, ny := u.Size()
	w, h := 2*cols, 4*rows
	if spacing < 2 {
		spacing = 2
	}

	var peak float64
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			peak = math.Max(peak, math.Hypot(u.At(i, j), v.At(i, j)))
		}
	}
	if peak == 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return c
	}

	scale := float64(spacing) / peak
	for y := spacing / 2; y < h; y += spacing {
		for x := spacing / 2; x < w; x += spacing {
			i := sampleIndex(x, w, nx)
			j := sampleIndex(h-1-y, h, ny)
			du, dv := u.At(i, j)*scale, v.At(i, j)*scale
			c.Set(x, y)
			c.DrawLine(x, y, x+int(math.Round(du)), y-int(math.Round(dv)))
		}
	}
	return c
}

// Profile plots a 1D field, plus the analytic reference when present.
func Profile(snap sim.Snapshot, cols, rows int) string {
	u := snap.Primary().View
	if !u.Valid() {
		return ""
	}
	series := [][]float64{u.Values()}
	caption := snap.Primary().Name
	if ex, ok := snap.Field("exact"); ok {
		series = append(series, ex.Values())
		caption += " (with exact)"
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(rows),
		asciigraph.Width(cols),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}

// Render draws snap at roughly cols×rows characters: a profile plot for 1D
// schemes, a heatmap of the primary field for 2D ones, and a velocity quiver
// beside it when u and v are both present.
func Render(snap sim.Snapshot, pal Palette, cols, rows int) string {
	prim := snap.Primary()
	if !prim.View.Valid() {
		return ""
	}
	if _, ny := prim.View.Size(); ny == 1 {
		return Profile(snap, cols, rows)
	}

	field := prim
	scale := ScaleOf(field.View.Values())
	heat := Heatmap(field.View, scale, pal, cols, rows)
	legend := Subtle.Render(fmt.Sprintf("%s  [%.3g, %.3g]", field.Name, scale.Lo, scale.Hi))
	left := lipgloss.JoinVertical(lipgloss.Left, heat, legend)

	u, v, ok := snap.Velocity()
	if !ok {
		return left
	}
	arrows := quiverStyle.Render(Quiver(u, v, cols, rows, 6).String())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", arrows)
}
