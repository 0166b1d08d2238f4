package viz

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/cfdsteps/internal/driver"
	"github.com/san-kum/cfdsteps/internal/grid"
	"github.com/san-kum/cfdsteps/internal/scheme"
	"github.com/san-kum/cfdsteps/internal/sim"
)

func testPalette(t *testing.T) Palette {
	t.Helper()
	pal, err := NewPalette("viridis")
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	return pal
}

func TestPalette(t *testing.T) {
	pal := testPalette(t)
	if pal.Hex(0) == pal.Hex(1) {
		t.Error("palette ends should differ")
	}
	if got := pal.Hex(0.5); len(got) != 7 || got[0] != '#' {
		t.Errorf("hex = %q", got)
	}
	if pal.Hex(-3) != pal.Hex(0) || pal.Hex(7) != pal.Hex(1) || pal.Hex(math.NaN()) != pal.Hex(0) {
		t.Error("out of range values should clamp")
	}
	if _, err := NewPalette("sepia"); !errors.Is(err, ErrUnknownPalette) || !strings.Contains(err.Error(), "viridis") {
		t.Errorf("got %v", err)
	}
	for _, n := range PaletteNames() {
		if _, err := NewPalette(n); err != nil {
			t.Errorf("%s: %v", n, err)
		}
	}
}

func TestScaleOf(t *testing.T) {
	tests := []struct {
		name   string
		data   []float64
		lo, hi float64
	}{
		{"span", []float64{3, -1, 2}, -1, 3},
		{"flat", []float64{2, 2}, 2, 3},
		{"empty", nil, 0, 1},
		{"skips nan", []float64{math.NaN(), 1, 4, math.Inf(1)}, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScaleOf(tt.data)
			if s.Lo != tt.lo || s.Hi != tt.hi {
				t.Errorf("got [%v, %v], want [%v, %v]", s.Lo, s.Hi, tt.lo, tt.hi)
			}
		})
	}
	if n := (Scale{Lo: 1, Hi: 3}).Norm(2); n != 0.5 {
		t.Errorf("norm = %v", n)
	}
}

func TestHeatmapShape(t *testing.T) {
	g := grid.New2D(21, 11, 0, 2, 0, 1)
	g.Fill(func(x, y float64) float64 { return x + y })
	out := Heatmap(g.View(), ScaleOf(g.Data), testPalette(t), 30, 8)

	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d rows, want 8", len(lines))
	}
	if strings.Count(lines[0], "▀") != 30 {
		t.Errorf("row has %d cells", strings.Count(lines[0], "▀"))
	}
	if Heatmap(g.View(), ScaleOf(g.Data), testPalette(t), 0, 5) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestSampleIndexHitsEnds(t *testing.T) {
	if sampleIndex(0, 10, 41) != 0 || sampleIndex(9, 10, 41) != 40 {
		t.Error("samples should reach both edges")
	}
	if sampleIndex(3, 1, 41) != 0 {
		t.Error("single sample should map to 0")
	}
}

// lit counts the raised braille dots in rendered canvas text.
func lit(s string) int {
	n := 0
	for _, r := range s {
		if r < 0x2800 || r > 0x28ff {
			continue
		}
		for m := r - 0x2800; m != 0; m &= m - 1 {
			n++
		}
	}
	return n
}

func TestQuiver(t *testing.T) {
	u := grid.New2D(11, 11, 0, 1, 0, 1)
	v := grid.New2D(11, 11, 0, 1, 0, 1)
	if n := lit(Quiver(u.View(), v.View(), 20, 10, 6).String()); n != 0 {
		t.Errorf("still field lit %d dots", n)
	}

	u.Fill(func(_, _ float64) float64 { return 1 })
	out := Quiver(u.View(), v.View(), 20, 10, 6).String()
	if lit(out) == 0 {
		t.Fatal("uniform flow drew nothing")
	}
	if got := len(strings.Split(out, "\n")); got != 10 {
		t.Errorf("got %d rows", got)
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 0)
	if n := lit(c.String()); n != 8 {
		t.Errorf("lit %d, want 8", n)
	}
	c.Set(-1, 3)
	c.Set(100, 3)
	if n := lit(c.String()); n != 8 {
		t.Error("off-canvas dots should be ignored")
	}
	if first := []rune(c.String())[0]; first != 0x2809 {
		t.Errorf("top-left cell %U, want U+2809", first)
	}
}

func TestRenderPicksLayout(t *testing.T) {
	pal := testPalette(t)
	for _, k := range []scheme.Kind{scheme.KindBurgers1D, scheme.KindDiffusion2D, scheme.KindCavityFlow} {
		s, err := sim.New(k)
		if err != nil {
			t.Fatal(err)
		}
		s.Advance(s.FixedTimeStep())
		out := Render(s.Snapshot(), pal, 40, 10)
		if out == "" {
			t.Errorf("%v rendered nothing", k)
		}
		if k.Is2D() && !strings.Contains(out, "▀") {
			t.Errorf("%v: expected a heatmap", k)
		}
	}
	if Render(sim.Snapshot{}, pal, 10, 10) != "" {
		t.Error("empty snapshot should render nothing")
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	d, err := driver.New(scheme.KindLinearConvection1D, nil)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(d, testPalette(t), 60)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelKeysSwitchSchemes(t *testing.T) {
	tests := []struct {
		keys []string
		want scheme.Kind
	}{
		{[]string{"right"}, scheme.KindNonlinearConvection1D},
		{[]string{"left"}, scheme.KindChannelFlow},
		{[]string{"l", "l", "h"}, scheme.KindNonlinearConvection1D},
		{[]string{"left", "right"}, scheme.KindLinearConvection1D},
	}

	for _, tt := range tests {
		var m tea.Model = newTestModel(t)
		for _, k := range tt.keys {
			m, _ = m.Update(key(k))
		}
		got := m.(Model).Snapshot().Kind
		if got != tt.want {
			t.Errorf("keys %v: got %v, want %v", tt.keys, got, tt.want)
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

// scriptedClock replays fixed intervals, then reports zero.
type scriptedClock struct {
	steps []float64
}

func (c *scriptedClock) Elapsed() float64 {
	if len(c.steps) == 0 {
		return 0
	}
	d := c.steps[0]
	c.steps = c.steps[1:]
	return d
}

func TestModelTicksRunFrames(t *testing.T) {
	m := newTestModel(t)
	var clocks int
	m.newClock = func() driver.Clock {
		clocks++
		return &scriptedClock{steps: []float64{0, 0.11}}
	}
	m.clock = m.newClock()

	var tm tea.Model = m
	start := time.Unix(100, 0)
	tm, cmd := tm.Update(TickMsg(start))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if tm.(Model).Snapshot().Steps != 0 {
		t.Fatal("first tick has no elapsed time")
	}

	// dt is 0.025, so 0.11 s runs four advances
	tm, _ = tm.Update(TickMsg(start.Add(time.Second)))
	if got := tm.(Model).Snapshot().Steps; got != 4 {
		t.Errorf("0.11 s frame ran %d advances, want 4", got)
	}

	tm, _ = tm.Update(key("space"))
	tm, _ = tm.Update(TickMsg(start.Add(2 * time.Second)))
	if got := tm.(Model).Snapshot().Steps; got != 4 {
		t.Errorf("paused model advanced to %d", got)
	}

	// resuming starts a new clock, whose first poll is zero
	tm, _ = tm.Update(key("space"))
	tm, _ = tm.Update(TickMsg(start.Add(3 * time.Second)))
	if clocks != 2 {
		t.Errorf("resume built %d clocks, want 2", clocks)
	}
	if got := tm.(Model).Snapshot().Steps; got != 4 {
		t.Errorf("resume replayed the pause: %d advances", got)
	}

	tm, _ = tm.Update(key("right"))
	if clocks != 3 {
		t.Errorf("switch built %d clocks, want 3", clocks)
	}
}

func TestModelUsesWallClockByDefault(t *testing.T) {
	m := newTestModel(t)
	if _, ok := m.clock.(*driver.WallClock); !ok {
		t.Errorf("default clock is %T", m.clock)
	}
	if got := m.clock.Elapsed(); got != 0 {
		t.Errorf("first wall clock poll = %v", got)
	}
}

func TestModelView(t *testing.T) {
	var m tea.Model = newTestModel(t)
	out := m.View()
	for _, want := range []string{"Step 1: Linear Convection 1D", "RUNNING", "courant", "frames"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = m.Update(key("h"))
	m, _ = m.Update(key("h"))
	m, _ = m.Update(key("h"))
	out = m.View()
	if !strings.Contains(out, "Step 10: Poisson Equation 2D") || !strings.Contains(out, "converged") {
		t.Errorf("steady view wrong:\n%s", out)
	}
}
