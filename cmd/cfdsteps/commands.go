package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/cfdsteps/internal/analysis"
	"github.com/san-kum/cfdsteps/internal/config"
	"github.com/san-kum/cfdsteps/internal/driver"
	"github.com/san-kum/cfdsteps/internal/gui"
	"github.com/san-kum/cfdsteps/internal/scheme"
	"github.com/san-kum/cfdsteps/internal/sim"
	"github.com/san-kum/cfdsteps/internal/viz"
	"github.com/spf13/cobra"
)

// session is the resolved config shared by every command.
type session struct {
	cfg    *config.Config
	kind   scheme.Kind
	pal    viz.Palette
	logger *log.Logger
}

func loadSession(args []string) (*session, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Scheme = args[0]
	}
	if palette != "" {
		cfg.Palette = palette
	}
	if frameRate > 0 {
		cfg.FPS = frameRate
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	kind, err := config.ResolveScheme(cfg.Scheme)
	if err != nil {
		return nil, err
	}
	pal, err := viz.NewPalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:    cfg,
		kind:   kind,
		pal:    pal,
		logger: log.New(os.Stderr, log.Prefix(), log.LstdFlags),
	}, nil
}

func (s *session) driver() (*driver.Driver, error) {
	d, err := driver.New(s.kind, s.logger)
	if err != nil {
		return nil, fmt.Errorf("start %v: %w", s.kind, err)
	}
	return d, nil
}

func runDefault(cmd *cobra.Command, args []string) error {
	s, err := loadSession(args)
	if err != nil {
		return err
	}
	if s.cfg.Frontend == "tui" {
		return s.terminal()
	}
	return s.window()
}

func runGUI(cmd *cobra.Command, args []string) error {
	s, err := loadSession(args)
	if err != nil {
		return err
	}
	return s.window()
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := loadSession(args)
	if err != nil {
		return err
	}
	return s.terminal()
}

func (s *session) window() error {
	d, err := s.driver()
	if err != nil {
		return err
	}
	gui.Run(d, gui.Options{
		Width:   s.cfg.Width,
		Height:  s.cfg.Height,
		FPS:     s.cfg.FPS,
		Palette: s.pal,
	}, s.logger)
	return nil
}

func (s *session) terminal() error {
	d, err := s.driver()
	if err != nil {
		return err
	}
	return viz.Run(d, s.pal, s.cfg.FPS)
}

// simulate runs frames of a steady clock at the session frame rate.
func simulate(cmd *cobra.Command, s *session, n int) (*driver.Driver, sim.Snapshot, error) {
	d, err := s.driver()
	if err != nil {
		return nil, sim.Snapshot{}, err
	}
	clock := driver.FixedClock(1 / float64(s.cfg.FPS))
	var snap sim.Snapshot
	sink := driver.SinkFunc(func(sn sim.Snapshot) { snap = sn })
	for i := 0; i < n; i++ {
		if err := cmd.Context().Err(); err != nil {
			return nil, snap, err
		}
		d.Tick(clock, sink)
	}
	if n == 0 {
		snap = d.Step().Snapshot()
	}
	return d, snap, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	s, err := loadSession(args)
	if err != nil {
		return err
	}
	_, snap, err := simulate(cmd, s, frames)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, snap.Title)
	fmt.Fprintln(out, viz.Render(snap, s.pal, 64, 16))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if snap.Steady {
		fmt.Fprintf(w, "sweeps\t%d\n", snap.Steps)
		fmt.Fprintf(w, "change\t%.3e\n", snap.Change)
		fmt.Fprintf(w, "converged\t%v\n", snap.Converged)
	} else {
		fmt.Fprintf(w, "steps\t%d\n", snap.Steps)
		fmt.Fprintf(w, "time\t%.4f\n", snap.Time)
	}
	for _, f := range snap.Fields {
		vals := f.View.Values()
		fmt.Fprintf(w, "%s\tmin %.4f\tmax %.4f\tmean %.4f\tdev %.4f\n",
			f.Name, analysis.Min(vals), analysis.Max(vals), analysis.Mean(vals), analysis.L2Deviation(vals))
	}
	if u, v, ok := snap.Velocity(); ok {
		fmt.Fprintf(w, "divergence\t%.4e\n", analysis.Divergence(u, v))
		fmt.Fprintf(w, "kinetic energy\t%.4e\n", analysis.KineticEnergy(u.Values(), v.Values()))
	}
	if ex, ok := snap.Field("exact"); ok {
		u := snap.Primary().View
		fmt.Fprintf(w, "error vs exact\t%.4e\n", analysis.RelativeL1(u.Values(), ex.Values()))
	}
	return w.Flush()
}

func listSchemes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCHEME\tDT\tCOURANT\tDIFFUSION\tALIASES")

	for _, k := range scheme.All() {
		s, err := sim.New(k)
		if err != nil {
			return err
		}
		st := s.Stability()
		courant, diffusion := fmt.Sprintf("%.3f", st.Courant), fmt.Sprintf("%.3f", st.Diffusion)
		if k.Steady() {
			courant, diffusion = "-", "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%.5g\t%s\t%s\t%s\n",
			int(k), k.Name(), s.FixedTimeStep(), courant, diffusion, strings.Join(config.ListAliases(k), ","))
	}

	return w.Flush()
}

func benchSchemes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %d advances per scheme\n\n", advances)

	results := sim.Bench(cmd.Context(), scheme.All(), advances)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCHEME\tADVANCES\tTIME\tADVANCES/SEC")
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("%v: %w", r.Kind, r.Err)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%v\t%.0f\n", int(r.Kind), r.Kind.Name(), r.Advances, r.Elapsed, r.Rate())
	}
	return w.Flush()
}

func spectrum(cmd *cobra.Command, args []string) error {
	s, err := loadSession(args)
	if err != nil {
		return err
	}
	_, snap, err := simulate(cmd, s, frames)
	if err != nil {
		return err
	}

	prim := snap.Primary()
	_, ny := prim.View.Size()
	row := ny / 2
	data, xs := prim.View.Row(row), prim.View.XCoords()
	if s.kind == scheme.KindBurgers1D {
		// drop the ghost cells so the series is exactly one period
		data, xs = data[1:len(data)-1], xs[1:len(xs)-1]
	}

	ps := analysis.PowerSpectrum(data)
	if len(ps) < 2 {
		return fmt.Errorf("%s: profile too short", snap.Title)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "power spectrum: %s, field %s row %d (y=%.3f)\n\n", snap.Title, prim.Name, row, prim.View.YCoords()[row])
	fmt.Fprintln(out, asciigraph.Plot(ps[1:],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("mode magnitude (mean removed)"),
	))
	fmt.Fprintln(out)

	mode := analysis.DominantMode(ps)
	dx, _ := prim.View.Spacing()
	span := xs[len(xs)-1] - xs[0] + dx
	fmt.Fprintf(out, "dominant mode: %d\n", mode)
	if mode > 0 {
		fmt.Fprintf(out, "wavelength: %.4f\n", span/float64(mode))
	}
	return nil
}
