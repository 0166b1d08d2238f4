package driver

import (
	"io"
	"log"

	"github.com/san-kum/cfdsteps/internal/scheme"
	"github.com/san-kum/cfdsteps/internal/sim"
)

// MaxAdvancesPerFrame caps catch-up work after a stall.
const MaxAdvancesPerFrame = 5

// Sink draws one snapshot. Nothing it does feeds back into the simulation.
type Sink interface {
	Render(sim.Snapshot)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(sim.Snapshot)

func (f SinkFunc) Render(s sim.Snapshot) { f(s) }

// FrameStats describes the work done by one Frame call.
type FrameStats struct {
	Advances    int
	Accumulated float64
	// Capped is set when the cap stopped the frame with a full timestep
	// still pending.
	Capped bool
}

// Driver owns the active Step and the fixed-timestep accumulator. It holds
// all per-session state; a host creates one and calls Frame once per frame.
type Driver struct {
	step   *sim.Step
	acc    float64
	frames int
	logger *log.Logger
}

// New builds the Step for start. A nil logger discards output.
func New(start scheme.Kind, logger *log.Logger) (*Driver, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	d := &Driver{logger: logger}
	if err := d.Select(start); err != nil {
		return nil, err
	}
	return d, nil
}

// Select replaces the active Step with a fresh one for k and clears the
// accumulator. On error the current Step is kept.
func (d *Driver) Select(k scheme.Kind) error {
	s, err := sim.New(k)
	if err != nil {
		return err
	}
	d.step = s
	d.acc = 0
	d.logger.Printf("selected %s (dt=%.6g)", s.Title(), s.FixedTimeStep())
	return nil
}

// Next selects the following scheme, wrapping 12 to 1.
func (d *Driver) Next() error { return d.Select(d.step.Kind().Next()) }

// Prev selects the preceding scheme, wrapping 1 to 12.
func (d *Driver) Prev() error { return d.Select(d.step.Kind().Prev()) }

func (d *Driver) Step() *sim.Step { return d.step }

func (d *Driver) Accumulated() float64 { return d.acc }

func (d *Driver) Frames() int { return d.frames }

// Frame adds elapsed seconds to the accumulator, runs up to
// MaxAdvancesPerFrame fixed advances, then renders one snapshot to sink if
// it is non-nil. Time left over stays in the accumulator for later frames.
// Each advance subtracts dt, so the remainder equals elapsed - n·dt only to
// rounding error.
func (d *Driver) Frame(elapsed float64, sink Sink) FrameStats {
	if elapsed > 0 {
		d.acc += elapsed
	}
	dt := d.step.FixedTimeStep()

	var stats FrameStats
	for d.acc >= dt && stats.Advances < MaxAdvancesPerFrame {
		d.step.Advance(dt)
		d.acc -= dt
		stats.Advances++
	}
	stats.Accumulated = d.acc
	stats.Capped = d.acc >= dt

	if sink != nil {
		sink.Render(d.step.Snapshot())
	}
	d.frames++
	return stats
}

// Tick polls clock and runs one Frame.
func (d *Driver) Tick(clock Clock, sink Sink) FrameStats {
	return d.Frame(clock.Elapsed(), sink)
}
