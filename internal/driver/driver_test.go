package driver_test

import (
	"bytes"
	"log"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cfdsteps/internal/driver"
	"github.com/san-kum/cfdsteps/internal/scheme"
	"github.com/san-kum/cfdsteps/internal/sim"
)

type recorder struct {
	snaps []sim.Snapshot
}

func (r *recorder) Render(s sim.Snapshot) { r.snaps = append(r.snaps, s) }

var _ = Describe("Driver", func() {
	var (
		d   *driver.Driver
		dt  float64
		out *recorder
	)

	BeforeEach(func() {
		var err error
		d, err = driver.New(scheme.KindLinearConvection1D, nil)
		Expect(err).NotTo(HaveOccurred())
		dt = d.Step().FixedTimeStep()
		out = &recorder{}
	})

	Describe("frame cap", func() {
		It("runs at most five advances and keeps the remainder", func() {
			stats := d.Frame(100*dt, out)

			Expect(stats.Advances).To(Equal(driver.MaxAdvancesPerFrame))
			Expect(stats.Capped).To(BeTrue())
			Expect(d.Accumulated()).To(BeNumerically("~", 95*dt, 1e-12))
			Expect(d.Step().Steps()).To(Equal(5))
		})

		It("feeds the retained time into the next frame", func() {
			d.Frame(100*dt, out)
			stats := d.Frame(0, out)

			Expect(stats.Advances).To(Equal(5))
			Expect(d.Accumulated()).To(BeNumerically("~", 90*dt, 1e-12))
			Expect(d.Step().Steps()).To(Equal(10))
		})

		It("drains the backlog over later frames", func() {
			d.Frame(12*dt+dt/2, out)
			d.Frame(0, out)
			stats := d.Frame(0, out)

			Expect(stats.Advances).To(Equal(2))
			Expect(stats.Capped).To(BeFalse())
			Expect(d.Accumulated()).To(BeNumerically("~", dt/2, 1e-12))
		})

		It("does not advance on a short frame", func() {
			stats := d.Frame(dt/3, out)

			Expect(stats.Advances).To(BeZero())
			Expect(d.Accumulated()).To(BeNumerically("~", dt/3, 1e-15))
		})

		It("ignores negative elapsed time", func() {
			d.Frame(-1, out)
			Expect(d.Accumulated()).To(BeZero())
		})
	})

	Describe("rendering", func() {
		It("renders exactly one snapshot per frame after the advances", func() {
			d.Frame(3*dt+dt/10, out)
			d.Frame(0, out)

			Expect(out.snaps).To(HaveLen(2))
			Expect(out.snaps[0].Steps).To(Equal(3))
			Expect(out.snaps[0].Title).To(Equal("Step 1: Linear Convection 1D"))
			Expect(d.Frames()).To(Equal(2))
		})

		It("accepts a nil sink", func() {
			Expect(func() { d.Frame(dt, nil) }).NotTo(Panic())
		})

		It("adapts plain functions", func() {
			var got int
			d.Frame(2*dt+dt/10, driver.SinkFunc(func(s sim.Snapshot) { got = s.Steps }))
			Expect(got).To(Equal(2))
		})
	})

	Describe("selection", func() {
		It("wraps forward from 12 to 1", func() {
			Expect(d.Select(scheme.KindChannelFlow)).To(Succeed())
			Expect(d.Next()).To(Succeed())
			Expect(d.Step().Kind()).To(Equal(scheme.KindLinearConvection1D))
		})

		It("wraps backward from 1 to 12", func() {
			Expect(d.Prev()).To(Succeed())
			Expect(d.Step().Kind()).To(Equal(scheme.KindChannelFlow))
		})

		It("discards grid state and the accumulator on a switch", func() {
			initial := d.Step().Snapshot().Primary().View.Values()
			d.Frame(100*dt, out)
			Expect(d.Accumulated()).To(BeNumerically(">", 0))

			Expect(d.Next()).To(Succeed())
			Expect(d.Accumulated()).To(BeZero())
			Expect(d.Prev()).To(Succeed())

			snap := d.Step().Snapshot()
			Expect(snap.Steps).To(BeZero())
			Expect(snap.Primary().View.Values()).To(Equal(initial))
		})

		It("keeps the current step when selection fails", func() {
			err := d.Select(scheme.Kind(0))
			Expect(err).To(MatchError(sim.ErrInvalidScheme))
			Expect(d.Step().Kind()).To(Equal(scheme.KindLinearConvection1D))
		})

		It("logs each switch", func() {
			var buf bytes.Buffer
			logged, err := driver.New(scheme.KindCavityFlow, log.New(&buf, "", 0))
			Expect(err).NotTo(HaveOccurred())
			Expect(logged.Next()).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("Step 11: Cavity Flow"))
			Expect(buf.String()).To(ContainSubstring("Step 12: Channel Flow"))
		})
	})

	It("refuses an invalid starting scheme", func() {
		_, err := driver.New(scheme.Kind(13), nil)
		Expect(err).To(MatchError(sim.ErrInvalidScheme))
	})
})

var _ = Describe("Clocks", func() {
	It("returns zero on the first wall clock poll", func() {
		c := driver.NewWallClock()
		Expect(c.Elapsed()).To(BeZero())
		time.Sleep(2 * time.Millisecond)
		Expect(c.Elapsed()).To(BeNumerically(">", 0))
	})

	It("drives a frame from a fixed clock", func() {
		d, err := driver.New(scheme.KindDiffusion1D, nil)
		Expect(err).NotTo(HaveOccurred())
		dt := d.Step().FixedTimeStep()
		stats := d.Tick(driver.FixedClock(2.5*dt), nil)
		Expect(stats.Advances).To(Equal(2))
		Expect(stats.Accumulated).To(BeNumerically("~", dt/2, 1e-12))
	})
})
