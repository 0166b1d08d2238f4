package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/cfdsteps/internal/driver"
	"github.com/san-kum/cfdsteps/internal/sim"
)

const (
	plotCols = 64
	plotRows = 20
)

type TickMsg time.Time

// Model hosts a driver.Driver in a Bubble Tea program. Each TickMsg is one
// frame: the driver polls the model's clock and the resulting snapshot is
// kept for View. Switching and resuming start a fresh clock.
type Model struct {
	drv      *driver.Driver
	pal      Palette
	interval time.Duration
	clock    driver.Clock
	newClock func() driver.Clock
	snap     sim.Snapshot
	stats    driver.FrameStats
	running  bool
	err      error
}

func wallClock() driver.Clock { return driver.NewWallClock() }

// NewModel builds a model ticking fps times a second.
func NewModel(d *driver.Driver, pal Palette, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		drv:      d,
		pal:      pal,
		interval: time.Second / time.Duration(fps),
		clock:    wallClock(),
		newClock: wallClock,
		snap:     d.Step().Snapshot(),
		running:  true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and runs frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n":
			m.switchTo(m.drv.Next)
		case "left", "h", "p":
			m.switchTo(m.drv.Prev)
		case " ":
			m.running = !m.running
			if m.running {
				m.clock = m.newClock()
			}
		}
	case TickMsg:
		if m.running {
			m.stats = m.drv.Tick(m.clock, driver.SinkFunc(func(s sim.Snapshot) { m.snap = s }))
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) switchTo(sel func() error) {
	if err := sel(); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.clock = m.newClock()
	m.stats = driver.FrameStats{}
	m.snap = m.drv.Step().Snapshot()
}

// Snapshot is the last rendered snapshot.
func (m Model) Snapshot() sim.Snapshot { return m.snap }

// View renders the TUI interface.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(m.snap.Title) + "\n")

	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}
	s.WriteString(status + "\n\n")

	field := Render(m.snap, m.pal, plotCols, plotRows)
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, field, statsStyle.Render(m.statsView())))

	if m.err != nil {
		s.WriteString("\n" + StatusPaused.Render(m.err.Error()))
	}
	s.WriteString("\n" + helpStyle.Render("←/h prev  →/l next  space pause  q quit"))
	return s.String()
}

func (m Model) statsView() string {
	step := m.drv.Step()
	rows := [][2]string{
		{"dt", fmt.Sprintf("%.4g", step.FixedTimeStep())},
		{"advances", fmt.Sprintf("%d", m.snap.Steps)},
		{"per frame", fmt.Sprintf("%d", m.stats.Advances)},
		{"backlog", fmt.Sprintf("%.4g s", m.stats.Accumulated)},
		{"frames", fmt.Sprintf("%d", m.drv.Frames())},
	}
	if m.snap.Steady {
		conv := "no"
		if m.snap.Converged {
			conv = "yes"
		}
		rows = append(rows, [2]string{"change", fmt.Sprintf("%.2e", m.snap.Change)}, [2]string{"converged", conv})
	} else {
		st := step.Stability()
		rows = append(rows,
			[2]string{"time", fmt.Sprintf("%.3f", m.snap.Time)},
			[2]string{"courant", fmt.Sprintf("%.3f", st.Courant)},
			[2]string{"diffusion", fmt.Sprintf("%.3f", st.Diffusion)},
		)
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(labelStyle.Render(r[0]) + valueStyle.Render(r[1]))
	}
	return b.String()
}

// Run blocks until the user quits.
func Run(d *driver.Driver, pal Palette, fps int) error {
	p := tea.NewProgram(NewModel(d, pal, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
