// Package preview draws the ring in a terminal. bubbletea's tick message is
// the render loop, and the rotation is painted as coloured cells.
package preview

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-g-everett/ledring/stream"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")).Italic(true)
)

// Lifecycle is the part of stream.Driver the preview toggles.
type Lifecycle interface {
	Start() bool
	Stop()
	Status() stream.Status
}

type frameMsg time.Time

// Signal holds the latest rotation. It is the Sink handed to the driver, and
// is shared by every copy of the Model.
type Signal struct {
	rotation float64
}

// Render records the rotation.
func (s *Signal) Render(signal float64) {
	s.rotation = signal
}

// Model is the bubbletea model for the terminal preview.
type Model struct {
	clock    *stream.FrameClock
	driver   Lifecycle
	signal   *Signal
	gradient stream.Gradient
	title    string
	radius   int
	interval time.Duration
	started  time.Time
}

// NewModel creates a preview. The driver must have been built on clock with
// signal as its sink.
func NewModel(clock *stream.FrameClock, driver Lifecycle, signal *Signal, gradient stream.Gradient, title string, frameRate float64) Model {
	interval := time.Second / 30
	if frameRate > 0 {
		interval = time.Duration(float64(time.Second) / frameRate)
	}
	return Model{
		clock:    clock,
		driver:   driver,
		signal:   signal,
		gradient: gradient,
		title:    title,
		radius:   8,
		interval: interval,
		started:  time.Now(),
	}
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init starts the driver and the frame loop.
func (m Model) Init() tea.Cmd {
	m.driver.Start()
	return m.frame()
}

// Update handles frames and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.clock.Tick(time.Time(msg).Sub(m.started))
		return m, m.frame()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.driver.Stop()
			return m, tea.Quit
		case " ", "s":
			if m.driver.Status().State == stream.Running.String() {
				m.driver.Stop()
			} else {
				m.driver.Start()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		// Keep the ring inside the window: rows are 2r+1 tall, 4r+1 wide.
		r := (msg.Height - 4) / 2
		if w := (msg.Width - 1) / 4; w < r {
			r = w
		}
		if r < 3 {
			r = 3
		}
		m.radius = r
		return m, nil
	}

	return m, nil
}

// View renders the ring and a status line.
func (m Model) View() string {
	status := m.driver.Status()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(RenderRing(m.gradient, m.signal.rotation, m.radius))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s  %6.1f°  ticks %d", status.State, status.Signal, status.Ticks)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space: start/stop  q: quit"))
	return b.String()
}

// RenderRing draws a ring of the given radius in character cells, coloured by
// the gradient rotated by rotation degrees. Cells are twice as tall as they
// are wide, so each row holds 4r+1 columns.
func RenderRing(g stream.Gradient, rotation float64, radius int) string {
	var b strings.Builder
	for row := -radius; row <= radius; row++ {
		for col := -2 * radius; col <= 2*radius; col++ {
			x := float64(col) / 2
			y := float64(row)
			d := math.Hypot(x, y)
			if math.Abs(d-float64(radius)) >= 0.5 {
				b.WriteByte(' ')
				continue
			}

			angle := math.Atan2(y, x) * 180 / math.Pi
			c := g.At(angle, rotation).Clamped()
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("█"))
		}
		if row < radius {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
