package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 16
)

type TickMsg time.Time

// Playback steps through the time rows of an exported grid, rendering the
// active row as a line plot.
type Playback struct {
	grid    [][]float64
	dt, dz  float64
	title   string
	row     int
	playing bool
	fps     int
}

func NewPlayback(grid [][]float64, dt, dz float64, title string) Playback {
	return Playback{
		grid:    grid,
		dt:      dt,
		dz:      dz,
		title:   title,
		playing: true,
		fps:     30,
	}
}

func (m Playback) Init() tea.Cmd {
	return m.tick()
}

func (m Playback) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles key input and playback ticks.
func (m Playback) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.row = 0
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "home":
			m.row = 0
		case "end":
			m.row = len(m.grid) - 1
		}
	case TickMsg:
		if m.playing {
			m.row++
			if m.row >= len(m.grid) {
				m.row = len(m.grid) - 1
				m.playing = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Playback) scrub(delta int) {
	m.playing = false
	m.row += delta
	if m.row < 0 {
		m.row = 0
	}
	if m.row >= len(m.grid) {
		m.row = len(m.grid) - 1
	}
}

func (m Playback) View() string {
	if len(m.grid) == 0 {
		return "no data\n"
	}

	graph := asciigraph.Plot(m.grid[m.row],
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
	)

	status := fmt.Sprintf("%s%s    %s%s",
		labelStyle.Render("row"),
		valueStyle.Render(fmt.Sprintf("%d / %d", m.row, len(m.grid)-1)),
		labelStyle.Render("t"),
		valueStyle.Render(fmt.Sprintf("%.6g", float64(m.row)*m.dt)),
	)
	state := "paused"
	if m.playing {
		state = "playing"
	}

	return headerStyle.Render(m.title) + "\n" +
		graphStyle.Render(graph) + "\n" +
		status + "  " + valueStyle.Render(state) + "\n" +
		helpStyle.Render("space pause  [ ] scrub  r restart  q quit") + "\n"
}

// RunPlayback starts an interactive playback of the grid.
func RunPlayback(grid [][]float64, dt, dz float64, title string) error {
	p := tea.NewProgram(NewPlayback(grid, dt, dz, title))
	_, err := p.Run()
	return err
}
