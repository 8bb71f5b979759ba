// Package tui draws an automaton in the terminal. Each character cell shows
// two grid rows using half-block glyphs. Any mouse press or the space bar
// starts the simulation.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"conway-live/internal/core"
)

// statusLines is the number of terminal rows reserved below the board.
const statusLines = 2

type tickMsg time.Time

// Model is the bubbletea model driving an automaton.
type Model struct {
	sim   core.Automaton
	frame time.Duration
	last  time.Time

	width, height int
}

// New returns a Model that advances sim once per frame.
func New(sim core.Automaton, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		sim:    sim,
		frame:  time.Second / time.Duration(fps),
		width:  80,
		height: 24,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init schedules the first frame.
func (m Model) Init() tea.Cmd { return m.tick() }

// Update forwards presses to TriggerRun and frame ticks to Advance.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space", "enter":
			m.sim.TriggerRun()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.sim.TriggerRun()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.sim.Advance(now.Sub(m.last).Seconds())
		}
		m.last = now
		return m, m.tick()
	}
	return m, nil
}

// View renders the visible part of the board above a status line.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(board.Render(m.renderBoard()))
	b.WriteByte('\n')
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderBoard crops the grid to the terminal and folds row pairs into
// half-block glyphs.
func (m Model) renderBoard() string {
	size := m.sim.Size()
	cells := m.sim.Cells()
	cols := min(size.W, max(m.width, 1))
	rows := min((size.H+1)/2, max(m.height-statusLines, 1))

	var b strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		top := 2 * r
		for x := 0; x < cols; x++ {
			upper := cells[top*size.W+x] != 0
			lower := top+1 < size.H && cells[(top+1)*size.W+x] != 0
			b.WriteRune(glyph(upper, lower))
		}
	}
	return b.String()
}

func glyph(upper, lower bool) rune {
	switch {
	case upper && lower:
		return '█'
	case upper:
		return '▀'
	case lower:
		return '▄'
	}
	return ' '
}

func (m Model) renderStatus() string {
	state := statusStopped.Render("STOPPED")
	if m.sim.Running() {
		state = statusRunning.Render("RUNNING")
	}
	population := 0
	for _, c := range m.sim.Cells() {
		population += int(c)
	}
	return fmt.Sprintf("%s  %s %s  %s %s\n%s",
		state,
		metricLabel.Render("gen"), metricValue.Render(fmt.Sprint(m.sim.Generation())),
		metricLabel.Render("pop"), metricValue.Render(fmt.Sprint(population)),
		keyHint.Render("click or space to start · q to quit"),
	)
}

// Run starts the terminal frontend and blocks until the user quits.
func Run(sim core.Automaton, fps int) error {
	p := tea.NewProgram(New(sim, fps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
