// Package tui is the interactive terminal driver for the Life engine.
//
// The engine itself never schedules anything; this package owns the
// periodic tick that requests a step on a fixed cadence, translates key
// presses into engine calls, and renders the board after every change.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/pattern"
)

const historyCapacity = 120

var (
	boardStyle   = lipgloss.NewStyle().Padding(1, 2)
	statsStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	stoppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	aliveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	deadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

type TickMsg time.Time

// Model owns the engine and the UI state around it.
type Model struct {
	eng        *life.Engine
	tick       time.Duration
	cursorX    int
	cursorY    int
	generation int
	popHistory []float64
	stamps     []string
	stampIdx   int
	notice     string
	showHelp   bool
	seed       int64
}

// NewModel wraps an engine for interactive driving at the given cadence.
func NewModel(eng *life.Engine, tick time.Duration, seed int64) Model {
	return Model{
		eng:        eng,
		tick:       tick,
		cursorX:    eng.Width() / 2,
		cursorY:    eng.Height() / 2,
		popHistory: make([]float64, 0, historyCapacity),
		stamps:     pattern.Names(),
		seed:       seed,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles key presses and the step cadence.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.notice = ""
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.eng.ToggleRun()
		case "left", "h":
			m.moveCursor(-1, 0)
		case "right", "l":
			m.moveCursor(1, 0)
		case "up", "k":
			m.moveCursor(0, -1)
		case "down", "j":
			m.moveCursor(0, 1)
		case "enter", "t":
			m.edit(m.eng.ToggleCell(m.cursorX, m.cursorY))
		case "x":
			m.edit(m.eng.SetCell(m.cursorX, m.cursorY, false))
		case "c":
			if err := m.eng.Clear(); err != nil {
				m.edit(err)
			} else {
				m.generation = 0
				m.popHistory = m.popHistory[:0]
			}
		case "n":
			m.seed++
			if err := m.eng.Randomize(m.seed); err != nil {
				m.edit(err)
			} else {
				m.generation = 0
				m.popHistory = m.popHistory[:0]
			}
		case "p":
			m.stamp()
		case "s":
			m.singleStep()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		// Step is a no-op while stopped, so ticking unconditionally is
		// harmless; the cadence never pauses.
		if m.eng.IsRunning() {
			m.eng.Step()
			m.generation++
			m.recordPopulation()
		}
		return m, tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) moveCursor(dx, dy int) {
	w, h := m.eng.Width(), m.eng.Height()
	m.cursorX = ((m.cursorX+dx)%w + w) % w
	m.cursorY = ((m.cursorY+dy)%h + h) % h
}

// edit surfaces a refused edit in the status line; a running board is
// read-only and that is expected, not an error worth crashing over.
func (m *Model) edit(err error) {
	if err == nil {
		return
	}
	m.notice = "stop the game to edit cells (space)"
}

func (m *Model) stamp() {
	if len(m.stamps) == 0 {
		return
	}
	name := m.stamps[m.stampIdx]
	p, err := pattern.Lookup(name)
	if err != nil {
		m.notice = err.Error()
		return
	}
	if err := pattern.Place(m.eng, p, m.cursorX, m.cursorY); err != nil {
		m.edit(err)
		return
	}
	m.notice = fmt.Sprintf("stamped %s", name)
	m.stampIdx = (m.stampIdx + 1) % len(m.stamps)
}

// singleStep advances exactly one generation while stopped.
func (m *Model) singleStep() {
	if m.eng.IsRunning() {
		return
	}
	m.eng.Start()
	m.eng.Step()
	m.eng.Stop()
	m.generation++
	m.recordPopulation()
}

func (m *Model) recordPopulation() {
	m.popHistory = append(m.popHistory, float64(m.eng.Population()))
	if len(m.popHistory) > historyCapacity {
		m.popHistory = m.popHistory[1:]
	}
}

// View renders the board and the stats sidebar.
func (m Model) View() string {
	board := boardStyle.Render(m.renderBoard())

	var s strings.Builder
	s.WriteString(headerStyle.Render("GAME OF LIFE") + "\n")
	if m.eng.IsRunning() {
		s.WriteString(runningStyle.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(stoppedStyle.Render("STOPPED") + "\n\n")
	}

	s.WriteString(labelStyle.Render("Board") + valueStyle.Render(fmt.Sprintf("%dx%d", m.eng.Width(), m.eng.Height())) + "\n")
	s.WriteString(labelStyle.Render("Generation") + valueStyle.Render(fmt.Sprintf("%d", m.generation)) + "\n")
	s.WriteString(labelStyle.Render("Population") + valueStyle.Render(fmt.Sprintf("%d", m.eng.Population())) + "\n")
	s.WriteString(labelStyle.Render("Cadence") + valueStyle.Render(m.tick.String()) + "\n")
	s.WriteString(labelStyle.Render("Cursor") + valueStyle.Render(fmt.Sprintf("(%d,%d)", m.cursorX, m.cursorY)) + "\n")
	if len(m.stamps) > 0 {
		s.WriteString(labelStyle.Render("Stamp") + valueStyle.Render(m.stamps[m.stampIdx]) + "\n")
	}

	if len(m.popHistory) > 1 {
		chart := asciigraph.Plot(m.popHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Population"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.notice != "" {
		s.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Run/Stop T:Toggle S:Step\nP:Stamp N:Random C:Clear\n←↑↓→:Cursor ?:Help Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, board, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

const helpText = `
╔════════════════════════════════════════╗
║           KEYBOARD SHORTCUTS           ║
╠════════════════════════════════════════╣
║  Space      - Start / stop the game    ║
║  Arrows/hjkl- Move the cursor          ║
║  Enter/T    - Toggle cell (stopped)    ║
║  X          - Kill cell (stopped)      ║
║  S          - Single step (stopped)    ║
║  P          - Stamp pattern at cursor  ║
║  N          - Random board             ║
║  C          - Clear board              ║
║  ?          - Toggle this help         ║
║  Q          - Quit                     ║
╚════════════════════════════════════════╝`

// renderBoard draws the grid, two columns per cell, with the cursor
// highlighted while stopped.
func (m Model) renderBoard() string {
	cells := m.eng.Snapshot()
	w, h := m.eng.Width(), m.eng.Height()

	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			glyph := "· "
			style := deadStyle
			if cells[y*w+x] == 1 {
				glyph = "██"
				style = aliveStyle
			}
			if x == m.cursorX && y == m.cursorY && !m.eng.IsRunning() {
				style = cursorStyle
			}
			b.WriteString(style.Render(glyph))
		}
		if y < h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Run starts the bubbletea program around an engine.
func Run(eng *life.Engine, tick time.Duration, seed int64) error {
	p := tea.NewProgram(NewModel(eng, tick, seed))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
