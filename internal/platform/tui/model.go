package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// maxFrameTime caps how far one tick may advance the controller.
const maxFrameTime = 250 * time.Millisecond

// bellHold is how long the bell stays in the view. The renderer only
// rewrites changed lines, so it is sent once.
const bellHold = 250 * time.Millisecond

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one puzzle session.
type Model struct {
	sess     *Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	input    core.InputFrame
	lastTick time.Time
	bellEnd  time.Time // View carries a bell until then
	quitting bool
}

// NewModel creates a new Bubble Tea model for the session.
func NewModel(sess *Session, keys KeyMap) Model {
	cfg := sess.runtime
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sess:   sess,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   keys,
		help:   h,
		config: cfg,
		input:  core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input to actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionNone:
	default:
		m.input.Push(action)
	}
	return m, nil
}

// handleMouse turns a left click on a tile into a pick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	grid := m.sess.ctrl.Grid()
	if grid == nil {
		return m, nil
	}
	layout, ok := layoutBoard(m.boardArea(), grid.Size())
	if !ok {
		return m, nil
	}
	if id, ok := layout.facing(m.sess.ctrl.Side()).pick(grid, msg.X, msg.Y); ok {
		m.input.Pick(id)
	}
	return m, nil
}

// handleTick advances the controller by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.TickInterval()
	if !m.lastTick.IsZero() {
		dt = max(0, min(now.Sub(m.lastTick), maxFrameTime))
	}
	m.lastTick = now

	m.sess.step(m.input, dt)
	m.input = core.NewInputFrame()
	if m.sess.takeBell() {
		m.bellEnd = now.Add(bellHold)
	}

	return m, tickCmd(m.config.TickInterval())
}

// helpHeight returns the number of lines the help view takes.
func (m Model) helpHeight() int {
	if m.help.ShowAll {
		return len(m.keys.FullHelp()[0])
	}
	return 1
}

// boardArea is the part of the terminal drawn from the screen buffer.
func (m Model) boardArea() core.Rect {
	return core.NewRect(0, 0, m.config.ScreenW, max(0, m.config.ScreenH-m.helpHeight()))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	area := m.boardArea()
	m.screen.Resize(area.W, area.H)
	m.screen.Clear()
	m.draw(m.screen)

	var b strings.Builder
	if m.ringing() {
		b.WriteString("\a")
	}
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// ringing reports whether the view should carry the terminal bell.
func (m Model) ringing() bool {
	return m.lastTick.Before(m.bellEnd)
}

// draw paints header, board and status line into the screen.
func (m Model) draw(s *core.Screen) {
	sess := m.sess
	painter, ready := sess.painter()
	if !ready {
		s.DrawTextCentered(s.Bounds(), s.Height()/2, "loading...", core.ColorGray)
		return
	}

	s.DrawText(0, 0, sess.header(), painter.theme.StatusBar)
	s.DrawText(0, s.Height()-1, sess.status(), painter.theme.StatusBar)

	grid := sess.ctrl.Grid()
	if grid == nil {
		return
	}
	layout, ok := layoutBoard(s.Bounds(), grid.Size())
	if !ok {
		s.DrawTextCentered(s.Bounds(), s.Height()/2, "terminal too small", core.ColorRed)
		return
	}
	painter.draw(s, layout, grid)
}

// Run starts the Bubble Tea program for a local session.
func Run(sess *Session, keys KeyMap) error {
	p := tea.NewProgram(
		NewModel(sess, keys),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
