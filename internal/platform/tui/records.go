package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-slide/internal/storage"
)

// Records layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the size sidebar
	sidebarWidth       = 22  // Width of size sidebar
	maxRecords         = 100 // Max rounds to load per size
)

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextSize key.Binding
	PrevSize key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSize, k.PrevSize, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextSize, k.PrevSize, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextSize: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next size"),
		),
		PrevSize: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev size"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model for the best-rounds screen.
type RecordsModel struct {
	sizes       []int // Sizes with at least one solved round
	cursor      int
	store       *storage.Store
	stats       map[int]*storage.SizeStats
	rounds      []storage.RoundRecord
	err         error
	table       table.Model
	help        help.Model
	keys        RecordsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewRecordsModel creates a records model. A non-zero size selects that
// size first if it has records.
func NewRecordsModel(store *storage.Store, size, width, height int) RecordsModel {
	m := RecordsModel{
		store:       store,
		keys:        DefaultRecordsKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		m.stats, m.err = store.GetAllSizeStats()
	}
	m.sizes = sortedSizes(m.stats)
	for i, s := range m.sizes {
		if s == size {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.loadRounds()
	return m
}

// sortedSizes returns the keys of stats in ascending order.
func sortedSizes(stats map[int]*storage.SizeStats) []int {
	sizes := make([]int, 0, len(stats))
	for s := range stats {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	return sizes
}

// createTable creates a new table with columns fitted to the width.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Moves", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "Picture", Width: 10},
		{Title: "Player", Width: 10},
		{Title: "When", Width: 14},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	// Widen the picture column when there is room
	if used := 5 + 7 + 7 + 10 + 10 + 14 + 12; tableWidth > used {
		columns[3].Width += min(tableWidth-used, 10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// selectedSize returns the size under the cursor, or 0.
func (m RecordsModel) selectedSize() int {
	if len(m.sizes) == 0 {
		return 0
	}
	return m.sizes[m.cursor]
}

// loadRounds loads the best rounds for the selected size.
func (m *RecordsModel) loadRounds() {
	m.rounds = nil
	if m.store != nil && len(m.sizes) > 0 {
		rounds, err := m.store.TopRounds(m.selectedSize(), maxRecords)
		if err != nil {
			m.err = err
		}
		m.rounds = rounds
	}

	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(r.Moves)),
			formatClock(r.Duration),
			r.Content,
			r.Player,
			humanize.Time(r.CreatedAt),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextSize):
			if len(m.sizes) > 0 {
				m.cursor = (m.cursor + 1) % len(m.sizes)
				m.loadRounds()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevSize):
			if len(m.sizes) > 0 {
				m.cursor = (m.cursor - 1 + len(m.sizes)) % len(m.sizes)
				m.loadRounds()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.loadRounds()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "BEST ROUNDS"
	if size := m.selectedSize(); size > 0 {
		title = fmt.Sprintf("BEST ROUNDS - %dx%d", size, size)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the size list and its stats beside the table.
func (m RecordsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Sizes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, size := range m.sizes {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(fmt.Sprintf("%s%dx%d  (%d)", cursor, size, size, m.stats[size].Solved)))
		sidebar.WriteString("\n")
	}

	if st := m.stats[m.selectedSize()]; st != nil {
		sidebar.WriteString("\n")
		fmt.Fprintf(&sidebar, "best   %d\n", st.BestMoves)
		fmt.Fprintf(&sidebar, "avg    %.1f\n", st.AvgMoves)
		fmt.Fprintf(&sidebar, "time   %s\n", formatClock(st.BestTime))
		fmt.Fprintf(&sidebar, "total  %s\n", formatClock(st.TotalTime))
		fmt.Fprintf(&sidebar, "last   %s", humanize.Time(st.LastPlayed))
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders size tabs above the table.
func (m RecordsModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.sizes))
	for i, size := range m.sizes {
		name := fmt.Sprintf("%dx%d", size, size)
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.sizes) > 0 {
		size := m.selectedSize()
		tabLine = fmt.Sprintf("< %dx%d >", size, size)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RecordsModel) renderTableContent() string {
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds solved yet.\nSolve a puzzle to set a record!")
	}

	return m.table.View()
}

// centerText centers every line of text within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if pad := (width - lipgloss.Width(line)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunRecords runs the records screen until the user quits.
func RunRecords(store *storage.Store, size, width, height int) error {
	p := tea.NewProgram(
		NewRecordsModel(store, size, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
