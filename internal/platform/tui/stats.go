package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/all-my-doggies/internal/storage"
)

// Stats layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the totals sidebar
	sidebarWidth       = 24
	maxSessions        = 100 // Max sessions to load
)

// SessionStore is the part of the store the stats screen reads.
type SessionStore interface {
	RecentSessions(limit int) ([]storage.Session, error)
	Totals() (storage.Totals, error)
}

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Refresh, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for browsing recorded sessions.
type StatsModel struct {
	store       SessionStore
	sessions    []storage.Session
	totals      storage.Totals
	err         error
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewStatsModel creates a stats model and loads the sessions.
func NewStatsModel(store SessionStore, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		store:       store,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Started", Width: 12},
		{Title: "Dog", Width: 12},
		{Title: "Player", Width: 10},
		{Title: "Via", Width: 6},
		{Title: "Played", Width: 8},
		{Title: "Fed", Width: 4},
		{Title: "Food", Width: 6},
		{Title: "Water", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
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

// load reads sessions and totals from the store.
func (m *StatsModel) load() {
	m.sessions, m.totals, m.err = nil, storage.Totals{}, nil
	if m.store != nil {
		sessions, err := m.store.RecentSessions(maxSessions)
		if err != nil {
			m.err = err
		} else {
			m.sessions = sessions
		}
		totals, err := m.store.Totals()
		if err != nil && m.err == nil {
			m.err = err
		}
		m.totals = totals
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded sessions.
func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = sessionRow(s)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func sessionRow(s storage.Session) table.Row {
	return table.Row{
		s.StartedAt.Local().Format("Jan 02 15:04"),
		s.DogName,
		s.Player,
		s.Frontend,
		formatPlayTime(s.Duration()),
		fmt.Sprintf("%d", s.Feedings),
		fmt.Sprintf("%.0f%%", s.FinalFood),
		fmt.Sprintf("%.0f%%", s.FinalWater),
	}
}

// formatPlayTime renders a duration as h:mm:ss or m:ss.
func formatPlayTime(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Width(m.width).
		Align(lipgloss.Center).
		Render("DOGGY DIARY")
	b.WriteString(title)
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(subtleStyle.Render(m.totalsLine()))
		b.WriteString("\n")
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m StatsModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	t := m.totals
	last := "never"
	if !t.LastPlayed.IsZero() {
		last = t.LastPlayed.Local().Format("Jan 02 15:04")
	}

	var sb strings.Builder
	sb.WriteString("Totals\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Sessions  %d\n", t.Sessions)
	fmt.Fprintf(&sb, "Played    %s\n", formatPlayTime(t.PlayTime))
	fmt.Fprintf(&sb, "Ticks     %d\n", t.Ticks)
	fmt.Fprintf(&sb, "Feedings  %d\n", t.Feedings)
	fmt.Fprintf(&sb, "Last      %s", last)
	return sidebarStyle.Render(sb.String())
}

func (m StatsModel) totalsLine() string {
	t := m.totals
	return fmt.Sprintf("%d sessions, %s played, %d feedings", t.Sessions, formatPlayTime(t.PlayTime), t.Feedings)
}

// renderTableContent renders the table or an empty message.
func (m StatsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	if m.err != nil {
		return emptyStyle.Render("Cannot read sessions:\n" + m.err.Error())
	}
	if len(m.sessions) == 0 {
		return emptyStyle.Render("No sessions recorded yet.\nGo play with your dog!")
	}
	return m.table.View()
}

// RunStats runs the stats screen until the user quits.
func RunStats(store SessionStore, width, height int) error {
	p := tea.NewProgram(
		NewStatsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
