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

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 50 // Minimum table width
	maxHistory    = 100
)

// ScoreboardTab selects which table is shown.
type ScoreboardTab int

const (
	TabHighScores ScoreboardTab = iota
	TabHistory
)

var tabTitles = []string{"High Scores", "Run History"}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next table"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev table"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the ranked high-score table and the run history.
type ScoreboardModel struct {
	scores   []core.HighScore
	runs     []storage.RunRecord
	stats    *storage.HistoryStats
	tab      ScoreboardTab
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard. Either source may be nil.
func NewScoreboardModel(scores []core.HighScore, store *storage.Store, tab ScoreboardTab, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		scores: scores,
		tab:    tab,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	if store != nil {
		// Errors leave the history empty; the table says so.
		if runs, err := store.RecentRuns(maxHistory); err == nil {
			m.runs = runs
		}
		if stats, err := store.Stats(); err == nil {
			m.stats = stats
		}
	}

	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.tab == TabHistory {
		return []table.Column{
			{Title: "When", Width: 13},
			{Title: "Player", Width: 12},
			{Title: "Score", Width: 8},
			{Title: "Kills", Width: 6},
			{Title: "World", Width: 6},
			{Title: "Time", Width: 8},
		}
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 12},
		{Title: "Score", Width: 10},
	}
	if w := m.width - 8; w > tableMinWidth {
		columns[1].Width = core.Min(w-18, 20)
	}
	return columns
}

// createTable creates a new table for the current tab.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-9, 3)), // Leave room for header, help, and margins
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

// Rows returns the rows of the current tab.
func (m ScoreboardModel) Rows() []table.Row {
	if m.tab == TabHistory {
		rows := make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				r.Player,
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.TotalKills()),
				fmt.Sprintf("%d", r.WorldHealth),
				r.Duration.Round(time.Second).String(),
			}
		}
		return rows
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Name,
			fmt.Sprintf("%d", s.Score),
		}
	}
	return rows
}

func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(m.Rows())
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchTab(delta int) {
	n := len(tabTitles)
	m.tab = ScoreboardTab((int(m.tab) + delta + n) % n)
	m.table = m.createTable()
	m.updateTableRows()
}

// Tab returns the visible table.
func (m ScoreboardModel) Tab() ScoreboardTab {
	return m.tab
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("DEFENDER - "+strings.ToUpper(tabTitles[m.tab]), m.width)))
	b.WriteString("\n\n")

	// Tabs
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := make([]string, len(tabTitles))
	for i, t := range tabTitles {
		if ScoreboardTab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(t)
		} else {
			tabs[i] = tabStyle.Render(t)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.tab == TabHistory && m.stats != nil && m.stats.Runs > 0 {
		statStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString(statStyle.Render(fmt.Sprintf(
			"%d runs  best %d  avg %.0f  kills %d  played %s",
			m.stats.Runs, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalKills,
			m.stats.PlayTime.Round(time.Second),
		)))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.tab == TabHistory {
			return emptyStyle.Render("No runs recorded yet.")
		}
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(scores []core.HighScore, store *storage.Store, tab ScoreboardTab, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(scores, store, tab, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
