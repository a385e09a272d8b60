package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/dapper-dasher/internal/storage"
)

// maxRuns is how many runs the history loads.
const maxRuns = 100

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Top  key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "latest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// History is what the history screen shows for one game.
type History struct {
	Runs  []storage.Run
	Stats storage.Stats
	Best  *storage.Run
}

// LoadHistory reads a game's runs, totals and fastest win.
func LoadHistory(store *storage.Store, gameID string) (History, error) {
	runs, err := store.RecentRuns(gameID, maxRuns)
	if err != nil {
		return History{}, err
	}
	stats, err := store.Stats(gameID)
	if err != nil {
		return History{}, err
	}
	best, err := store.BestRun(gameID)
	if err != nil {
		return History{}, err
	}
	return History{Runs: runs, Stats: stats, Best: best}, nil
}

// historyHeaders are the column titles shared by both views.
var historyHeaders = []string{"#", "Result", "Time", "Jumps", "Distance", "Preset", "Date"}

// rows formats the runs, newest first.
func (h History) rows() [][]string {
	rows := make([][]string, len(h.Runs))
	for i, r := range h.Runs {
		preset := r.Preset
		if preset == "" {
			preset = "-"
		}
		rows[i] = []string{
			fmt.Sprintf("%d", r.ID),
			strings.ToUpper(r.Outcome),
			fmt.Sprintf("%.2fs", r.Duration),
			fmt.Sprintf("%d", r.Jumps),
			fmt.Sprintf("%.0f", r.Distance),
			preset,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Summary is the one-line totals shown above the table.
func (h History) Summary() string {
	s := fmt.Sprintf("%d runs, %d won, %d lost, %d jumps", h.Stats.Runs, h.Stats.Wins, h.Stats.Losses, h.Stats.TotalJumps)
	if h.Best != nil {
		s += fmt.Sprintf(", fastest win %.2fs", h.Best.Duration)
	}
	return s
}

// PlainHistory renders the history as a static table for non-interactive output.
func PlainHistory(h History) string {
	if len(h.Runs) == 0 {
		return "No runs recorded yet.\n"
	}
	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		Headers(historyHeaders...).
		Rows(h.rows()...)
	return h.Summary() + "\n" + t.Render() + "\n"
}

// HistoryModel is the Bubble Tea model for the run history screen.
type HistoryModel struct {
	title    string
	history  History
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(title string, h History, width, height int) HistoryModel {
	m := HistoryModel{
		title:   title,
		history: h,
		keys:    DefaultHistoryKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: historyHeaders[0], Width: 5},
		{Title: historyHeaders[1], Width: 6},
		{Title: historyHeaders[2], Width: 8},
		{Title: historyHeaders[3], Width: 6},
		{Title: historyHeaders[4], Width: 9},
		{Title: historyHeaders[5], Width: 7},
		{Title: historyHeaders[6], Width: 13},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// updateTableRows fills the table from the loaded history.
func (m *HistoryModel) updateTableRows() {
	src := m.history.rows()
	rows := make([]table.Row, len(src))
	for i, r := range src {
		rows[i] = table.Row(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
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

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("RUN HISTORY - %s", m.title)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(m.history.Summary()))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.history.Runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No runs recorded yet.\nPlay a run to start the ledger!")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunHistory runs the interactive history screen.
func RunHistory(title string, h History, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(title, h, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
