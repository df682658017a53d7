package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pushblock/internal/core"
	"github.com/vovakirdan/pushblock/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores      = 10 // Rows shown on the result scene
	minTableHeight = 3
)

// ResultKeyMap defines the key bindings for the result scene.
type ResultKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Retry key.Binding
	Title key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Retry, k.Title, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Retry, k.Title, k.Quit},
	}
}

// DefaultResultKeyMap returns default key bindings.
func DefaultResultKeyMap() ResultKeyMap {
	return ResultKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "retry"),
		),
		Title: key.NewBinding(
			key.WithKeys("t", "esc", "b"),
			key.WithHelp("t/esc", "title"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunResult describes a finished run.
type RunResult struct {
	GameID string
	Stage  string
	Player string
	Score  int
	Level  int
}

// RunRecord is what storing a run produced.
type RunRecord struct {
	HighScore int
	NewRecord bool
	Top       []storage.ScoreEntry
}

// RecordRun raises the stored high score, appends the run to the score
// history and loads the top scores.
func RecordRun(store *storage.Store, run RunResult) (RunRecord, error) {
	var rec RunRecord
	if store == nil {
		rec.HighScore = run.Score
		return rec, nil
	}

	best, improved, err := store.UpdateHighScore(run.Score)
	if err != nil {
		return rec, err
	}
	rec.HighScore = best
	rec.NewRecord = improved

	if _, err := store.SaveScore(storage.ScoreEntry{
		GameID: run.GameID,
		Stage:  run.Stage,
		Score:  run.Score,
		Level:  run.Level,
		Player: run.Player,
	}); err != nil {
		return rec, err
	}

	rec.Top, err = store.TopScores(run.GameID, maxScores)
	return rec, err
}

// ResultModel is the Bubble Tea model for the result scene.
type ResultModel struct {
	run      RunResult
	record   RunRecord
	err      error
	table    table.Model
	help     help.Model
	keys     ResultKeyMap
	width    int
	height   int
	retry    bool
	toTitle  bool
	quitting bool
}

// NewResultModel records the run and builds the result scene.
func NewResultModel(store *storage.Store, run RunResult, cfg core.RuntimeConfig) ResultModel {
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := ResultModel{
		run:    run,
		keys:   DefaultResultKeyMap(),
		help:   h,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.record, m.err = RecordRun(store, run)
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ResultModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Lv", Width: 3},
		{Title: "Stage", Width: 10},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	height := m.height - 14 // Header, summary, help and margins
	if height < minTableHeight {
		height = minTableHeight
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

// updateTableRows fills the table from the top scores.
func (m *ResultModel) updateTableRows() {
	rows := make([]table.Row, len(m.record.Top))
	for i, s := range m.record.Top {
		player := s.Player
		if player == "" {
			player = "-"
		}
		date := "-"
		if !s.CreatedAt.IsZero() {
			date = s.CreatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.Stage,
			player,
			date,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the result model.
func (m ResultModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the result scene.
func (m ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Retry):
			m.retry = true
			return m, nil
		case key.Matches(msg, m.keys.Title):
			m.toTitle = true
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

// View renders the result scene.
func (m ResultModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(logoStyle.Render("R E S U L T"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(fmt.Sprintf("Score: %d   Level: %d", m.run.Score, m.run.Level), m.width))
	b.WriteString("\n")
	best := fmt.Sprintf("High Score: %d", m.record.HighScore)
	if m.record.NewRecord {
		best += "  " + cursorStyle.Render("NEW RECORD!")
	}
	b.WriteString(centerText(best, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case m.err != nil:
		content = dimStyle.Render("Scores unavailable: " + m.err.Error())
	case len(m.record.Top) == 0:
		content = dimStyle.Italic(true).Render("No score history.")
	default:
		content = m.table.View()
	}
	box := tableStyle.Render(content)
	pad := strings.Repeat(" ", max(0, (m.width-lipgloss.Width(box))/2))
	for _, line := range strings.Split(box, "\n") {
		b.WriteString(pad + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// Record returns what storing the run produced.
func (m ResultModel) Record() RunRecord {
	return m.record
}

// Retry reports whether the player asked for another run.
func (m ResultModel) Retry() bool {
	return m.retry
}

// ToTitle reports whether the player asked to return to the title.
func (m ResultModel) ToTitle() bool {
	return m.toTitle
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultModel) IsQuitting() bool {
	return m.quitting
}
