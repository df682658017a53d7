package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pushblock/internal/core"
	"github.com/vovakirdan/pushblock/internal/storage"
)

// TitleChoice is what the player picked on the title screen.
type TitleChoice int

const (
	TitleNone TitleChoice = iota
	TitlePlay
	TitleQuit
)

// MenuItem is one selectable line of the title menu.
type MenuItem struct {
	Label  string
	Choice TitleChoice
}

var titleItems = []MenuItem{
	{Label: "Start", Choice: TitlePlay},
	{Label: "Quit", Choice: TitleQuit},
}

var (
	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))
)

// TitleModel is the Bubble Tea model for the title scene.
type TitleModel struct {
	cursor    int
	width     int
	height    int
	highScore int
	keyMapper *KeyMapper
	choice    TitleChoice
}

// NewTitleModel creates the title scene, reading the stored high score.
func NewTitleModel(store *storage.Store, cfg core.RuntimeConfig) TitleModel {
	m := TitleModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		//nolint:errcheck // A missing high score shows as 0
		m.highScore, _ = store.ReadInt(storage.KeyHighScore, 0)
	}
	return m
}

// Init initializes the title model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title scene.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m TitleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = TitleQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(titleItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = titleItems[m.cursor].Choice
	}
	return m, nil
}

// View renders the title scene.
func (m TitleModel) View() string {
	var b strings.Builder

	top := m.height/2 - 6
	if top < 1 {
		top = 1
	}
	b.WriteString(strings.Repeat("\n", top))

	b.WriteString(centerText(logoStyle.Render("P U S H   B L O C K"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("High Score: %d", m.highScore), m.width))
	b.WriteString("\n\n")

	for i, item := range titleItems {
		line := "  " + item.Label
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Choice returns what the player picked, or TitleNone.
func (m TitleModel) Choice() TitleChoice {
	return m.choice
}

// centerText centers text within the given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
