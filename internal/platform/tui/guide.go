package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pushblock/internal/core"
)

var guideLines = []string{
	"Push the [] blocks onto the () targets.",
	"Every time enough targets are covered, the blocks on them",
	"are destroyed and you score. Scoring raises the level.",
	"",
	"A new block drops every few seconds, faster on higher levels.",
	"When no free cell is left, the game is over.",
	"",
	"You can push two blocks in a row, never three.",
	"Toggle pull with space to drag the block behind you.",
	"",
	"Arrows/WASD  move      Space  pull on/off",
	"P            pause     T      title (while paused)",
}

var guideBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(1, 3)

// GuideModel is the Bubble Tea model for the how-to-play scene shown
// before each run started from the title.
type GuideModel struct {
	width     int
	height    int
	keyMapper *KeyMapper
	start     bool
	back      bool
	quitting  bool
}

// NewGuideModel creates the guide scene.
func NewGuideModel(cfg core.RuntimeConfig) GuideModel {
	return GuideModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the guide model.
func (m GuideModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the guide scene.
func (m GuideModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionSelect:
			m.start = true
		case MenuActionBack:
			m.back = true
		case MenuActionQuit:
			m.quitting = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the guide.
func (m GuideModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(logoStyle.Render("HOW TO PLAY"), m.width))
	b.WriteString("\n\n")

	box := guideBoxStyle.Render(strings.Join(guideLines, "\n"))
	pad := strings.Repeat(" ", max(0, (m.width-lipgloss.Width(box))/2))
	for _, line := range strings.Split(box, "\n") {
		b.WriteString(pad + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Start  |  Esc: Back  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Start reports whether the player asked to begin the run.
func (m GuideModel) Start() bool {
	return m.start
}

// Back reports whether the player asked to return to the title.
func (m GuideModel) Back() bool {
	return m.back
}

// IsQuitting returns true if user requested to quit.
func (m GuideModel) IsQuitting() bool {
	return m.quitting
}
