package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pushblock/internal/core"
	"github.com/vovakirdan/pushblock/internal/registry"
)

// resizer is implemented by games that can adapt to a new terminal size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// pullReporter is implemented by games with a pull toggle.
type pullReporter interface {
	PullMode() bool
}

// GameModel is the Bubble Tea model for the main scene: it drives one run
// of a game at a fixed tick rate.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	gen        int
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	exit       core.Exit
	quitting   bool
	log        *log.Logger
}

// NewGameModel creates a model for one run. gen tags the run's ticks.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, gen int, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		gen:        gen,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		log:        logger,
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	pullOn := false
	if p, ok := m.game.(pullReporter); ok {
		pullOn = p.PullMode()
	}

	action := m.keyMapper.MapKey(msg, pullOn)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without Resize restart at the new size
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.exit != core.ExitNone {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Exit != core.ExitNone {
		m.exit = result.Exit
		m.log.Debug("run finished", "exit", result.Exit, "score", result.State.Score, "level", result.State.Level)
		return m, nil
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveScreenshot saves the current screen, and the game snapshot when the
// game has one, to ~/.pushblock/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".pushblock", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	content := m.screen.String()
	if s, ok := m.game.(registry.Snapshotter); ok {
		content += "\n\n" + s.Snapshot() + "\n"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Exit returns how the run ended, or ExitNone while it is running.
func (m GameModel) Exit() core.Exit {
	return m.exit
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Game returns the game being run.
func (m GameModel) Game() registry.Game {
	return m.game
}
