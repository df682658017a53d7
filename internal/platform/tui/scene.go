package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pushblock/internal/core"
	"github.com/vovakirdan/pushblock/internal/registry"
	"github.com/vovakirdan/pushblock/internal/storage"
)

// Scene identifies one screen of the session flow.
type Scene int

const (
	SceneTitle Scene = iota
	ScenePlayGuide
	SceneMain
	SceneResult
)

var sceneNames = [...]string{"title", "guide", "main", "result"}

func (s Scene) String() string {
	if int(s) < len(sceneNames) {
		return sceneNames[s]
	}
	return "unknown"
}

// stageReporter is implemented by games that play a named stage.
type stageReporter interface {
	StageID() string
}

// SceneOptions configures a session.
type SceneOptions struct {
	GameID string
	Store  *storage.Store
	Config core.RuntimeConfig
	Player string
	Logger *log.Logger
	// FixedSeed keeps Config.Seed for every run instead of a fresh time seed.
	FixedSeed bool
}

// SceneModel routes a session through title, guide, main and result
// scenes. Only one scene model is live at a time.
type SceneModel struct {
	opts     SceneOptions
	config   core.RuntimeConfig
	scene    Scene
	title    TitleModel
	guide    GuideModel
	game     *GameModel
	result   ResultModel
	gen      int
	quitting bool
	log      *log.Logger
}

// NewSceneModel creates a session starting on the title scene.
func NewSceneModel(opts SceneOptions) SceneModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := SceneModel{
		opts:   opts,
		config: opts.Config,
		log:    logger,
	}
	m.title = NewTitleModel(opts.Store, m.config)
	return m
}

// NewMainSceneModel creates a session that skips the title and starts a
// run right away.
func NewMainSceneModel(opts SceneOptions) (SceneModel, error) {
	m := NewSceneModel(opts)
	if err := m.newRun(); err != nil {
		return m, err
	}
	return m, nil
}

// Init initializes the current scene.
func (m SceneModel) Init() tea.Cmd {
	if m.scene == SceneMain && m.game != nil {
		return m.game.Init()
	}
	return nil
}

// startRun creates a fresh game for the main scene and starts it.
func (m *SceneModel) startRun() tea.Cmd {
	if err := m.newRun(); err != nil {
		m.log.Error("cannot create game", "game", m.opts.GameID, "err", err)
		m.quitting = true
		return tea.Quit
	}
	return m.game.Init()
}

// newRun creates the game model for a run without starting it.
func (m *SceneModel) newRun() error {
	game, err := registry.Create(m.opts.GameID)
	if err != nil {
		return err
	}

	cfg := m.config
	if !m.opts.FixedSeed || cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m.gen++
	gm := NewGameModel(game, cfg, m.gen, m.log)
	m.game = &gm
	m.scene = SceneMain
	m.log.Debug("run created", "game", game.ID(), "seed", cfg.Seed, "gen", m.gen)
	return nil
}

// load switches to the given scene.
func (m *SceneModel) load(scene Scene) tea.Cmd {
	m.log.Debug("scene", "from", m.scene, "to", scene)
	switch scene {
	case SceneTitle:
		m.game = nil
		m.title = NewTitleModel(m.opts.Store, m.config)
	case ScenePlayGuide:
		m.guide = NewGuideModel(m.config)
	case SceneMain:
		return m.startRun()
	case SceneResult:
		m.result = NewResultModel(m.opts.Store, m.runResult(), m.config)
		if err := m.result.err; err != nil {
			m.log.Warn("could not record score", "err", err)
		}
		m.game = nil
	}
	m.scene = scene
	return nil
}

// runResult collects the outcome of the finished run.
func (m *SceneModel) runResult() RunResult {
	run := RunResult{GameID: m.opts.GameID, Player: m.opts.Player}
	if m.game == nil {
		return run
	}
	state := m.game.State()
	run.Score = state.Score
	run.Level = state.Level
	if s, ok := m.game.Game().(stageReporter); ok {
		run.Stage = s.StageID()
	}
	return run
}

// Update handles messages for the session.
func (m SceneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.scene {
	case SceneTitle:
		return m.updateTitle(msg)
	case ScenePlayGuide:
		return m.updateGuide(msg)
	case SceneMain:
		return m.updateMain(msg)
	case SceneResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m SceneModel) updateTitle(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.title.Update(msg)
	if tm, ok := next.(TitleModel); ok {
		m.title = tm
	}

	switch m.title.Choice() {
	case TitleQuit:
		m.quitting = true
		return m, tea.Quit
	case TitlePlay:
		return m, m.load(ScenePlayGuide)
	}
	return m, cmd
}

func (m SceneModel) updateGuide(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.guide.Update(msg)
	if gm, ok := next.(GuideModel); ok {
		m.guide = gm
	}

	switch {
	case m.guide.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.guide.Start():
		return m, m.load(SceneMain)
	case m.guide.Back():
		return m, m.load(SceneTitle)
	}
	return m, cmd
}

func (m SceneModel) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.game == nil {
		return m, m.load(SceneMain)
	}

	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.game.Exit() {
	case core.ExitResult:
		return m, m.load(SceneResult)
	case core.ExitTitle:
		return m, m.load(SceneTitle)
	}
	return m, cmd
}

func (m SceneModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.result.Update(msg)
	if rm, ok := next.(ResultModel); ok {
		m.result = rm
	}

	switch {
	case m.result.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.result.Retry():
		return m, m.load(SceneMain)
	case m.result.ToTitle():
		return m, m.load(SceneTitle)
	}
	return m, cmd
}

// View renders the current scene.
func (m SceneModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.scene {
	case SceneTitle:
		return m.title.View()
	case ScenePlayGuide:
		return m.guide.View()
	case SceneMain:
		if m.game != nil {
			return m.game.View()
		}
	case SceneResult:
		return m.result.View()
	}
	return ""
}

// Scene returns the current scene.
func (m SceneModel) Scene() Scene {
	return m.scene
}

// Result returns the result scene model, valid on SceneResult.
func (m SceneModel) Result() ResultModel {
	return m.result
}

// IsQuitting returns true if the session is over.
func (m SceneModel) IsQuitting() bool {
	return m.quitting
}
