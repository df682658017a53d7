// Package pushblock implements the Push Block session: a single-screen
// block-pushing puzzle where the player steers moveable blocks onto target
// cells while new blocks keep spawning until the board fills up.
//
// The engine subpackage holds the grid rules. This package owns the session
// state machine, timers, input handling and the terminal rendering.
package pushblock

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pushblock/internal/config"
	"github.com/vovakirdan/pushblock/internal/core"
	"github.com/vovakirdan/pushblock/internal/games/pushblock/engine"
	"github.com/vovakirdan/pushblock/internal/games/pushblock/stages"
	"github.com/vovakirdan/pushblock/internal/registry"
	"github.com/vovakirdan/pushblock/internal/storage"
)

// GameID is the registry and score-table identifier.
const GameID = "pushblock"

// IntPersister stores small integers by key. *storage.Store implements it.
type IntPersister interface {
	PersistInt(key string, value int) error
}

// Game implements registry.Game for Push Block.
type Game struct {
	opts options

	cfg     config.PushblockConfig
	layout  stages.Layout
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64
	log     *log.Logger

	phase    Phase
	grid     *engine.Grid
	sampler  *engine.Sampler
	resolver *engine.Resolver
	clearer  *engine.Clearer
	progress *engine.Progression
	sink     engine.PresentationSink
	effects  engine.EffectPlayer
	visuals  *Visuals
	banner   *Banner

	// Timers, in seconds
	spawnTimer float64
	endTimer   float64
	inputTimer float64

	inputLocked bool   // A move was made and the direction is still held
	persisted   bool   // Score was written at the end of the run
	endReason   string // Why the run ended, for the result screen

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

type options struct {
	layout    *stages.Layout
	cfg       *config.PushblockConfig
	sink      engine.PresentationSink
	effects   engine.EffectPlayer
	logger    *log.Logger
	persister IntPersister
}

// Option configures a Game at construction time.
type Option func(*options)

// WithLayout plays the given stage instead of resolving one at Reset.
func WithLayout(l stages.Layout) Option {
	return func(o *options) { o.layout = &l }
}

// WithConfig uses cfg instead of loading configuration at Reset.
func WithConfig(cfg config.PushblockConfig) Option {
	return func(o *options) { o.cfg = &cfg }
}

// WithSink forwards cell-level changes to s in addition to the built-in
// flash tracker.
func WithSink(s engine.PresentationSink) Option {
	return func(o *options) { o.sink = s }
}

// WithEffects plays block-destroyed and level-up effects on p.
func WithEffects(p engine.EffectPlayer) Option {
	return func(o *options) { o.effects = p }
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPersister stores the final score when the run ends.
func WithPersister(p IntPersister) Option {
	return func(o *options) { o.persister = p }
}

// Package-level settings applied by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	stageRef         string
	stageDir         string
	debugMode        bool
	defaultOptions   []Option
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetStage selects the stage by builtin ID, custom ID or file path.
func SetStage(ref string) {
	stageRef = ref
}

// SetStageDir sets the directory searched for custom stages.
func SetStageDir(dir string) {
	stageDir = dir
}

// SetDebug forces the debug policy on: engine invariant violations panic
// instead of ending the run.
func SetDebug(on bool) {
	debugMode = on
}

// Configure sets options applied to every Game created afterwards,
// including the ones the registry creates.
func Configure(opts ...Option) {
	defaultOptions = opts
}

// New creates a Push Block session. Options passed here override the ones
// set with Configure.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range defaultOptions {
		opt(&g.opts)
	}
	for _, opt := range opts {
		opt(&g.opts)
	}
	return g
}

func init() {
	registry.Register(GameID, "Push blocks onto targets before the board fills up", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Push Block"
}

// Reset loads config and stage, rebuilds the engine and starts a new run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.log = g.opts.logger
	if g.log == nil {
		g.log = log.New(io.Discard)
	}

	g.cfg = g.loadConfig()
	if debugMode {
		g.cfg.Debug = true
	}
	g.layout = g.loadLayout()

	grid, err := g.layout.Grid()
	if err != nil {
		g.log.Error("stage unusable, using default", "stage", g.layout.ID, "err", err)
		g.layout = defaultLayout()
		if grid, err = g.layout.Grid(); err != nil {
			panic(err)
		}
	}
	g.grid = grid

	if g.visuals == nil {
		g.visuals = NewVisuals()
	}
	g.visuals.Reset()
	g.banner = &Banner{}

	g.sink = multiSink{g.visuals, g.opts.sink}
	g.effects = engine.Effects{g.opts.effects, g.banner}

	g.sampler = engine.NewSampler(g.rng)
	g.resolver = engine.NewResolver(g.grid, g.cfg.Targets.Required, g.sink)
	g.clearer = engine.NewClearer(g.sink, g.effects)
	g.progress = engine.NewProgression(RulesFromConfig(g.cfg), g.effects)

	g.phase = PhaseStart
	g.spawnTimer = 0
	g.endTimer = 0
	g.inputTimer = 0
	g.inputLocked = false
	g.persisted = false
	g.endReason = ""

	g.Resize(rt.ScreenW, rt.ScreenH)

	g.log.Debug("session reset", "stage", g.layout.ID, "seed", rt.Seed, "required", g.cfg.Targets.Required)
}

// loadConfig returns the injected config, or loads it from disk and applies
// the selected difficulty preset.
func (g *Game) loadConfig() config.PushblockConfig {
	if g.opts.cfg != nil {
		return *g.opts.cfg
	}
	cfg, err := config.LoadPushblock(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultPushblockConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPushblockPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// loadLayout returns the injected layout, or resolves and validates the
// selected stage, falling back to the default builtin stage.
func (g *Game) loadLayout() stages.Layout {
	if g.opts.layout != nil {
		return *g.opts.layout
	}
	if stageRef != "" {
		l, err := stages.Load(stageRef, stageDir, g.cfg.Targets.Required)
		if err == nil {
			return l
		}
		g.log.Warn("stage unusable, using default", "stage", stageRef, "err", err)
	}
	return defaultLayout()
}

// defaultLayout loads the default builtin stage. The builtin set is
// embedded and covered by tests, so a failure is a broken build.
func defaultLayout() stages.Layout {
	l, err := stages.Builtin().LoadByID(stages.DefaultID)
	if err != nil {
		panic(err)
	}
	return l
}

// RulesFromConfig converts the scoring and spawn sections into engine rules.
func RulesFromConfig(cfg config.PushblockConfig) engine.Rules {
	return engine.Rules{
		BaseScore:      cfg.Scoring.BaseScore,
		LevelThreshold: cfg.Scoring.LevelThreshold,
		MaxLevel:       cfg.Scoring.MaxLevel,
		SpawnIntervals: append([]float64(nil), cfg.Spawn.Intervals...),
		ReseedLevels:   append([]int(nil), cfg.Spawn.ReseedLevels...),
	}
}

// Resize records the terminal size. The session holds while the board does
// not fit.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.grid == nil {
		return
	}
	minW, minH := g.minScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.grid == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	dt := g.runtime.DeltaSeconds()
	if g.phase != PhaseStop {
		g.visuals.Advance(dt)
		g.banner.Advance(dt)
	}

	exit := g.step(in, dt)

	if err := g.grid.CheckInvariants(); err != nil {
		g.fail(err)
	}

	return core.StepResult{State: g.State(), Exit: exit}
}

// fail handles a broken engine invariant: panic in debug builds, otherwise
// end the run.
func (g *Game) fail(err error) {
	g.log.Error("engine invariant broken", "err", err, "tick", g.tick)
	if g.cfg.Debug {
		panic(err)
	}
	if g.phase != PhaseEnd {
		g.endGame("engine error")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.progress == nil {
		return core.GameState{Level: 1}
	}
	return core.GameState{
		Score:    g.progress.Score(),
		Level:    g.progress.Level(),
		GameOver: g.phase == PhaseEnd,
		Paused:   g.phase == PhaseStop || g.tooSmall,
	}
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// PullMode reports whether pulling is active.
func (g *Game) PullMode() bool {
	return g.resolver != nil && g.resolver.PullMode()
}

// Grid returns the live grid. Callers must not modify it.
func (g *Game) Grid() *engine.Grid {
	return g.grid
}

// Layout returns the stage being played.
func (g *Game) Layout() stages.Layout {
	return g.layout
}

// StageID returns the ID of the stage being played.
func (g *Game) StageID() string {
	return g.layout.ID
}

// EndReason describes why the run ended, or "" while it is running.
func (g *Game) EndReason() string {
	return g.endReason
}

// persistScore writes the final score once.
func (g *Game) persistScore() {
	if g.persisted {
		return
	}
	g.persisted = true
	if g.opts.persister == nil {
		return
	}
	if err := g.opts.persister.PersistInt(storage.KeyScore, g.progress.Score()); err != nil {
		g.log.Error("cannot persist score", "err", err)
	}
}

// isNoCandidates reports whether err means the board is full.
func isNoCandidates(err error) bool {
	return errors.Is(err, engine.ErrNoCandidatesLeft)
}
