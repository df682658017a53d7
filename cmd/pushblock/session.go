package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pushblock/internal/audio"
	"github.com/vovakirdan/pushblock/internal/config"
	"github.com/vovakirdan/pushblock/internal/core"
	"github.com/vovakirdan/pushblock/internal/games/pushblock"
	"github.com/vovakirdan/pushblock/internal/games/pushblock/stages"
	"github.com/vovakirdan/pushblock/internal/platform/tui"
	"github.com/vovakirdan/pushblock/internal/storage"
)

// localSession holds what a local run needs and releases it on close.
type localSession struct {
	store   *storage.Store
	player  *audio.Player
	logger  *log.Logger
	logFile *os.File
}

// newLogger builds the logger for local play. The terminal is taken by the
// game, so logs go to --log or nowhere.
func newLogger() (*log.Logger, *os.File, error) {
	var w io.Writer = io.Discard
	var f *os.File
	if flagLogPath != "" {
		var err error
		f, err = os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pushblock",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// configureGame applies the global flags to every game created afterwards.
func configureGame(logger *log.Logger, store *storage.Store, effects *audio.Player, stage string) {
	pushblock.SetConfigPath(flagConfig)
	pushblock.SetDifficultyPreset(flagDifficulty)
	pushblock.SetStageDir(flagStageDir)
	pushblock.SetStage(stage)
	pushblock.SetDebug(flagDebug)

	opts := []pushblock.Option{pushblock.WithLogger(logger)}
	if store != nil {
		opts = append(opts, pushblock.WithPersister(store))
	}
	if effects != nil {
		opts = append(opts, pushblock.WithEffects(effects))
	}
	pushblock.Configure(opts...)
}

func openLocalSession(stage string) (*localSession, error) {
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger()
	if err != nil {
		return nil, err
	}
	s := &localSession{logger: logger, logFile: logFile}

	// Open score storage
	s.store, err = storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		s.store = nil
	}

	cfg, err := config.LoadPushblock(flagConfig)
	if err != nil {
		s.close()
		return nil, err
	}
	// Fail here rather than silently playing the default stage
	if stage != "" {
		if _, err := stages.Load(stage, flagStageDir, cfg.Targets.Required); err != nil {
			s.close()
			return nil, err
		}
	}
	s.player = audio.NewPlayer(cfg.Audio, logger)
	//nolint:errcheck // Audio is optional, Init logs the failure
	s.player.Init()

	configureGame(logger, s.store, s.player, stage)
	return s, nil
}

func (s *localSession) options() tui.SceneOptions {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return tui.SceneOptions{
		GameID: pushblock.GameID,
		Store:  s.store,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger:    s.logger,
		FixedSeed: flagSeed != 0,
	}
}

func (s *localSession) close() {
	if s.player != nil {
		s.player.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}
