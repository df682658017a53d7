// Package audio synthesizes the game's sound effects with beep.
//
// Sounds are generated on the fly, there are no asset files.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pushblock/internal/config"
	"github.com/vovakirdan/pushblock/internal/games/pushblock/engine"
)

const sampleRate = beep.SampleRate(44100)

// Player plays engine effects on the local speaker. It implements
// engine.EffectPlayer. A Player whose speaker failed to open stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	gain        float64
	enabled     bool
	initialized bool
	played      map[engine.Effect]int
	log         *log.Logger
}

// NewPlayer creates a player from the audio config section.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:   &beep.Mixer{},
		gain:    cfg.Volume,
		enabled: cfg.Enabled,
		played:  make(map[engine.Effect]int),
		log:     logger,
	}
}

// Init opens the speaker. Failure is non-fatal: the error is returned and
// the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		p.log.Warn("audio unavailable", "err", err)
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops every playing sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// PlayEffect implements engine.EffectPlayer.
func (p *Player) PlayEffect(e engine.Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[e]++
	if !p.initialized {
		return
	}

	s := Sound(e)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.gain))
	speaker.Unlock()
}

// Played returns how many times e was requested, whether or not it was
// audible.
func (p *Player) Played(e engine.Effect) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[e]
}

// Sound returns a fresh streamer for the effect, or nil for unknown effects.
func Sound(e engine.Effect) beep.Streamer {
	switch e {
	case engine.EffectBlockDestroyed:
		return clearSound(sampleRate)
	case engine.EffectLevelUp:
		return levelUpSound(sampleRate)
	default:
		return nil
	}
}
