package pushblock

import "github.com/vovakirdan/pushblock/internal/games/pushblock/engine"

// Flash durations, in seconds
const (
	spawnFlashTime  = 0.4
	removeFlashTime = 0.5
	moveFlashTime   = 0.12
	bannerTime      = 1.5
)

// FlashKind tells the renderer how to highlight a cell.
type FlashKind int

const (
	FlashNone FlashKind = iota
	FlashSpawn
	FlashRemove
	FlashMove
)

type flash struct {
	kind FlashKind
	ttl  float64
}

// Visuals tracks short-lived cell highlights. It is the terminal's
// engine.PresentationSink: the grid itself is drawn straight from the
// occupancy layer, Visuals only adds the transient effects on top.
type Visuals struct {
	flashes map[engine.Coord]flash
}

// NewVisuals creates an empty tracker.
func NewVisuals() *Visuals {
	return &Visuals{flashes: make(map[engine.Coord]flash)}
}

// Reset drops every pending highlight.
func (v *Visuals) Reset() {
	clear(v.flashes)
}

// SpawnVisual highlights a newly placed block.
func (v *Visuals) SpawnVisual(_ engine.CellKind, row, col int) {
	v.flashes[engine.At(row, col)] = flash{kind: FlashSpawn, ttl: spawnFlashTime}
}

// RemoveVisual highlights a cleared cell.
func (v *Visuals) RemoveVisual(row, col int) {
	v.flashes[engine.At(row, col)] = flash{kind: FlashRemove, ttl: removeFlashTime}
}

// MoveVisual highlights the destination of a move. The source loses any
// highlight it had.
func (v *Visuals) MoveVisual(fromRow, fromCol, toRow, toCol int) {
	delete(v.flashes, engine.At(fromRow, fromCol))
	v.flashes[engine.At(toRow, toCol)] = flash{kind: FlashMove, ttl: moveFlashTime}
}

// Advance ages every highlight by dt seconds.
func (v *Visuals) Advance(dt float64) {
	for c, f := range v.flashes {
		f.ttl -= dt
		if f.ttl <= 0 {
			delete(v.flashes, c)
			continue
		}
		v.flashes[c] = f
	}
}

// Flash returns the highlight on a cell.
func (v *Visuals) Flash(row, col int) FlashKind {
	return v.flashes[engine.At(row, col)].kind
}

// Len returns the number of active highlights.
func (v *Visuals) Len() int {
	return len(v.flashes)
}

// multiSink forwards presentation calls to several sinks.
type multiSink []engine.PresentationSink

func (m multiSink) SpawnVisual(kind engine.CellKind, row, col int) {
	for _, s := range m {
		if s != nil {
			s.SpawnVisual(kind, row, col)
		}
	}
}

func (m multiSink) RemoveVisual(row, col int) {
	for _, s := range m {
		if s != nil {
			s.RemoveVisual(row, col)
		}
	}
}

func (m multiSink) MoveVisual(fromRow, fromCol, toRow, toCol int) {
	for _, s := range m {
		if s != nil {
			s.MoveVisual(fromRow, fromCol, toRow, toCol)
		}
	}
}

// Banner shows a short message for the last effect played.
type Banner struct {
	text string
	ttl  float64
}

// PlayEffect implements engine.EffectPlayer.
func (b *Banner) PlayEffect(e engine.Effect) {
	switch e {
	case engine.EffectBlockDestroyed:
		b.text = "CLEAR!"
	case engine.EffectLevelUp:
		b.text = "LEVEL UP!"
	default:
		return
	}
	b.ttl = bannerTime
}

// Advance ages the banner by dt seconds.
func (b *Banner) Advance(dt float64) {
	if b.ttl <= 0 {
		return
	}
	b.ttl -= dt
	if b.ttl <= 0 {
		b.text = ""
	}
}

// Text returns the current message, or "".
func (b *Banner) Text() string {
	return b.text
}
