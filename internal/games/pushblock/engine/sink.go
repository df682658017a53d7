package engine

// PresentationSink receives cell-level changes so a front end can keep its
// visual objects in step with the grid. Calls are synchronous and
// fire-and-forget.
type PresentationSink interface {
	SpawnVisual(kind CellKind, row, col int)
	RemoveVisual(row, col int)
	MoveVisual(fromRow, fromCol, toRow, toCol int)
}

// Effect identifies a one-shot feedback effect.
type Effect int

const (
	EffectBlockDestroyed Effect = iota
	EffectLevelUp
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectBlockDestroyed:
		return "BlockDestroyed"
	case EffectLevelUp:
		return "LevelUp"
	default:
		return "Unknown"
	}
}

// EffectPlayer plays one-shot effects. No acknowledgement is expected.
type EffectPlayer interface {
	PlayEffect(e Effect)
}

// NopSink discards every presentation call.
type NopSink struct{}

func (NopSink) SpawnVisual(CellKind, int, int) {}
func (NopSink) RemoveVisual(int, int) {}
func (NopSink) MoveVisual(int, int, int, int) {}

// NopEffects discards every effect.
type NopEffects struct{}

func (NopEffects) PlayEffect(Effect) {}

// Effects fans a single effect out to several players.
type Effects []EffectPlayer

// PlayEffect forwards e to every non-nil player.
func (fx Effects) PlayEffect(e Effect) {
	for _, p := range fx {
		if p != nil {
			p.PlayEffect(e)
		}
	}
}
