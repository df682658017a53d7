package engine

// Rules holds the scoring and difficulty parameters.
type Rules struct {
	BaseScore      int       // Points per clear, multiplied by the level
	LevelThreshold int       // Level-up when score >= LevelThreshold * level^2
	MaxLevel       int       // Highest reachable level
	SpawnIntervals []float64 // Seconds between spawns, indexed by level-1
	ReseedLevels   []int     // Levels whose level-up adds a fresh set of obstacles
}

// DefaultRules returns the classic scoring table.
func DefaultRules() Rules {
	return Rules{
		BaseScore:      30,
		LevelThreshold: 150,
		MaxLevel:       5,
		SpawnIntervals: []float64{5, 4, 3, 2, 1},
		ReseedLevels:   []int{3, 5},
	}
}

// ProgressionState is a read-only view of score and level.
type ProgressionState struct {
	Score         int
	Level         int
	SpawnInterval float64
}

// Progression owns score, level and spawn interval.
type Progression struct {
	rules   Rules
	effects EffectPlayer
	score   int
	level   int
}

// NewProgression starts a run at score 0, level 1.
func NewProgression(rules Rules, effects EffectPlayer) *Progression {
	if effects == nil {
		effects = NopEffects{}
	}
	if rules.MaxLevel < 1 {
		rules.MaxLevel = 1
	}
	return &Progression{
		rules:   rules,
		effects: effects,
		level:   1,
	}
}

// Score returns the current score.
func (p *Progression) Score() int {
	return p.score
}

// Level returns the current level (1-based).
func (p *Progression) Level() int {
	return p.level
}

// Rules returns the rules in effect.
func (p *Progression) Rules() Rules {
	return p.rules
}

// State returns a snapshot of the progression.
func (p *Progression) State() ProgressionState {
	return ProgressionState{
		Score:         p.score,
		Level:         p.level,
		SpawnInterval: p.SpawnInterval(),
	}
}

// AddScore awards one clear: BaseScore times the current level.
func (p *Progression) AddScore() {
	p.score += p.rules.BaseScore * p.level
}

// TryLevelUp raises the level by one when the score has reached
// LevelThreshold * level^2. Returns whether the level changed.
func (p *Progression) TryLevelUp() bool {
	if p.level >= p.rules.MaxLevel {
		return false
	}
	if p.score < p.rules.LevelThreshold*p.level*p.level {
		return false
	}
	p.level++
	p.effects.PlayEffect(EffectLevelUp)
	return true
}

// NeedsReseed reports whether reaching the current level adds obstacles.
func (p *Progression) NeedsReseed() bool {
	for _, lvl := range p.rules.ReseedLevels {
		if lvl == p.level {
			return true
		}
	}
	return false
}

// SpawnInterval returns the seconds between block spawns at the current
// level. Levels past the end of the table reuse its last entry.
func (p *Progression) SpawnInterval() float64 {
	table := p.rules.SpawnIntervals
	if len(table) == 0 {
		return 0
	}
	i := p.level - 1
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}
