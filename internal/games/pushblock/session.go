package pushblock

import (
	"github.com/vovakirdan/pushblock/internal/core"
	"github.com/vovakirdan/pushblock/internal/games/pushblock/engine"
)

// Phase is a state of the session state machine.
type Phase int

const (
	PhaseStart        Phase = iota // Run created, stage not built yet
	PhaseBuildStage                // Place obstacles and starting blocks
	PhasePlay                      // Player in control
	PhaseStop                      // Paused
	PhaseSpawnBlock                // Spawn timer elapsed
	PhaseClearBlocks               // Enough targets satisfied
	PhaseScore                     // Award points, maybe level up
	PhaseDifficultyUp              // Level changed
	PhaseEnd                       // Board full, waiting for the result scene
)

var phaseNames = [...]string{
	PhaseStart:        "Start",
	PhaseBuildStage:   "BuildStage",
	PhasePlay:         "Play",
	PhaseStop:         "Stop",
	PhaseSpawnBlock:   "SpawnBlock",
	PhaseClearBlocks:  "ClearBlocks",
	PhaseScore:        "Score",
	PhaseDifficultyUp: "DifficultyUp",
	PhaseEnd:          "End",
}

// String returns the phase name.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

// step runs one tick of the current phase.
func (g *Game) step(in core.InputFrame, dt float64) core.Exit {
	switch g.phase {
	case PhaseStart:
		g.setPhase(PhaseBuildStage)
	case PhaseBuildStage:
		g.buildStage()
	case PhasePlay:
		g.stepPlay(in, dt)
	case PhaseStop:
		return g.stepStop(in)
	case PhaseSpawnBlock:
		g.spawnBlock()
	case PhaseClearBlocks:
		g.clearBlocks()
	case PhaseScore:
		g.score()
	case PhaseDifficultyUp:
		g.difficultyUp()
	case PhaseEnd:
		return g.stepEnd(dt)
	}
	return core.ExitNone
}

func (g *Game) setPhase(p Phase) {
	if p == g.phase {
		return
	}
	g.log.Debug("phase", "from", g.phase, "to", p, "tick", g.tick)
	g.phase = p
}

// buildStage places the starting obstacles and moveable blocks.
func (g *Game) buildStage() {
	if !g.placeObstacles(true) {
		return
	}
	g.resolver.Resync()
	g.setPhase(PhasePlay)
}

// placeObstacles refreshes the sampler and places the configured static
// blocks, plus the starting moveable blocks when withMoveable is set.
// Returns false when the board ran out of room and the run ended.
func (g *Game) placeObstacles(withMoveable bool) bool {
	g.sampler.Refresh(g.grid)

	if _, err := engine.Place(g.grid, g.sampler, engine.StaticBlock, g.cfg.Spawn.StaticBlocks, g.sink); err != nil {
		g.endGame("no room for obstacles")
		return false
	}
	if !withMoveable {
		return true
	}
	if _, err := engine.Place(g.grid, g.sampler, engine.MoveableBlock, g.cfg.Spawn.MoveableBlocks, g.sink); err != nil {
		g.endGame("no room for blocks")
		return false
	}
	return true
}

// stepPlay handles one tick of play. When several transitions trigger in
// the same tick, a clear wins over pause, and pause wins over a spawn.
func (g *Game) stepPlay(in core.InputFrame, dt float64) {
	next := PhasePlay

	g.spawnTimer += dt
	if g.spawnTimer >= g.progress.SpawnInterval() {
		next = PhaseSpawnBlock
	}

	if in.Has(core.ActionPause) {
		next = PhaseStop
	}

	if in.Has(core.ActionPullDown) {
		g.resolver.SetPullMode(true)
	}
	if in.Has(core.ActionPullUp) {
		g.resolver.SetPullMode(false)
	}

	g.handleMove(in, dt)

	if g.resolver.ConsumeSatisfaction() {
		next = PhaseClearBlocks
	}

	g.setPhase(next)
}

// handleMove applies at most one move per held direction. A diagonal
// moves nothing. The lock is released once no direction is held or the
// input reset time has passed.
func (g *Game) handleMove(in core.InputFrame, dt float64) {
	vertical, horizontal := in.Axes()

	if vertical == 0 && !g.inputLocked {
		switch {
		case horizontal > 0:
			g.move(engine.DirRight)
		case horizontal < 0:
			g.move(engine.DirLeft)
		}
	}
	if horizontal == 0 && !g.inputLocked {
		switch {
		case vertical > 0:
			g.move(engine.DirUp)
		case vertical < 0:
			g.move(engine.DirDown)
		}
	}

	if g.inputLocked {
		g.inputTimer += dt
	}
	if horizontal+vertical == 0 || g.inputTimer >= g.cfg.Timing.InputReset {
		g.inputLocked = false
		g.inputTimer = 0
	}
}

// move attempts one player step. The input locks even when the move is
// refused.
func (g *Game) move(d engine.Dir) {
	req := engine.Request(g.grid.Player(), d)
	g.resolver.TryMovePlayer(req.FromRow, req.FromCol, req.ToRow, req.ToCol)
	g.inputLocked = true
}

// stepStop waits for resume or for the player to leave.
func (g *Game) stepStop(in core.InputFrame) core.Exit {
	if in.Has(core.ActionPause) {
		g.setPhase(PhasePlay)
	}
	if in.Has(core.ActionBack) {
		g.log.Info("left to title", "score", g.progress.Score(), "level", g.progress.Level())
		return core.ExitTitle
	}
	return core.ExitNone
}

// spawnBlock drops one moveable block on a random free cell. The run ends
// when no free cell was left or the spawn took the last one. Candidates are
// collected here, after the move of the previous tick.
func (g *Game) spawnBlock() {
	g.spawnTimer = 0
	g.sampler.Refresh(g.grid)

	if _, err := engine.Place(g.grid, g.sampler, engine.MoveableBlock, 1, g.sink); err != nil {
		if !isNoCandidates(err) {
			g.log.Error("spawn failed", "err", err)
		}
		g.endGame("board full")
		return
	}
	if g.sampler.Remaining() == 0 {
		g.endGame("board full")
		return
	}
	g.setPhase(PhasePlay)
}

// clearBlocks removes every block sitting on a target.
func (g *Game) clearBlocks() {
	n := g.clearer.SweepAndClear(g.grid)
	g.log.Info("blocks cleared", "count", n, "tick", g.tick)
	g.setPhase(PhaseScore)
}

// score awards one clear and releases the pull.
func (g *Game) score() {
	g.resolver.SetPullMode(false)
	g.progress.AddScore()

	if g.progress.TryLevelUp() {
		g.log.Info("level up", "level", g.progress.Level(), "score", g.progress.Score(),
			"interval", g.progress.SpawnInterval())
		g.setPhase(PhaseDifficultyUp)
		return
	}
	g.setPhase(PhasePlay)
}

// difficultyUp adds a fresh set of obstacles on reseed levels.
func (g *Game) difficultyUp() {
	if g.progress.NeedsReseed() {
		g.log.Info("reseeding obstacles", "level", g.progress.Level())
		if !g.placeObstacles(false) {
			return
		}
	}
	g.setPhase(PhasePlay)
}

// endGame switches to the end phase.
func (g *Game) endGame(reason string) {
	g.endReason = reason
	g.endTimer = 0
	g.log.Info("game over", "reason", reason, "score", g.progress.Score(), "level", g.progress.Level())
	g.setPhase(PhaseEnd)
}

// stepEnd waits the end delay, then stores the score and hands off to the
// result scene.
func (g *Game) stepEnd(dt float64) core.Exit {
	g.endTimer += dt
	if g.endTimer < g.cfg.Timing.EndDelay {
		return core.ExitNone
	}
	g.persistScore()
	return core.ExitResult
}
