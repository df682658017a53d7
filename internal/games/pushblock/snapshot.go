package pushblock

import (
	"fmt"
	"strings"
)

// Snapshot dumps the complete session state as text for determinism tests
// and debug screenshots.
func (g *Game) Snapshot() string {
	if g.grid == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "tick=%d phase=%s stage=%s\n", g.tick, g.phase, g.layout.ID)
	fmt.Fprintf(&sb, "score=%d level=%d interval=%g\n",
		g.progress.Score(), g.progress.Level(), g.progress.SpawnInterval())
	fmt.Fprintf(&sb, "pull=%t satisfied=%d/%d spawn=%.3f\n",
		g.resolver.PullMode(), g.resolver.TargetSatisfied(), g.resolver.TargetRequired(), g.spawnTimer)
	sb.WriteString(g.grid.String())
	return sb.String()
}
