package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pushblock/internal/config"
	"github.com/vovakirdan/pushblock/internal/core"
	"github.com/vovakirdan/pushblock/internal/games/pushblock"
	"github.com/vovakirdan/pushblock/internal/games/pushblock/stages"
	"github.com/vovakirdan/pushblock/internal/registry"
	"github.com/vovakirdan/pushblock/internal/storage"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		pullOn bool
		want   core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, false, core.ActionUp},
		{"w", runeKey("w"), false, core.ActionUp},
		{"s", runeKey("s"), false, core.ActionDown},
		{"h", runeKey("h"), false, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, false, core.ActionRight},
		{"space presses pull", tea.KeyMsg{Type: tea.KeySpace}, false, core.ActionPullDown},
		{"space releases pull", tea.KeyMsg{Type: tea.KeySpace}, true, core.ActionPullUp},
		{"pause", runeKey("p"), false, core.ActionPause},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, false, core.ActionBack},
		{"quit", runeKey("q"), false, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, false, core.ActionQuit},
		{"unbound", runeKey("x"), false, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg, tc.pullOn); got != tc.want {
				t.Errorf("MapKey(%q, %v) = %v, expected %v", tc.msg.String(), tc.pullOn, got, tc.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColor(3, 0, "[]", core.ColorYellow)
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab ") || !strings.Contains(lines[0], "[]") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "cd    " {
		t.Errorf("line 1 = %q, expected plain %q", lines[1], "cd    ")
	}
}

func TestRecordRun(t *testing.T) {
	t.Run("no store", func(t *testing.T) {
		rec, err := RecordRun(nil, RunResult{GameID: "pushblock", Score: 40})
		if err != nil {
			t.Fatal(err)
		}
		if rec.HighScore != 40 || rec.NewRecord || len(rec.Top) != 0 {
			t.Errorf("RecordRun(nil) = %+v", rec)
		}
	})

	t.Run("store", func(t *testing.T) {
		store := openTestStore(t)

		rec, err := RecordRun(store, RunResult{GameID: "pushblock", Stage: "classic", Player: "ann", Score: 30, Level: 2})
		if err != nil {
			t.Fatal(err)
		}
		if !rec.NewRecord || rec.HighScore != 30 {
			t.Errorf("first run: NewRecord = %v, HighScore = %d", rec.NewRecord, rec.HighScore)
		}

		rec, err = RecordRun(store, RunResult{GameID: "pushblock", Stage: "classic", Player: "bob", Score: 10, Level: 1})
		if err != nil {
			t.Fatal(err)
		}
		if rec.NewRecord || rec.HighScore != 30 {
			t.Errorf("second run: NewRecord = %v, HighScore = %d", rec.NewRecord, rec.HighScore)
		}
		if len(rec.Top) != 2 {
			t.Fatalf("Top has %d entries, expected 2", len(rec.Top))
		}
		if rec.Top[0].Score != 30 || rec.Top[0].Player != "ann" || rec.Top[1].Score != 10 {
			t.Errorf("Top = %+v", rec.Top)
		}
	})
}

func TestSceneString(t *testing.T) {
	for scene, want := range map[Scene]string{
		SceneTitle:     "title",
		ScenePlayGuide: "guide",
		SceneMain:      "main",
		SceneResult:    "result",
		Scene(9):       "unknown",
	} {
		if got := scene.String(); got != want {
			t.Errorf("Scene(%d).String() = %q, expected %q", scene, got, want)
		}
	}
}

// configureShortRun makes every created Push Block game a tiny board that
// fills up within a few ticks.
func configureShortRun(t *testing.T) {
	t.Helper()

	cfg := config.DefaultPushblockConfig()
	cfg.Spawn.StaticBlocks = 0
	cfg.Spawn.MoveableBlocks = 0
	cfg.Spawn.Intervals = []float64{0.05}
	cfg.Timing.EndDelay = 0.1

	layout := stages.Layout{ID: "tiny", Name: "tiny", Width: 3, Height: 1, Rows: []string{"P.."}}
	pushblock.Configure(pushblock.WithConfig(cfg), pushblock.WithLayout(layout))
	t.Cleanup(func() { pushblock.Configure() })
}

func update(t *testing.T, m SceneModel, msg tea.Msg) SceneModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SceneModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func snapshotOf(t *testing.T, m SceneModel) string {
	t.Helper()
	s, ok := m.game.Game().(registry.Snapshotter)
	if !ok {
		t.Fatal("game has no snapshot")
	}
	return s.Snapshot()
}

func TestSceneFlow(t *testing.T) {
	configureShortRun(t)
	store := openTestStore(t)

	m := NewSceneModel(SceneOptions{
		GameID: pushblock.GameID,
		Store:  store,
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 3},
		Player: "tester",
	})
	if m.Scene() != SceneTitle {
		t.Fatalf("initial scene = %s", m.Scene())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Scene() != ScenePlayGuide {
		t.Fatalf("scene after Start = %s, expected guide", m.Scene())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Scene() != SceneTitle {
		t.Fatalf("scene after Esc on guide = %s, expected title", m.Scene())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Scene() != SceneMain {
		t.Fatalf("scene after guide = %s, expected main", m.Scene())
	}

	for i := 0; i < 500 && m.Scene() == SceneMain; i++ {
		m = update(t, m, TickMsg{Gen: 1})
	}
	if m.Scene() != SceneResult {
		t.Fatalf("scene after the board filled = %s, expected result", m.Scene())
	}

	top := m.Result().Record().Top
	if len(top) != 1 {
		t.Fatalf("recorded %d runs, expected 1", len(top))
	}
	if top[0].Stage != "tiny" || top[0].Player != "tester" || top[0].Level != 1 {
		t.Errorf("recorded run = %+v", top[0])
	}
	if !strings.Contains(m.View(), "R E S U L T") {
		t.Error("result view missing its header")
	}

	m = update(t, m, runeKey("r"))
	if m.Scene() != SceneMain {
		t.Fatalf("scene after retry = %s, expected main", m.Scene())
	}

	m = update(t, m, TickMsg{Gen: 1})
	if snap := snapshotOf(t, m); !strings.HasPrefix(snap, "tick=0 ") {
		t.Errorf("stale tick was stepped: %q", strings.SplitN(snap, "\n", 2)[0])
	}

	m = update(t, m, TickMsg{Gen: 2})
	m = update(t, m, TickMsg{Gen: 2})
	m = update(t, m, runeKey("p"))
	m = update(t, m, TickMsg{Gen: 2})
	m = update(t, m, runeKey("b"))
	m = update(t, m, TickMsg{Gen: 2})
	if m.Scene() != SceneTitle {
		t.Fatalf("scene after back from pause = %s, expected title", m.Scene())
	}

	m = update(t, m, runeKey("q"))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q on title did not end the session")
	}
}

func TestMainSceneModel(t *testing.T) {
	configureShortRun(t)

	m, err := NewMainSceneModel(SceneOptions{
		GameID:    pushblock.GameID,
		Config:    core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 5},
		FixedSeed: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if m.Scene() != SceneMain {
		t.Fatalf("scene = %s, expected main", m.Scene())
	}
	if m.Init() == nil {
		t.Error("Init() returned no tick command")
	}

	if _, err := NewMainSceneModel(SceneOptions{GameID: "nope"}); err == nil {
		t.Error("NewMainSceneModel with an unknown game succeeded")
	}
}
