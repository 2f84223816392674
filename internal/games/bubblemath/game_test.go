package bubblemath

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/bubble-math/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testRuntime()

	// Tap by ordinal every so often, pause briefly in the middle
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%50 == 10 {
			inputSequence[i].SetTapOrdinal(i/50%3 + 1)
		}
		if i == 200 || i == 230 {
			inputSequence[i].Set(core.ActionPause)
		}
	}

	g1 := New()
	g1.Reset(cfg)
	for _, in := range inputSequence {
		g1.Step(in)
	}
	snap1 := g1.Snapshot()

	g2 := New()
	g2.Reset(cfg)
	for _, in := range inputSequence {
		g2.Step(in)
	}
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestGameSnapshotRoundTrip(t *testing.T) {
	cfg := testRuntime()

	g := New()
	g.Reset(cfg)
	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame())
	}

	snap := g.Snapshot()

	// A fresh game restored from the snapshot must hash identically
	g2 := New()
	g2.Reset(cfg)
	g2.ApplySnapshot(snap)

	snap2 := g2.Snapshot()
	if snap.Hash() != snap2.Hash() {
		t.Errorf("snapshot round trip changed state: %d vs %d", snap.Hash(), snap2.Hash())
	}

	// And must evolve identically from there
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
		g2.Step(core.NewInputFrame())
	}
	if g.Snapshot().Hash() != g2.Snapshot().Hash() {
		t.Error("restored game diverged from original")
	}
}

func TestGameReset(t *testing.T) {
	cfg := testRuntime()

	g := New()
	g.Reset(cfg)

	for i := 0; i < 100; i++ {
		in := core.NewInputFrame()
		if i == 10 {
			in.SetTapOrdinal(1)
		}
		g.Step(in)
	}

	g.Reset(cfg)

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Reset should clear score, got %d", state.Score)
	}
	if state.GameOver {
		t.Error("Reset should clear game over")
	}
	if state.Paused {
		t.Error("Reset should clear pause")
	}
	if g.session.QuestionCount() != 0 {
		t.Errorf("Reset should clear question count, got %d", g.session.QuestionCount())
	}
}

func TestGameResetRejectsBrokenExplicitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  lift: -1\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntime())

	// A broken explicit config must refuse to launch, never silently
	// substitute defaults.
	if g.initErr == nil {
		t.Fatal("broken explicit config accepted")
	}
	if !g.State().GameOver {
		t.Error("game not marked over on config error")
	}

	// Stepping and rendering degrade instead of crashing
	g.Step(core.NewInputFrame())
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot start game") {
		t.Error("render missing config error notice")
	}
}

func TestGameResetMissingExplicitConfig(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "nope.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntime())
	if g.initErr == nil {
		t.Error("missing explicit config accepted")
	}
}

func TestGameApplySnapshotTruncatedBubbleData(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}

	// A snapshot claiming more bubbles than its data carries must restore
	// only the complete records and keep ticking.
	snap := g.Snapshot()
	snap.BubbleCount += 2

	g.ApplySnapshot(snap)
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	for _, b := range g.session.Field().Bubbles() {
		if b == nil {
			t.Fatal("nil bubble restored from truncated snapshot")
		}
	}
}

func TestGamePauseStopsSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("game not paused")
	}

	before := g.Snapshot()
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("state advanced while paused")
	}

	// Unpause resumes
	g.Step(pause)
	if g.State().Paused {
		t.Fatal("game still paused after toggle")
	}
	g.Step(core.NewInputFrame())
	if g.Snapshot().Hash() == after.Hash() {
		t.Error("state did not advance after unpause")
	}
}

func TestGameQuitEndsSession(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)
	g.Step(quit)

	if !g.State().GameOver {
		t.Error("quit did not end the session")
	}

	report := g.Report()
	if report.Difficulty != "normal" {
		t.Errorf("report difficulty %q, want normal", report.Difficulty)
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)
	g.Step(quit)

	// Restart is ignored while the game is running, honored after game over
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.State().GameOver {
		t.Error("restart did not start a new session")
	}
	if g.session.Status() != StatusActive {
		t.Error("session not active after restart")
	}
}

func TestGameIDsAndTitles(t *testing.T) {
	classic := New()
	if classic.ID() != "bubblemath" || classic.Title() != "Bubble Math" {
		t.Errorf("classic: %q / %q", classic.ID(), classic.Title())
	}

	blitz := NewBlitz()
	if blitz.ID() != "bubblemath_blitz" || blitz.Title() != "Bubble Math (Blitz)" {
		t.Errorf("blitz: %q / %q", blitz.ID(), blitz.Title())
	}
}

func TestGameRenderShowsEquation(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "= ?") {
		t.Error("render missing equation banner")
	}
	if !strings.Contains(out, "Score:") {
		t.Error("render missing score")
	}
	if !strings.Contains(out, "Time:") {
		t.Error("render missing timer")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	screen := core.NewScreen(20, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("render missing too-small notice")
	}

	// Stepping a too-small game is a no-op, not a crash
	g.Step(core.NewInputFrame())
}

func TestGameTapByCoordinates(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())

	// Tap directly on a live bubble, offset by the HUD rows
	b := g.session.Field().Bubbles()[0]
	in := core.NewInputFrame()
	in.SetTap(int(b.Pos.X), int(b.Pos.Y)+3)
	g.Step(in)

	if b.State == BubbleLive {
		t.Error("tapped bubble still live")
	}
}

func TestGameTapByOrdinal(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())

	var target *Bubble
	for _, b := range g.session.Field().Bubbles() {
		if b.SpawnOrder == 1 {
			target = b
		}
	}

	in := core.NewInputFrame()
	in.SetTapOrdinal(2)
	g.Step(in)

	if target.State == BubbleLive {
		t.Error("ordinal tap did not pop bubble 2")
	}
}
