package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// stubGame records what the model feeds it and replays queued notices.
type stubGame struct {
	state   core.GameState
	queued  []core.Notice
	frames  []core.InputFrame
	resets  int
	resized [2]int
	best    int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) SetBest(score int) { g.best = score }
func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	res := core.StepResult{State: g.state, Notices: g.queued}
	g.queued = nil
	return res
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func tick(t *testing.T, m GameModel, at time.Time) GameModel {
	t.Helper()
	next, cmd := m.Update(TickMsg(at))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(GameModel)
}

func TestGameModelSavesRunOnTopOut(t *testing.T) {
	store := openTestStore(t)
	g := &stubGame{}
	m := NewGameModel(g, store, testConfig(), "alice", nil)
	m.Init()

	g.state = core.GameState{Score: 0, GameOver: true}
	g.queued = []core.Notice{{Kind: "top_out", Value: 1200, Lines: 4, Level: 2, Seconds: 95}}
	m = tick(t, m, time.Now())

	if m.RunsSaved() != 1 {
		t.Fatalf("RunsSaved = %d, want 1", m.RunsSaved())
	}
	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 1200 || got.Lines != 4 || got.Level != 2 || got.Player != "alice" {
		t.Errorf("saved run = %+v", got.Run)
	}
	if got.Duration != 95*time.Second {
		t.Errorf("Duration = %v, want 1m35s", got.Duration)
	}
	if g.best != 1200 {
		t.Errorf("best = %d, want 1200 after save", g.best)
	}
}

func TestGameModelSkipsEmptyRuns(t *testing.T) {
	store := openTestStore(t)
	g := &stubGame{}
	m := NewGameModel(g, store, testConfig(), "", nil)
	m.Init()

	g.queued = []core.Notice{{Kind: "top_out", Value: 0}, {Kind: "level_up", Value: 3}}
	m = tick(t, m, time.Now())

	if m.RunsSaved() != 0 {
		t.Errorf("zero-score run should not be saved")
	}
}

func TestGameModelWithoutStore(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, nil, testConfig(), "", nil)
	m.Init()

	g.queued = []core.Notice{{Kind: "top_out", Value: 500}}
	m = tick(t, m, time.Now())

	if m.RunsSaved() != 0 {
		t.Errorf("nothing can be saved without a store")
	}
}

func TestGameModelFeedsTrackedKeys(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, nil, testConfig(), "", nil)
	t0 := time.Unix(1000, 0)
	m.now = func() time.Time { return t0 }
	m.Init()

	next, _ := m.Update(runeKey('a'))
	m = next.(GameModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(GameModel)

	m = tick(t, m, t0.Add(5*time.Millisecond))
	m = tick(t, m, t0.Add(20*time.Millisecond))
	tick(t, m, t0.Add(time.Second))

	if len(g.frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(g.frames))
	}
	first := g.frames[0]
	if !first.Has(core.ActionLeft) || !first.Has(core.ActionHardDrop) {
		t.Errorf("first frame should press left and hard drop, got %+v", first)
	}
	second := g.frames[1]
	if second.Has(core.ActionLeft) || !second.Down(core.ActionLeft) {
		t.Errorf("second frame should only hold left, got %+v", second)
	}
	if last := g.frames[2]; last.Held != 0 {
		t.Errorf("keys should be released after the hold window, got %+v", last)
	}
}

func TestGameModelRestartAndBack(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, nil, testConfig(), "", nil)
	m.Init()
	if g.resets != 1 {
		t.Fatalf("Init should reset once, got %d", g.resets)
	}

	// Restart and back are ignored during play.
	next, _ := m.Update(runeKey('r'))
	m = next.(GameModel)
	next, _ = m.Update(runeKey('b'))
	m = next.(GameModel)
	if g.resets != 1 || m.BackToMenu() {
		t.Fatal("restart/back must be ignored while running")
	}

	g.state = core.GameState{GameOver: true}
	m = tick(t, m, time.Now())

	next, _ = m.Update(runeKey('r'))
	m = next.(GameModel)
	if g.resets != 2 {
		t.Errorf("restart after game over should reset, resets = %d", g.resets)
	}

	g.state = core.GameState{Paused: true}
	m = tick(t, m, time.Now())
	next, _ = m.Update(runeKey('b'))
	m = next.(GameModel)
	if !m.BackToMenu() {
		t.Error("back while paused should return to menu")
	}

	next, cmd := m.Update(runeKey('q'))
	m = next.(GameModel)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, nil, testConfig(), "", nil)
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(GameModel)

	if g.resized != [2]int{100, 40} {
		t.Errorf("resized = %v, want [100 40]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resize should not restart a game that can follow it")
	}
}

func TestGameModelViewAndHelp(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, nil, testConfig(), "", nil)
	m.Init()

	if !strings.Contains(m.View(), "stub") {
		t.Error("view should contain the rendered game")
	}

	next, _ := m.Update(runeKey('?'))
	m = next.(GameModel)
	if !strings.Contains(m.View(), "hard drop") {
		t.Error("help view should list key bindings")
	}
}
