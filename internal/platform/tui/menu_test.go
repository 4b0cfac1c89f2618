package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func menuKey(m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuLevelSelector(t *testing.T) {
	store := openTestStore(t)
	m := NewMenuModel(store, testConfig())

	if m.Level() != 0 {
		t.Fatalf("default level = %d, want 0", m.Level())
	}

	m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Level() != 0 {
		t.Errorf("level must not go below 0, got %d", m.Level())
	}

	for i := 0; i < config.MaxStartLevel+3; i++ {
		m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.Level() != config.MaxStartLevel {
		t.Errorf("level = %d, want clamp at %d", m.Level(), config.MaxStartLevel)
	}

	if !strings.Contains(m.View(), "Start level:") {
		t.Error("view should show the level selector")
	}
}

func TestMenuStartsAtConfiguredLevel(t *testing.T) {
	cfg := testConfig()
	cfg.StartLevel = 4
	if got := NewMenuModel(nil, cfg).Level(); got != 4 {
		t.Errorf("Level = %d, want 4", got)
	}

	cfg.StartLevel = 42
	if got := NewMenuModel(nil, cfg).Level(); got != config.MaxStartLevel {
		t.Errorf("Level = %d, want %d", got, config.MaxStartLevel)
	}
}

func TestMenuSelectCarriesLevel(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyRight})

	m, cmd := menuKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || m.Selected() == nil {
		t.Fatal("enter should select the highlighted mode")
	}
	if m.Config().StartLevel != 2 {
		t.Errorf("StartLevel = %d, want 2", m.Config().StartLevel)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m, _ := menuKey(NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m, _ = menuKey(NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsQuitting() {
		t.Error("esc should not quit the menu")
	}

	m, _ = menuKey(m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit the menu")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openTestStore(t)
	s := NewSessionModel(store, testConfig(), "bob", nil)

	update := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	// Open and leave the scoreboard.
	update(tea.KeyMsg{Type: tea.KeyTab})
	if s.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.scoreboard != nil {
		t.Fatal("esc should go back to the menu")
	}

	// Pick the stub game.
	for i, item := range s.menu.items {
		if item.GameID == "stub" {
			for j := 0; j < i; j++ {
				update(tea.KeyMsg{Type: tea.KeyDown})
			}
		}
	}
	update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.gameModel == nil {
		t.Fatal("enter should start a game")
	}
	if s.gameModel.player != "bob" {
		t.Errorf("player = %q, want bob", s.gameModel.player)
	}
	if !strings.Contains(s.View(), "stub") {
		t.Error("session should render the game")
	}

	// Pause state comes from the game; back returns to the menu.
	s.gameModel.gameState.Paused = true
	update(runeKey('b'))
	if s.gameModel != nil {
		t.Fatal("back should leave the game")
	}

	update(runeKey('q'))
	if s.View() != "" {
		t.Error("quit session should render nothing")
	}
}
