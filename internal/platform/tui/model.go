package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// LocalPlayer is the player name recorded for runs played on this terminal.
const LocalPlayer = "local"

// resizer is implemented by games that can follow a terminal resize
// without restarting the run.
type resizer interface {
	Resize(w, h int)
}

// bestSetter is implemented by games that show the stored high score.
type bestSetter interface {
	SetBest(score int)
}

// GameModel is the Bubble Tea model that runs one game.
// It is used directly for local play and embedded in SessionModel over SSH.
type GameModel struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	player  string
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	tracker *KeyTracker
	now     func() time.Time

	gameState  core.GameState
	showHelp   bool
	quitting   bool
	backToMenu bool
	runsSaved  int
}

// NewGameModel creates a model for the given game. A nil logger discards
// log output; an empty player records runs as LocalPlayer.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if player == "" {
		player = LocalPlayer
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		player:  player,
		logger:  logger.With("game", game.ID(), "player", player),
		keys:    DefaultKeyMap(),
		help:    h,
		tracker: NewKeyTracker(DefaultHoldWindow),
		now:     time.Now,
	}
}

// Init starts the run and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.start()
	return tickCmd(m.config.TickRate)
}

// start resets the game and loads the high score for the HUD.
func (m *GameModel) start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.tracker.Reset()
	m.refreshBest()
	m.logger.Debug("run started", "seed", m.config.Seed, "level", m.gameState.Level)
}

// refreshBest pushes the stored high score into the game.
func (m *GameModel) refreshBest() {
	bs, ok := m.game.(bestSetter)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	bs.SetBest(best)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input. Gameplay keys go through the tracker;
// platform keys act immediately.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
		return m, nil
	case core.ActionRestart:
		if m.gameState.GameOver || m.gameState.Paused {
			m.config.Seed = time.Now().UnixNano()
			m.start()
		}
		return m, nil
	case core.ActionNone:
		return m, nil
	default:
		m.tracker.Observe(action, m.now())
	}
	return m, nil
}

// handleResize adapts the screen buffer to the new terminal size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.tracker.Frame(now)
	result := m.game.Step(frame)
	m.gameState = result.State
	m.handleNotices(result.Notices)
	return m, tickCmd(m.config.TickRate)
}

// handleNotices logs game notices and records finished runs.
func (m *GameModel) handleNotices(notices []core.Notice) {
	for _, n := range notices {
		switch n.Kind {
		case "lines_cleared":
			m.logger.Debug("lines cleared", "lines", n.Value, "score", m.gameState.Score)
		case "level_up":
			m.logger.Info("level up", "level", n.Value)
		case "top_out":
			m.logger.Info("run finished", "score", n.Value, "lines", n.Lines, "level", n.Level)
			m.saveRun(n)
		}
	}
}

// saveRun stores a finished run. Empty runs are not recorded.
func (m *GameModel) saveRun(n core.Notice) {
	if m.store == nil || n.Value <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    n.Value,
		Lines:    n.Lines,
		Level:    n.Level,
		Duration: time.Duration(n.Seconds * float64(time.Second)),
		Player:   m.player,
	})
	if err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.runsSaved++
	m.refreshBest()
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game and, when toggled, the key help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// RunsSaved returns how many finished runs were written to storage.
func (m GameModel) RunsSaved() int {
	return m.runsSaved
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// localModel wraps GameModel so that leaving to the menu ends the program.
type localModel struct {
	GameModel
}

func (m localModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.GameModel.Update(msg)
	m.GameModel = next.(GameModel)
	if m.backToMenu {
		return m, tea.Quit
	}
	return m, cmd
}

// Run plays a game on the local terminal. It returns true when the player
// asked to go back to the menu rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	model := localModel{NewGameModel(game, store, cfg, LocalPlayer, logger)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(localModel); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
