// Package blockfall adapts the falling-block engine to the terminal platform:
// it loads configuration, maps platform actions to engine keys, and renders
// the board into a screen buffer.
package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/config"
	platformcore "github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode selects the top-out behaviour of a run.
type Mode int

const (
	ModeMarathon Mode = iota // top-out ends the run
	ModeEndless              // top-out silently clears the board and starts over
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// selectedStartLevel is the level picked in the start menu; -1 keeps the
// configured one.
var selectedStartLevel = -1

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetStartLevel sets the starting level. A negative level keeps the level
// from the config file.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
	registry.Register("blockfall_endless", func() registry.Game {
		return NewEndless()
	})
}

// bannerSeconds is how long a clear banner stays on screen.
const bannerSeconds = 1.0

// Game implements registry.Game on top of the engine.
type Game struct {
	mode    Mode
	cfg     config.BlockfallConfig
	engine  *core.Engine
	loadErr error

	dt       float64 // seconds per tick
	screenW  int
	screenH  int
	tooSmall bool

	best        int
	banner      string
	bannerTicks int
	tickRate    int
}

// New creates a marathon game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "blockfall_endless"
	}
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Blockfall (Endless)"
	}
	return "Blockfall"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Topping out clears the board and play goes on"
	}
	return "Classic marathon: play until the stack reaches the top"
}

// Reset loads the configuration and starts a new run.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		g.loadErr = err
		cfg = config.DefaultBlockfallConfig()
	} else {
		g.loadErr = nil
	}
	if difficultyPreset != "" {
		config.ApplyBlockfallPreset(&cfg, difficultyPreset)
	}
	switch {
	case rc.StartLevel >= 0:
		cfg.Gameplay.StartLevel = rc.StartLevel
	case selectedStartLevel >= 0:
		cfg.Gameplay.StartLevel = selectedStartLevel
	}
	g.cfg = cfg

	ecfg := EngineConfig(cfg, g.mode, rc.Seed)
	engine, err := core.New(ecfg, nil)
	if err != nil {
		g.loadErr = err
		fallback := core.DefaultConfig()
		fallback.Seed = rc.Seed
		engine = core.MustNew(fallback, nil)
	}
	g.engine = engine

	g.dt = rc.TickSeconds()
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.banner = ""
	g.bannerTicks = 0
	g.checkScreenSize()
}

// EngineConfig converts a loaded configuration to engine settings for a mode.
func EngineConfig(cfg config.BlockfallConfig, mode Mode, seed int64) core.Config {
	ecfg := core.Config{
		Rows:             cfg.Board.Rows,
		Cols:             cfg.Board.Cols,
		StartLevel:       cfg.Gameplay.StartLevel,
		FallInterval:     cfg.Timing.FallInterval,
		MinFallInterval:  cfg.Timing.MinFallInterval,
		AutoShiftDelay:   cfg.Timing.AutoShiftDelay,
		SoftDropInterval: cfg.Timing.SoftDropInterval,
		ClearDelay:       cfg.Timing.ClearDelay,
		TopOut:           core.TopOutGameOver,
		StartPaused:      cfg.Gameplay.StartPaused,
		Seed:             seed,
	}
	if cfg.Gameplay.TopOut != "" {
		ecfg.TopOut = core.TopOutPolicy(cfg.Gameplay.TopOut)
	}
	if mode == ModeEndless {
		ecfg.TopOut = core.TopOutReset
	}
	return ecfg
}

// LoadError returns the error from the last config load, if any.
// The game falls back to defaults when loading fails.
func (g *Game) LoadError() error {
	return g.loadErr
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts the layout to a new screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// SetBest sets the high score shown in the HUD.
func (g *Game) SetBest(score int) {
	g.best = score
}

// actionKeys maps platform actions to engine keys.
var actionKeys = map[platformcore.Action]core.Key{
	platformcore.ActionLeft:      core.KeyMoveLeft,
	platformcore.ActionRight:     core.KeyMoveRight,
	platformcore.ActionSoftDrop:  core.KeySoftDrop,
	platformcore.ActionHardDrop:  core.KeyHardDrop,
	platformcore.ActionRotateCW:  core.KeyRotateCW,
	platformcore.ActionRotateCCW: core.KeyRotateCCW,
	platformcore.ActionHold:      core.KeyHold,
	platformcore.ActionPause:     core.KeyPause,
}

// engineInput converts a platform input frame to an engine input snapshot.
func engineInput(in platformcore.InputFrame) core.Input {
	var out core.Input
	for action, key := range actionKeys {
		if in.Down(action) {
			out.Held = out.Held.With(key)
		}
		if in.Has(action) {
			out.Pressed = out.Pressed.With(key)
		}
	}
	return out
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	elapsed := g.engine.Elapsed()
	g.engine.Update(g.dt, engineInput(in))

	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	var notices []platformcore.Notice
	for _, ev := range g.engine.Events() {
		switch ev.Kind {
		case core.EventLinesCleared:
			g.showBanner(ev.Lines, ev.Points)
			notices = append(notices, platformcore.Notice{Kind: ev.Kind.String(), Value: ev.Lines})
		case core.EventLevelUp:
			notices = append(notices, platformcore.Notice{Kind: ev.Kind.String(), Value: ev.Level})
		case core.EventTopOut:
			notices = append(notices, platformcore.Notice{
				Kind:    ev.Kind.String(),
				Value:   ev.Score,
				Lines:   ev.Lines,
				Level:   ev.Level,
				Seconds: elapsed + g.dt,
			})
		}
	}

	return platformcore.StepResult{State: g.State(), Notices: notices}
}

var clearNames = [...]string{"", "SINGLE", "DOUBLE", "TRIPLE", "TETRIS"}

func (g *Game) showBanner(lines, points int) {
	name := clearNames[min(lines, len(clearNames)-1)]
	g.banner = fmt.Sprintf("%s +%d", name, points)
	g.bannerTicks = int(bannerSeconds * float64(g.tickRate))
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.engine == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		Level:    g.engine.Level(),
		GameOver: g.engine.State() == core.StateGameOver,
		Paused:   g.engine.Paused() || g.tooSmall,
	}
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() core.Snapshot {
	return g.engine.Snapshot()
}

// Elapsed returns the play time of the current run in seconds.
func (g *Game) Elapsed() float64 {
	if g.engine == nil {
		return 0
	}
	return g.engine.Elapsed()
}
