package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last key
// message. Terminals only report presses and auto-repeats, never releases,
// so a key is considered up once repeats stop arriving. Keep it below the
// auto-shift delay or a single tap shifts twice.
const DefaultHoldWindow = 80 * time.Millisecond

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	SoftDrop  key.Binding
	HardDrop  key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	Hold      key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Back      key.Binding
	Quit      key.Binding
	Help      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateCW, k.HardDrop, k.Hold, k.Pause, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop, k.HardDrop},
		{k.RotateCW, k.RotateCCW, k.Hold},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "soft drop"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hard drop"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("up", "x", "w", "k"),
			key.WithHelp("↑/x", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("z", "ctrl+z"),
			key.WithHelp("z", "rotate ccw"),
		),
		Hold: key.NewBinding(
			key.WithKeys("c", "shift+tab"),
			key.WithHelp("c", "hold"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Action translates a key message to a platform action.
// Returns ActionNone for unbound keys and for the help toggle.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.HardDrop):
		return core.ActionHardDrop
	case key.Matches(msg, k.RotateCW):
		return core.ActionRotateCW
	case key.Matches(msg, k.RotateCCW):
		return core.ActionRotateCCW
	case key.Matches(msg, k.Hold):
		return core.ActionHold
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// KeyTracker turns a stream of key messages into per-tick input frames.
//
// The first message for an action marks it pressed; further messages
// arriving within the hold window only keep it held. Each call to Frame
// consumes the pending presses.
type KeyTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
	pressed  core.ActionSet
}

// NewKeyTracker creates a tracker with the given hold window.
// A non-positive window uses DefaultHoldWindow.
func NewKeyTracker(window time.Duration) *KeyTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Observe records a key message for action a at time now.
func (t *KeyTracker) Observe(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !t.down(a, now) {
		t.pressed = t.pressed.Add(a)
	}
	t.lastSeen[a] = now
}

// down reports whether a is still inside its hold window.
func (t *KeyTracker) down(a core.Action, now time.Time) bool {
	seen, ok := t.lastSeen[a]
	return ok && now.Sub(seen) < t.window
}

// Frame returns the input frame for the tick at time now and clears the
// pending presses. Actions whose window has expired are released.
func (t *KeyTracker) Frame(now time.Time) core.InputFrame {
	var f core.InputFrame
	for a, seen := range t.lastSeen {
		if now.Sub(seen) >= t.window {
			delete(t.lastSeen, a)
			continue
		}
		f.Hold(a)
	}
	for a := core.ActionNone + 1; a <= core.ActionQuit; a++ {
		if t.pressed.Has(a) {
			f.Press(a)
		}
	}
	t.pressed = 0
	return f
}

// Reset forgets every held key.
func (t *KeyTracker) Reset() {
	clear(t.lastSeen)
	t.pressed = 0
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h", "-":
		return MenuActionLeft
	case "d", "right", "l", "+":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
