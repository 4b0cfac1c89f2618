package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW},
		{runeKey('z'), core.ActionRotateCCW},
		{runeKey('c'), core.ActionHold},
		{runeKey('p'), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('b'), core.ActionBack},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('?'), core.ActionNone},
		{runeKey('y'), core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyTrackerTapIsPressedOnce(t *testing.T) {
	tr := NewKeyTracker(80 * time.Millisecond)
	t0 := time.Unix(0, 0)

	tr.Observe(core.ActionLeft, t0)

	f := tr.Frame(t0.Add(10 * time.Millisecond))
	if !f.Has(core.ActionLeft) || !f.Down(core.ActionLeft) {
		t.Fatalf("first frame should press and hold left, got %+v", f)
	}

	f = tr.Frame(t0.Add(30 * time.Millisecond))
	if f.Has(core.ActionLeft) {
		t.Error("press should be consumed by the first frame")
	}
	if !f.Down(core.ActionLeft) {
		t.Error("left should still be held inside the window")
	}

	f = tr.Frame(t0.Add(100 * time.Millisecond))
	if f.Down(core.ActionLeft) {
		t.Error("left should be released after the window")
	}
}

func TestKeyTrackerRepeatsKeepKeyHeld(t *testing.T) {
	tr := NewKeyTracker(80 * time.Millisecond)
	t0 := time.Unix(0, 0)

	for i := 0; i < 5; i++ {
		tr.Observe(core.ActionSoftDrop, t0.Add(time.Duration(i)*40*time.Millisecond))
	}

	f := tr.Frame(t0.Add(170 * time.Millisecond))
	if !f.Down(core.ActionSoftDrop) {
		t.Error("soft drop should be held while repeats arrive")
	}
	if !f.Has(core.ActionSoftDrop) {
		t.Error("the initial press should be reported once")
	}

	f = tr.Frame(t0.Add(180 * time.Millisecond))
	if f.Has(core.ActionSoftDrop) {
		t.Error("repeats inside the window must not count as new presses")
	}
}

func TestKeyTrackerPressAfterRelease(t *testing.T) {
	tr := NewKeyTracker(50 * time.Millisecond)
	t0 := time.Unix(0, 0)

	tr.Observe(core.ActionRotateCW, t0)
	tr.Frame(t0)
	tr.Observe(core.ActionRotateCW, t0.Add(200*time.Millisecond))

	f := tr.Frame(t0.Add(210 * time.Millisecond))
	if !f.Has(core.ActionRotateCW) {
		t.Error("a key seen again after its window is a new press")
	}
}

func TestKeyTrackerReset(t *testing.T) {
	tr := NewKeyTracker(0)
	t0 := time.Unix(0, 0)

	tr.Observe(core.ActionHold, t0)
	tr.Reset()

	if f := tr.Frame(t0); f.Held != 0 || f.Pressed != 0 {
		t.Errorf("reset tracker should report nothing, got %+v", f)
	}
	tr.Observe(core.ActionNone, t0)
	if f := tr.Frame(t0); f.Held != 0 {
		t.Errorf("ActionNone must be ignored, got %+v", f)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('+'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
