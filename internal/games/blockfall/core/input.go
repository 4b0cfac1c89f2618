package core

import "strings"

// Key is an abstract gameplay action, independent of any input device.
type Key uint8

const (
	KeyMoveLeft Key = iota
	KeyMoveRight
	KeySoftDrop
	KeyHardDrop
	KeyRotateCW
	KeyRotateCCW
	KeyHold
	KeyPause
	numKeys
)

var keyNames = [numKeys]string{
	KeyMoveLeft:  "left",
	KeyMoveRight: "right",
	KeySoftDrop:  "soft_drop",
	KeyHardDrop:  "hard_drop",
	KeyRotateCW:  "rotate_cw",
	KeyRotateCCW: "rotate_ccw",
	KeyHold:      "hold",
	KeyPause:     "pause",
}

// String returns the snake_case name of the key.
func (k Key) String() string {
	if k >= numKeys {
		return "unknown"
	}
	return keyNames[k]
}

// ParseKey converts a key name as produced by String back to a Key.
func ParseKey(s string) (Key, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range keyNames {
		if name == s {
			return Key(k), true
		}
	}
	return 0, false
}

// KeySet is a bitset of keys.
type KeySet uint16

// Keys builds a set from a list of keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns the set with k added.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// Input is the per-frame input snapshot handed to Engine.Update.
// Held holds the keys currently down; Pressed holds the keys that went down
// since the previous frame. The caller computes both; the engine only reads.
type Input struct {
	Held    KeySet
	Pressed KeySet
}

// IsDown reports whether k is held or was pressed this frame.
func (in Input) IsDown(k Key) bool {
	return in.Held.Has(k) || in.Pressed.Has(k)
}

// JustPressed reports whether k went down this frame.
func (in Input) JustPressed(k Key) bool {
	return in.Pressed.Has(k)
}
