package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndInset(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	in := r.Inset(1)
	if in != NewRect(6, 11, 18, 13) {
		t.Errorf("Inset(1) = %+v", in)
	}
	if tiny := NewRect(0, 0, 1, 1).Inset(2); tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset should not go negative, got %+v", tiny)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below lo
		{15, 0, 10, 10}, // above hi
		{0, 0, 10, 0},   // at lo
		{10, 0, 10, 10}, // at hi
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestTickSeconds(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickSeconds(); got != 1.0/60 {
		t.Errorf("TickSeconds() = %v, expected 1/60", got)
	}
	cfg.TickRate = 0
	if got := cfg.TickSeconds(); got != 1.0/60 {
		t.Errorf("TickSeconds() with zero rate = %v, expected 1/60", got)
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	f.Press(ActionHardDrop)
	f.Hold(ActionLeft)
	f.Press(ActionNone)

	if !f.Has(ActionHardDrop) || !f.Down(ActionHardDrop) {
		t.Error("pressed action should be both pressed and down")
	}
	if f.Has(ActionLeft) {
		t.Error("held action should not count as pressed")
	}
	if !f.Down(ActionLeft) {
		t.Error("held action should be down")
	}
	if f.Has(ActionNone) || f.Down(ActionNone) {
		t.Error("ActionNone should never be set")
	}

	f.Clear()
	if f.Down(ActionHardDrop) || f.Down(ActionLeft) {
		t.Error("Clear should reset all actions")
	}
}
