package core

// EventKind identifies a discrete gameplay notification.
type EventKind uint8

const (
	EventSpawn        EventKind = iota // a new active piece entered the board
	EventLock                          // the active piece merged into the board
	EventHardDrop                      // the active piece was hard-dropped
	EventLinesCleared                  // one or more full rows were removed
	EventHold                          // the active piece was swapped with the hold slot
	EventLevelUp                       // the level increased
	EventTopOut                        // a spawn overlapped the stack
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventLock:
		return "lock"
	case EventHardDrop:
		return "hard_drop"
	case EventLinesCleared:
		return "lines_cleared"
	case EventHold:
		return "hold"
	case EventLevelUp:
		return "level_up"
	case EventTopOut:
		return "top_out"
	default:
		return "unknown"
	}
}

// Event is a value raised by the engine while an update runs.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind     EventKind
	Piece    Kind  // Spawn, Lock, HardDrop, Hold
	Rows     []int // LinesCleared: cleared row indices, top to bottom
	Lines    int   // LinesCleared: number of rows; TopOut: total lines
	Points   int   // LinesCleared: score gained
	Distance int   // HardDrop: rows travelled
	Level    int   // LevelUp: new level; TopOut: level reached
	Score    int   // TopOut: final score
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// Events returns the events raised since the previous call and clears the queue.
func (e *Engine) Events() []Event {
	out := e.events
	e.events = nil
	return out
}
