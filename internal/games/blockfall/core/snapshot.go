package core

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Rows  int
	Cols  int
	Cells []Cell // row-major, len Rows*Cols

	Active    Piece
	HasActive bool
	GhostRow  int

	Hold    Kind
	CanHold bool
	Next    Kind

	Score        int
	Lines        int
	Level        int
	FallInterval float64
	Elapsed      float64

	State  State
	Paused bool

	ClearedRows  []int // rows cleared during the last update
	ClearingRows []int // rows waiting to collapse in StateLineClearPause
}

// Cell returns the snapshot cell at (col, row), or Empty out of bounds.
func (s Snapshot) Cell(col, row int) Cell {
	if col < 0 || col >= s.Cols || row < 0 || row >= s.Rows {
		return Empty
	}
	return s.Cells[row*s.Cols+col]
}

// Snapshot returns a deep copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	active, ok := e.Active()
	return Snapshot{
		Rows:         e.board.Rows(),
		Cols:         e.board.Cols(),
		Cells:        e.board.Cells(),
		Active:       active,
		HasActive:    ok,
		GhostRow:     e.ghostRow,
		Hold:         e.hold,
		CanHold:      e.canHold,
		Next:         e.next,
		Score:        e.score,
		Lines:        e.lines,
		Level:        e.level,
		FallInterval: e.fallInterval,
		Elapsed:      e.elapsed,
		State:        e.State(),
		Paused:       e.paused,
		ClearedRows:  append([]int(nil), e.cleared...),
		ClearingRows: append([]int(nil), e.clearing...),
	}
}

// Board returns a copy of the board.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}
