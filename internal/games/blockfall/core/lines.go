package core

// resolveLines finds full rows, empties them and updates score and level.
// With a clear delay the engine enters StateLineClearPause and the rows
// collapse once the delay runs out; otherwise they collapse immediately.
func (e *Engine) resolveLines() {
	rows := e.board.FullRows()
	if len(rows) == 0 {
		return
	}

	for _, r := range rows {
		e.board.ClearRow(r)
	}
	e.cleared = rows

	points := LineScore(len(rows), e.level)
	e.score += points
	e.lines += len(rows)
	e.emit(Event{
		Kind:   EventLinesCleared,
		Rows:   append([]int(nil), rows...),
		Lines:  len(rows),
		Points: points,
	})
	e.advanceLevel(len(rows))

	if e.cfg.ClearDelay > 0 {
		e.clearing = rows
		e.clearTimer = e.cfg.ClearDelay
		e.state = StateLineClearPause
		return
	}
	e.collapse(rows)
}

// advanceLevel adds n cleared rows to the level accumulator and levels up for
// every LinesPerLevel collected.
func (e *Engine) advanceLevel(n int) {
	e.levelProgress += n
	for e.levelProgress >= LinesPerLevel {
		e.levelProgress -= LinesPerLevel
		e.level++
		e.fallInterval = speedUp(e.fallInterval, e.level, e.cfg.MinFallInterval)
		e.emit(Event{Kind: EventLevelUp, Level: e.level})
	}
}

// collapse removes the given rows, top to bottom. Rows above each removed row
// move down by one.
func (e *Engine) collapse(rows []int) {
	for _, r := range rows {
		e.board.CollapseRow(r)
	}
}
