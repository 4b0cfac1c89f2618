package core

// collides reports whether any occupied cell of p lies outside the board or
// on a filled cell.
func (e *Engine) collides(p Piece) bool {
	for _, c := range p.Cells() {
		if !e.board.InBounds(c.Col, c.Row) || e.board.Filled(c.Col, c.Row) {
			return true
		}
	}
	return false
}

// overlaps reports whether p cannot be placed where it is. Used for spawn and
// hold validation.
func (e *Engine) overlaps(p Piece) bool {
	return e.collides(p)
}

// collidesHorizontal reports whether shifting the active piece by dx columns
// would leave the board or hit the stack.
func (e *Engine) collidesHorizontal(dx int) bool {
	p := e.active
	p.Col += dx
	return e.collides(p)
}

// collidesVertical reports whether the active piece placed at row would reach
// past the floor or hit the stack.
func (e *Engine) collidesVertical(row int) bool {
	p := e.active
	p.Row = row
	return e.collides(p)
}

// dropRow returns the row where the active piece comes to rest when moved
// straight down from its current row.
func (e *Engine) dropRow() int {
	row := e.active.Row
	for !e.collidesVertical(row + 1) {
		row++
	}
	return row
}

// lock merges the active piece into the board and spawns the next one, so
// the top-out check sees the stack before full rows are removed. With a clear
// delay the spawn waits until the end of the update, or until the pause ends
// if rows were cleared.
func (e *Engine) lock() {
	cell := CellOf(e.active.Kind)
	for _, c := range e.active.Cells() {
		e.board.Set(c.Col, c.Row, cell)
	}
	e.emit(Event{Kind: EventLock, Piece: e.active.Kind})

	if e.cfg.ClearDelay > 0 {
		e.locked = true
		return
	}
	e.spawn()
}

func (e *Engine) hardDrop(in Input) {
	if !in.JustPressed(KeyHardDrop) {
		return
	}
	distance := e.ghostRow - e.active.Row
	e.active.Row = e.ghostRow
	e.emit(Event{Kind: EventHardDrop, Piece: e.active.Kind, Distance: distance})
	e.lock()
}

// moveHorizontal applies left/right shifting with auto-repeat. A newly
// pressed direction moves at once; a held one repeats every AutoShiftDelay.
// Left wins when both are down.
func (e *Engine) moveHorizontal(delta float64, in Input) {
	if in.JustPressed(KeyMoveLeft) {
		e.firstLeft = true
	}
	if in.JustPressed(KeyMoveRight) {
		e.firstRight = true
	}

	switch {
	case in.IsDown(KeyMoveLeft):
		e.leftTimer += delta
		if e.firstLeft || e.leftTimer > e.cfg.AutoShiftDelay {
			e.firstLeft = false
			e.shift(-1)
			e.leftTimer = 0
		}
	case in.IsDown(KeyMoveRight):
		e.rightTimer += delta
		if e.firstRight || e.rightTimer > e.cfg.AutoShiftDelay {
			e.firstRight = false
			e.shift(1)
			e.rightTimer = 0
		}
	}

	if !in.IsDown(KeyMoveLeft) {
		e.firstLeft = false
		e.leftTimer = 0
	}
	if !in.IsDown(KeyMoveRight) {
		e.firstRight = false
		e.rightTimer = 0
	}
}

func (e *Engine) shift(dx int) {
	if e.collidesHorizontal(dx) {
		return
	}
	e.active.Col += dx
}

// moveVertical applies gravity and soft drop. When the piece cannot move
// down it locks in place.
func (e *Engine) moveVertical(delta float64, in Input) {
	e.fallTimer += delta

	soft := in.IsDown(KeySoftDrop) && e.fallTimer >= e.cfg.SoftDropInterval
	if e.fallTimer < e.fallInterval && !soft {
		return
	}
	e.fallTimer = 0

	if !e.collidesVertical(e.active.Row + 1) {
		e.active.Row++
		return
	}
	e.lock()
}
