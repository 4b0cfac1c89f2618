package core

// rotate turns the active piece on a newly pressed rotate key.
// The rotated piece is shifted back inside the side walls if needed; it is
// rejected if it would reach below the floor or land on the stack. There is
// no kick table.
func (e *Engine) rotate(in Input) {
	var dir int
	switch {
	case in.JustPressed(KeyRotateCW):
		dir = 1
	case in.JustPressed(KeyRotateCCW):
		dir = -1
	default:
		return
	}

	p := e.active
	p.Rotation = rotate(p.Rotation, dir)

	// Occupied extents stand in for the bounding box: of any two adjacent
	// rotation states one fills its box's width and one fills its height.
	shape := p.Shape()
	_, bottom := shape.RowExtent()
	if p.Row+bottom >= e.board.Rows() {
		return
	}

	left, right := shape.ColumnExtent()
	switch {
	case p.Col+left < 0:
		p.Col = -left
	case p.Col+right >= e.board.Cols():
		p.Col = e.board.Cols() - 1 - right
	}

	if e.collides(p) {
		return
	}
	e.active = p
}
