package core

import "strings"

// Cell is a single board cell: Empty or the kind that was locked there.
type Cell uint8

// Empty is the value of an unoccupied cell.
const Empty Cell = 0

// CellOf returns the cell value used when a piece of kind k locks.
func CellOf(k Kind) Cell {
	return Cell(k)
}

// Kind returns the piece kind that filled the cell, or KindNone.
func (c Cell) Kind() Kind {
	return Kind(c)
}

// Board is the fixed-size playfield.
// Cells are stored in row-major order: index = row*cols + col. Row 0 is the top.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) index(col, row int) int {
	return row*b.cols + col
}

// InBounds reports whether (col, row) lies on the board.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

// Get returns the cell at (col, row). Out-of-bounds reads return Empty.
func (b *Board) Get(col, row int) Cell {
	if !b.InBounds(col, row) {
		return Empty
	}
	return b.cells[b.index(col, row)]
}

// Filled reports whether (col, row) is on the board and occupied.
func (b *Board) Filled(col, row int) bool {
	return b.Get(col, row) != Empty
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (b *Board) Set(col, row int, c Cell) {
	if !b.InBounds(col, row) {
		return
	}
	b.cells[b.index(col, row)] = c
}

// RowFull reports whether every cell in the row is occupied.
func (b *Board) RowFull(row int) bool {
	if row < 0 || row >= b.rows {
		return false
	}
	for _, c := range b.cells[row*b.cols : (row+1)*b.cols] {
		if c == Empty {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for r := 0; r < b.rows; r++ {
		if b.RowFull(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

// ClearRow empties every cell of a row without moving anything.
func (b *Board) ClearRow(row int) {
	if row < 0 || row >= b.rows {
		return
	}
	clear(b.cells[row*b.cols : (row+1)*b.cols])
}

// CollapseRow removes a row: every row above it moves down by one and
// row 0 is refilled with empty cells.
func (b *Board) CollapseRow(row int) {
	if row < 0 || row >= b.rows {
		return
	}
	copy(b.cells[b.cols:(row+1)*b.cols], b.cells[:row*b.cols])
	clear(b.cells[:b.cols])
}

// Reset empties the whole board.
func (b *Board) Reset() {
	clear(b.cells)
}

// Cells returns a copy of all cells in row-major order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{rows: b.rows, cols: b.cols, cells: b.Cells()}
}

// String renders the board as text, one line per row.
// Empty cells are '.', filled cells show their kind letter.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			cell := b.Get(c, r)
			if cell == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(cell.Kind().String())
		}
	}
	return sb.String()
}
