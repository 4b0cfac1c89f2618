// Package core provides the gameplay engine for the Blockfall falling-block game.
// This package is UI-agnostic and deterministic: it reads an input snapshot and
// an elapsed-time delta, and never touches the terminal, clock, or disk.
package core

import "fmt"

// Kind identifies one of the seven tetromino shapes.
// The zero value KindNone marks an empty hold slot.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// NumKinds is the number of playable piece kinds.
const NumKinds = 7

// Kinds returns all playable kinds in canonical order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

// Valid reports whether k is a playable kind.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindL
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindNone:
		return "-"
	default:
		return "?"
	}
}

// ParseKind converts a letter ("I", "t", ...) to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "I", "i":
		return KindI, true
	case "O", "o":
		return KindO, true
	case "T", "t":
		return KindT, true
	case "S", "s":
		return KindS, true
	case "Z", "z":
		return KindZ, true
	case "J", "j":
		return KindJ, true
	case "L", "l":
		return KindL, true
	default:
		return KindNone, false
	}
}

// Point is a (column, row) offset inside a shape's bounding box.
type Point struct {
	Col, Row int
}

// Shape is one rotation state of a kind: a square occupancy matrix.
type Shape struct {
	size  int
	cells []Point
}

// Size returns the side length of the bounding box.
func (s Shape) Size() int {
	return s.size
}

// Cells returns the occupied offsets in row-major order.
// The returned slice is shared; callers must not modify it.
func (s Shape) Cells() []Point {
	return s.cells
}

// Filled reports whether the offset (col, row) is occupied.
func (s Shape) Filled(col, row int) bool {
	for _, c := range s.cells {
		if c.Col == col && c.Row == row {
			return true
		}
	}
	return false
}

// ColumnExtent returns the leftmost and rightmost occupied columns.
func (s Shape) ColumnExtent() (lo, hi int) {
	lo, hi = s.size, -1
	for _, c := range s.cells {
		lo = min(lo, c.Col)
		hi = max(hi, c.Col)
	}
	return lo, hi
}

// RowExtent returns the topmost and bottommost occupied rows.
func (s Shape) RowExtent() (lo, hi int) {
	lo, hi = s.size, -1
	for _, c := range s.cells {
		lo = min(lo, c.Row)
		hi = max(hi, c.Row)
	}
	return lo, hi
}

// shapePatterns lists the four clockwise rotation states of every kind.
// '#' marks an occupied cell.
var shapePatterns = map[Kind][4][]string{
	KindI: {
		{"....", "####", "....", "...."},
		{"..#.", "..#.", "..#.", "..#."},
		{"....", "....", "####", "...."},
		{".#..", ".#..", ".#..", ".#.."},
	},
	KindO: {
		{"##", "##"},
		{"##", "##"},
		{"##", "##"},
		{"##", "##"},
	},
	KindT: {
		{".#.", "###", "..."},
		{".#.", ".##", ".#."},
		{"...", "###", ".#."},
		{".#.", "##.", ".#."},
	},
	KindS: {
		{".##", "##.", "..."},
		{".#.", ".##", "..#"},
		{"...", ".##", "##."},
		{"#..", "##.", ".#."},
	},
	KindZ: {
		{"##.", ".##", "..."},
		{"..#", ".##", ".#."},
		{"...", "##.", ".##"},
		{".#.", "##.", "#.."},
	},
	KindJ: {
		{"#..", "###", "..."},
		{".##", ".#.", ".#."},
		{"...", "###", "..#"},
		{".#.", ".#.", "##."},
	},
	KindL: {
		{"..#", "###", "..."},
		{".#.", ".#.", ".##"},
		{"...", "###", "#.."},
		{"##.", ".#.", ".#."},
	},
}

// shapes is the precomputed rotation table, indexed by kind then rotation.
var shapes = buildShapes()

func buildShapes() [NumKinds + 1][4]Shape {
	var table [NumKinds + 1][4]Shape
	for kind, rotations := range shapePatterns {
		for rot, rows := range rotations {
			s := Shape{size: len(rows)}
			for r, line := range rows {
				if len(line) != s.size {
					panic(fmt.Sprintf("core: shape %v rotation %d is not square", kind, rot))
				}
				for c, ch := range line {
					if ch == '#' {
						s.cells = append(s.cells, Point{Col: c, Row: r})
					}
				}
			}
			table[kind][rot] = s
		}
	}
	return table
}

// ShapeOf returns the occupancy of kind at the given rotation.
// Rotation and kind are always engine-controlled, so an out-of-range value is a
// programming error and panics.
func ShapeOf(kind Kind, rotation int) Shape {
	if !kind.Valid() {
		panic(fmt.Sprintf("core: unknown piece kind %d", kind))
	}
	if rotation < 0 || rotation > 3 {
		panic(fmt.Sprintf("core: rotation %d out of range", rotation))
	}
	return shapes[kind][rotation]
}

// Piece is a kind placed on the board at a rotation.
// (Col, Row) is the top-left corner of the bounding box.
type Piece struct {
	Kind     Kind
	Rotation int
	Col      int
	Row      int
}

// Shape returns the occupancy for the piece's current rotation.
func (p Piece) Shape() Shape {
	return ShapeOf(p.Kind, p.Rotation)
}

// Cells returns the absolute board positions occupied by the piece.
func (p Piece) Cells() []Point {
	shape := p.Shape()
	out := make([]Point, 0, len(shape.cells))
	for _, c := range shape.cells {
		out = append(out, Point{Col: p.Col + c.Col, Row: p.Row + c.Row})
	}
	return out
}

// rotate returns the rotation index one step clockwise (dir=1) or
// counter-clockwise (dir=-1).
func rotate(rotation, dir int) int {
	return ((rotation+dir)%4 + 4) % 4
}
