package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardBounds(t *testing.T) {
	b := NewBoard(5, 4)
	require.Equal(t, 5, b.Rows())
	require.Equal(t, 4, b.Cols())

	b.Set(-1, 0, CellOf(KindI))
	b.Set(4, 0, CellOf(KindI))
	b.Set(0, 5, CellOf(KindI))
	assert.Equal(t, make([]Cell, 20), b.Cells())

	assert.Equal(t, Empty, b.Get(-1, -1))
	assert.False(t, b.Filled(10, 10))
	assert.False(t, b.RowFull(-1))
}

func TestBoardFullRowsAndCollapse(t *testing.T) {
	b := NewBoard(5, 4)
	fillRow(b, 4)
	fillRow(b, 2)
	b.Set(1, 3, CellOf(KindT))
	b.Set(0, 1, CellOf(KindO))

	assert.Equal(t, []int{2, 4}, b.FullRows())

	b.CollapseRow(2)
	b.CollapseRow(4)

	assert.Equal(t, "....\n....\n....\nO...\n.T..", b.String())
}

func TestBoardClearRowLeavesOthers(t *testing.T) {
	b := NewBoard(4, 4)
	fillRow(b, 3)
	b.Set(2, 2, CellOf(KindL))

	b.ClearRow(3)

	assert.False(t, b.RowFull(3))
	assert.Equal(t, KindL, b.Get(2, 2).Kind())
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(4, 4)
	c := b.Clone()
	c.Set(0, 0, CellOf(KindJ))

	assert.False(t, b.Filled(0, 0))
	assert.True(t, c.Filled(0, 0))

	b.Set(1, 1, CellOf(KindS))
	b.Reset()
	assert.False(t, b.Filled(1, 1))
}
