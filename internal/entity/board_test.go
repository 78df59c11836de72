package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places a mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: X is placed in the center
		ok := board.Place(4, PlayerX)

		// Then: the cell should hold X
		require.True(t, ok)
		assert.Equal(t, PlayerX, board[4])
	})

	t.Run("Ignores an occupied cell", func(t *testing.T) {
		// Given: a board where cell 0 is taken by X
		board := Board{PlayerX}

		// When: O tries to take the same cell
		ok := board.Place(0, PlayerO)

		// Then: nothing should change
		assert.False(t, ok)
		assert.Equal(t, Board{PlayerX}, board)
	})

	t.Run("Ignores out of range cells", func(t *testing.T) {
		board := Board{}

		assert.False(t, board.Place(-1, PlayerX))
		assert.False(t, board.Place(9, PlayerX))
		assert.Equal(t, Board{}, board)
	})

	t.Run("Ignores non player marks", func(t *testing.T) {
		board := Board{}

		assert.False(t, board.Place(0, EmptyCell))
		assert.False(t, board.Place(0, Mark("Z")))
		assert.Equal(t, Board{}, board)
	})

	t.Run("Ignores moves once the game is won", func(t *testing.T) {
		// Given: a board X has already won
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}
		before := board

		// When: O tries to play on
		ok := board.Place(5, PlayerO)

		// Then: the board should stay untouched
		assert.False(t, ok)
		assert.Equal(t, before, board)
	})
}

func TestBoard_IsFull(t *testing.T) {
	full := Board{
		PlayerX, PlayerO, PlayerX,
		PlayerX, PlayerO, PlayerO,
		PlayerO, PlayerX, PlayerX,
	}
	assert.True(t, full.IsFull())

	partial := full
	partial[8] = EmptyCell
	assert.False(t, partial.IsFull())

	empty := Board{}
	assert.False(t, empty.IsFull())
}

func TestBoard_EmptyCells(t *testing.T) {
	board := Board{
		PlayerX, EmptyCell, PlayerO,
		EmptyCell, PlayerX, EmptyCell,
		EmptyCell, EmptyCell, PlayerO,
	}

	assert.Equal(t, []int{1, 3, 5, 6, 7}, board.EmptyCells())
}

func TestBoard_Validate(t *testing.T) {
	t.Run("Accepts a board with X one move ahead", func(t *testing.T) {
		board := Board{PlayerX, PlayerO, PlayerX}

		require.NoError(t, board.Validate())
	})

	t.Run("Rejects an unknown mark", func(t *testing.T) {
		board := Board{Mark("Z")}

		err := board.Validate()

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.Contains(t, err.Error(), "cell 0")
	})

	t.Run("Rejects O moving ahead of X", func(t *testing.T) {
		board := Board{PlayerO}

		require.ErrorIs(t, board.Validate(), apperror.ErrInvalidBoard)
	})

	t.Run("Rejects X two moves ahead", func(t *testing.T) {
		board := Board{PlayerX, PlayerX}

		require.ErrorIs(t, board.Validate(), apperror.ErrInvalidBoard)
	})
}

func TestBoard_String(t *testing.T) {
	board := Board{PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerX}

	assert.Equal(t, "X-O/-X-/---", board.String())
}
