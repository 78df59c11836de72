package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new two-player round
		game := entity.NewGame(entity.TwoPlayer)

		// When: player X makes a turn
		next, err := MakeTurn(game, entity.PlayerX, 0)
		require.NoError(t, err)

		// Then: the round state should reflect the turn and the queue change
		expectedGame := entity.Game{
			Board: entity.Board{entity.PlayerX},
			Turn:  entity.PlayerO,
			Phase: entity.PhaseAwaitingInput,
			Mode:  entity.TwoPlayer,
		}
		require.Equal(t, expectedGame, next)

		// Then: the input state is not mutated
		require.Equal(t, entity.NewGame(entity.TwoPlayer), game)
	})

	t.Run("Hands the turn to the computer in single-player mode", func(t *testing.T) {
		game := entity.NewGame(entity.SinglePlayer)

		next, err := MakeTurn(game, entity.PlayerX, 4)
		require.NoError(t, err)

		assert.Equal(t, entity.PlayerO, next.Turn)
		assert.Equal(t, entity.PhaseComputerThinking, next.Phase)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: player X took cell 0
		game, err := MakeTurn(entity.NewGame(entity.TwoPlayer), entity.PlayerX, 0)
		require.NoError(t, err)

		// When: player O tries to make a move to the same square
		next, err := MakeTurn(game, entity.PlayerO, 0)

		// Then: ErrCellOccupied is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, game, next)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new round
		game := entity.NewGame(entity.TwoPlayer)

		// When: player O tries to make a move when it is player X's turn
		next, err := MakeTurn(game, entity.PlayerO, 1)

		// Then: ErrNotYourTurn is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, game, next)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		game := entity.NewGame(entity.TwoPlayer)

		_, err := MakeTurn(game, entity.PlayerX, 20)

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		game := entity.NewGame(entity.TwoPlayer)

		_, err := MakeTurn(game, entity.PlayerX, -1)

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Winning move ends the round", func(t *testing.T) {
		// Given: X to move on [X,X,_, O,O,_, _,_,_]
		game := entity.Game{
			Board: entity.Board{
				entity.PlayerX, entity.PlayerX, entity.EmptyCell,
				entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			},
			Turn:  entity.PlayerX,
			Phase: entity.PhaseAwaitingInput,
			Mode:  entity.SinglePlayer,
		}

		// When: X completes the top row
		next, err := MakeTurn(game, entity.PlayerX, 2)
		require.NoError(t, err)

		// Then: the round is over, X wins on 0-1-2 and the turn is frozen
		assert.Equal(t, entity.PhaseRoundOver, next.Phase)
		assert.Equal(t, entity.PlayerX, next.Turn)
		assert.Equal(t, entity.PlayerX, next.Outcome().Winner)
		assert.Equal(t, []int{0, 1, 2}, next.Outcome().Line)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a round player X has already won
		game := entity.Game{
			Board: entity.Board{
				entity.PlayerX, entity.PlayerX, entity.PlayerX,
				"", entity.PlayerO, "",
				"", entity.PlayerO, "",
			},
			Turn:  entity.PlayerO,
			Phase: entity.PhaseRoundOver,
			Mode:  entity.TwoPlayer,
		}

		// When: player O tries to make a move after the game is over
		next, err := MakeTurn(game, entity.PlayerO, 3)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, game, next)
	})

	t.Run("Move After Tie", func(t *testing.T) {
		game := entity.Game{
			Board: entity.Board{
				entity.PlayerO, entity.PlayerX, entity.PlayerO,
				entity.PlayerO, entity.PlayerX, entity.PlayerX,
				entity.PlayerX, entity.PlayerO, entity.PlayerO,
			},
			Turn:  entity.PlayerX,
			Phase: entity.PhaseAwaitingInput,
			Mode:  entity.TwoPlayer,
		}

		_, err := MakeTurn(game, entity.PlayerX, 3)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Nine moves without a line end in a draw", func(t *testing.T) {
		game := entity.NewGame(entity.TwoPlayer)
		mark := entity.PlayerX

		var err error
		for _, cell := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
			game, err = MakeTurn(game, mark, cell)
			require.NoError(t, err)
			mark = mark.Opponent()
		}

		assert.True(t, game.IsRoundOver())
		assert.True(t, game.Outcome().Draw)
	})
}
