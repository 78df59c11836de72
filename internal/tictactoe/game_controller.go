package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

// MakeTurn applies player's mark at cell and returns the next round state.
// A rejected move returns the input state unchanged together with the reason.
func MakeTurn(game entity.Game, player entity.Mark, cell int) (entity.Game, error) {
	if game.IsRoundOver() || game.Outcome().IsFinished() {
		return game, apperror.ErrGameFinished
	}

	if err := validateMove(game, player, cell); err != nil {
		return game, fmt.Errorf("invalid turn: %w", err)
	}

	next := game
	next.Board[cell] = player
	updateGameStatus(&next, player)

	return next, nil
}

// validateMove - checks if the move is valid.
func validateMove(game entity.Game, player entity.Mark, cell int) error {
	if cell < 0 || cell >= len(game.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if game.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - moves the round to its next phase after a move.
func updateGameStatus(game *entity.Game, player entity.Mark) {
	if game.Outcome().IsFinished() {
		// the turn stays frozen on the last mover
		game.Phase = entity.PhaseRoundOver
		return
	}

	game.Turn = player.Opponent()

	if game.Mode.IsComputer(game.Turn) {
		game.Phase = entity.PhaseComputerThinking
		return
	}

	game.Phase = entity.PhaseAwaitingInput
}
