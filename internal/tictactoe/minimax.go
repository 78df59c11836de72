package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

// Leaf scores are seen from O, the maximizing side. They do not depend on
// depth, so a quick win and a slow win are worth the same.
const (
	scoreWin  = 10
	scoreLoss = -10
	scoreDraw = 0
)

// BestMove returns the optimal cell for side using a full-depth minimax
// search. O maximizes, X minimizes, and ties go to the lowest cell index.
// It returns false when the board is full or already decided.
func BestMove(board entity.Board, side entity.Mark) (int, bool) {
	if !side.IsPlayer() || !entity.DetermineOutcome(board).Ongoing() {
		return -1, false
	}

	_, cell := minimax(&board, side)
	if cell < 0 {
		return -1, false
	}

	return cell, true
}

// minimax evaluates board with side to move. Every hypothetical placement is
// undone before the next branch, so board is unchanged on return.
func minimax(board *entity.Board, side entity.Mark) (int, int) {
	outcome := entity.DetermineOutcome(*board)
	switch {
	case outcome.Winner == entity.PlayerO:
		return scoreWin, -1
	case outcome.Winner == entity.PlayerX:
		return scoreLoss, -1
	case outcome.Draw:
		return scoreDraw, -1
	}

	maximizing := side == entity.PlayerO
	bestCell := -1
	bestScore := 0

	for cell, mark := range board {
		if mark != entity.EmptyCell {
			continue
		}

		board[cell] = side
		score, _ := minimax(board, side.Opponent())
		board[cell] = entity.EmptyCell

		if bestCell < 0 ||
			(maximizing && score > bestScore) ||
			(!maximizing && score < bestScore) {
			bestCell = cell
			bestScore = score
		}
	}

	if bestCell < 0 {
		return scoreDraw, -1
	}

	return bestScore, bestCell
}
