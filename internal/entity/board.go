package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
)

// Mark is the symbol a player leaves in a cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// BoardSize is the number of cells on the 3x3 grid.
const BoardSize = 9

// Opponent returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// IsPlayer reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board is the 3x3 grid in row-major order, cells addressed 0..8.
type Board [BoardSize]Mark

// Place puts mark into cell. It is a no-op returning false when the cell is
// out of range or occupied, the mark is not a player mark, or the board
// already holds a terminal position.
func (that *Board) Place(cell int, mark Mark) bool {
	if cell < 0 || cell >= len(that) {
		return false
	}

	if !mark.IsPlayer() || that[cell] != EmptyCell {
		return false
	}

	if !DetermineOutcome(*that).Ongoing() {
		return false
	}

	that[cell] = mark

	return true
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells returns the free cell indexes in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// Validate checks that every cell holds a known mark and that the mark
// counts could come from alternating play with X moving first.
func (that *Board) Validate() error {
	for i, cell := range that {
		if cell != EmptyCell && !cell.IsPlayer() {
			return fmt.Errorf("%w: unknown mark %q at cell %d", apperror.ErrInvalidBoard, cell, i)
		}
	}

	diff := that.Count(PlayerX) - that.Count(PlayerO)
	if diff < 0 || diff > 1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", apperror.ErrInvalidBoard, that.Count(PlayerX), that.Count(PlayerO))
	}

	return nil
}

// String renders the board as three rows, "-" for empty cells.
func (that *Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('/')
		}

		if cell == EmptyCell {
			sb.WriteByte('-')
			continue
		}

		sb.WriteString(string(cell))
	}

	return sb.String()
}
