package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
)

const (
	PhaseAwaitingInput    = "awaiting_input"
	PhaseComputerThinking = "computer_thinking"
	PhaseRoundOver        = "round_over"
)

type Mode string

const (
	SinglePlayer Mode = "single"
	TwoPlayer    Mode = "two"
)

// ComputerMark is the side driven by the search engine in single-player mode.
const ComputerMark = PlayerO

func ParseMode(value string) (Mode, error) {
	switch mode := Mode(value); mode {
	case SinglePlayer, TwoPlayer:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

// IsComputer reports whether mark is played by the search engine in this mode.
func (that Mode) IsComputer(mark Mark) bool {
	return that == SinglePlayer && mark == ComputerMark
}

// Game is the state of the current round. The outcome is always derived
// from Board and never stored next to it.
type Game struct {
	Board Board  `json:"board"`
	Turn  Mark   `json:"player_turn"`
	Phase string `json:"phase"`
	Mode  Mode   `json:"mode"`
}

func NewGame(mode Mode) Game {
	return Game{
		Board: Board{},
		Turn:  PlayerX,
		Phase: PhaseAwaitingInput,
		Mode:  mode,
	}
}

func (that Game) Outcome() Outcome {
	return DetermineOutcome(that.Board)
}

func (that Game) IsAwaitingInput() bool {
	return that.Phase == PhaseAwaitingInput
}

func (that Game) IsComputerThinking() bool {
	return that.Phase == PhaseComputerThinking
}

func (that Game) IsRoundOver() bool {
	return that.Phase == PhaseRoundOver
}
