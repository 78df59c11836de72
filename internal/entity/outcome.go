package entity

// WinCombos lists every line that ends the game when uniformly marked:
// rows, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome is the terminal status of a board. The zero value is an ongoing game.
type Outcome struct {
	Winner Mark  `json:"winner,omitempty"`
	Line   []int `json:"line,omitempty"`
	Draw   bool  `json:"draw"`
}

// DetermineOutcome scans the winning lines in order and reports the first
// completed one. A full board without a completed line is a draw.
func DetermineOutcome(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome{
				Winner: a,
				Line:   []int{combo[0], combo[1], combo[2]},
			}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Outcome{}
	}

	return Outcome{Draw: true}
}

func (that Outcome) Ongoing() bool {
	return that.Winner == EmptyCell && !that.Draw
}

func (that Outcome) IsFinished() bool {
	return !that.Ongoing()
}

// ScoreKey maps the outcome to the counter it increments. Ongoing games
// map to no counter.
func (that Outcome) ScoreKey() (ScoreKey, bool) {
	switch {
	case that.Winner == PlayerX:
		return ScoreX, true
	case that.Winner == PlayerO:
		return ScoreO, true
	case that.Draw:
		return ScoreDraw, true
	default:
		return "", false
	}
}
