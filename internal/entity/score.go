package entity

type ScoreKey string

const (
	ScoreX    ScoreKey = "X"
	ScoreO    ScoreKey = "O"
	ScoreDraw ScoreKey = "draw"
)

// ScoreKeys is the display order of the counters.
var ScoreKeys = [3]ScoreKey{ScoreX, ScoreO, ScoreDraw}

// Score accumulates round results for one session. Counters only grow until
// Reset, which happens on a mode switch.
type Score struct {
	XWins int `json:"x"`
	OWins int `json:"o"`
	Draws int `json:"draw"`
}

// Record increments the counter matching outcome and returns its key.
// Ongoing outcomes change nothing.
func (that *Score) Record(outcome Outcome) (ScoreKey, bool) {
	key, ok := outcome.ScoreKey()
	if !ok {
		return "", false
	}

	switch key {
	case ScoreX:
		that.XWins++
	case ScoreO:
		that.OWins++
	case ScoreDraw:
		that.Draws++
	}

	return key, true
}

func (that *Score) Reset() {
	*that = Score{}
}

func (that Score) Value(key ScoreKey) int {
	switch key {
	case ScoreX:
		return that.XWins
	case ScoreO:
		return that.OWins
	case ScoreDraw:
		return that.Draws
	default:
		return 0
	}
}
