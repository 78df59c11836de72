package entity

// Session identifies one connected page and the round it is playing.
type Session struct {
	ID    string `json:"id"`
	Mode  Mode   `json:"mode"`
	Game  *Game  `json:"game,omitempty"`
	Score *Score `json:"score,omitempty"`
}
