package usecase

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/tictactoe"
)

const (
	statusThinking = "Computer is thinking..."
	statusDraw     = "It's a draw!"
)

// Presenter is the page the controller draws on. Implementations must not
// call back into the controller.
type Presenter interface {
	Render(board entity.Board)
	ShowStatus(text string)
	HighlightLine(line []int)
	UpdateScore(key entity.ScoreKey, value int)
}

type Delays struct {
	Thinking time.Duration
	Reset    time.Duration
}

// TurnController owns the round state and the session score of one page.
// Input events and timer callbacks are serialized on its mutex.
type TurnController struct {
	logger    *slog.Logger
	presenter Presenter
	scheduler Scheduler
	delays    Delays

	mu         sync.Mutex
	game       entity.Game
	score      entity.Score
	generation uint64
	closed     bool
}

func NewTurnController(logger *slog.Logger, presenter Presenter, scheduler Scheduler, delays Delays, mode entity.Mode) *TurnController {
	return &TurnController{
		logger:    logger.With("component", "turn_controller"),
		presenter: presenter,
		scheduler: scheduler,
		delays:    delays,

		game: entity.NewGame(mode),
	}
}

// Start pushes the whole current state to the presenter.
func (that *TurnController) Start() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.presenter.Render(that.game.Board)
	that.showTurn()
	that.pushScores()
}

// CellActivated applies a human move. Illegal moves change nothing and
// return the reason; callers are free to ignore it.
func (that *TurnController) CellActivated(cell int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "CellActivated", "cell", cell)

	if that.closed {
		return apperror.ErrGameFinished
	}

	next, err := tictactoe.MakeTurn(that.game, that.humanMark(), cell)
	if err != nil {
		log.Debug("move ignored", "reason", err)
		return fmt.Errorf("failed make turn: %w", err)
	}

	that.game = next
	that.presenter.Render(that.game.Board)
	that.advance()

	return nil
}

// ResetRequested starts a fresh round and keeps the score.
func (that *TurnController) ResetRequested() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	that.logger.Info("round reset requested")
	that.resetRound()
}

// ModeSelected switches mode, starts a fresh round and zeroes the score.
func (that *TurnController) ModeSelected(mode entity.Mode) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	that.logger.Info("mode selected", "mode", mode)

	that.game.Mode = mode
	that.score.Reset()
	that.resetRound()
	that.pushScores()
}

// Close invalidates pending timers. The controller ignores input afterwards.
func (that *TurnController) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true
	that.generation++
}

// Snapshot returns copies of the round state and score.
func (that *TurnController) Snapshot() (entity.Game, entity.Score) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game, that.score
}

func (that *TurnController) humanMark() entity.Mark {
	if that.game.Mode == entity.SinglePlayer {
		return entity.ComputerMark.Opponent()
	}

	return that.game.Turn
}

// advance drives the round after the board changed.
func (that *TurnController) advance() {
	switch {
	case that.game.IsRoundOver():
		that.finishRound()
	case that.game.IsComputerThinking():
		that.presenter.ShowStatus(statusThinking)
		that.schedule(that.delays.Thinking, entity.PhaseComputerThinking, that.computerTurn)
	default:
		that.showTurn()
	}
}

func (that *TurnController) computerTurn() {
	log := that.logger.With("method", "computerTurn")

	cell, ok := tictactoe.BestMove(that.game.Board, that.game.Turn)
	if !ok {
		log.Info("no move available, closing round")
		that.finishRound()
		return
	}

	next, err := tictactoe.MakeTurn(that.game, that.game.Turn, cell)
	if err != nil {
		log.Error("search produced an illegal move", "cell", cell, "error", err)
		that.finishRound()
		return
	}

	log.Debug("computer moved", "cell", cell)

	that.game = next
	that.presenter.Render(that.game.Board)
	that.advance()
}

func (that *TurnController) finishRound() {
	outcome := that.game.Outcome()
	that.game.Phase = entity.PhaseRoundOver

	if key, ok := that.score.Record(outcome); ok {
		that.presenter.UpdateScore(key, that.score.Value(key))
	}

	if outcome.Winner != entity.EmptyCell {
		that.presenter.HighlightLine(outcome.Line)
	}

	that.presenter.ShowStatus(that.outcomeStatus(outcome))

	that.logger.Info("round over", "winner", outcome.Winner, "draw", outcome.Draw, "board", that.game.Board.String())

	that.schedule(that.delays.Reset, entity.PhaseRoundOver, that.resetRound)
}

func (that *TurnController) resetRound() {
	that.generation++
	that.game = entity.NewGame(that.game.Mode)

	that.presenter.Render(that.game.Board)
	that.showTurn()
}

// schedule runs task after delay unless the round was reset, the phase moved
// on, or the controller was closed in the meantime.
func (that *TurnController) schedule(delay time.Duration, phase string, task func()) {
	generation := that.generation

	that.scheduler.AfterFunc(delay, func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		if that.closed || that.generation != generation || that.game.Phase != phase {
			that.logger.Debug("stale timer skipped", "phase", phase)
			return
		}

		task()
	})
}

func (that *TurnController) showTurn() {
	that.presenter.ShowStatus(fmt.Sprintf("Player %s's turn", that.game.Turn))
}

func (that *TurnController) pushScores() {
	for _, key := range entity.ScoreKeys {
		that.presenter.UpdateScore(key, that.score.Value(key))
	}
}

func (that *TurnController) outcomeStatus(outcome entity.Outcome) string {
	switch {
	case outcome.Draw:
		return statusDraw
	case that.game.Mode.IsComputer(outcome.Winner):
		return "Computer wins!"
	default:
		return fmt.Sprintf("Player %s wins!", outcome.Winner)
	}
}
