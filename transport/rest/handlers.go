package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/tictactoe"
)

const (
	statusOngoing  = "ongoing"
	statusFinished = "finished"
)

var ErrInvalidSide = errors.New("side must be X or O")

type bestMoveRequest struct {
	Board entity.Board `json:"board"`
	Side  entity.Mark  `json:"side,omitempty"`
}

type bestMoveResponse struct {
	Cell int         `json:"cell"`
	Side entity.Mark `json:"side"`
}

type outcomeRequest struct {
	Board entity.Board `json:"board"`
}

type outcomeResponse struct {
	entity.Outcome
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type sessionReader interface {
	GetByID(ctx context.Context, id string) (*entity.Session, error)
}

type handlers struct {
	logger   *slog.Logger
	sessions sessionReader
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

// bestMove answers which cell the engine would take for the given side.
// Without an explicit side the side to move is derived from the mark counts.
func (that *handlers) bestMove(w http.ResponseWriter, r *http.Request) {
	var req bestMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to decode request: %w", err))
		return
	}

	if err := req.Board.Validate(); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	side := req.Side
	if side == entity.EmptyCell {
		side = sideToMove(req.Board)
	}

	if !side.IsPlayer() {
		that.writeError(w, http.StatusBadRequest, ErrInvalidSide)
		return
	}

	cell, ok := tictactoe.BestMove(req.Board, side)
	if !ok {
		that.writeError(w, http.StatusConflict, apperror.ErrNoAvailableMoves)
		return
	}

	that.logger.Debug("best move computed", "board", req.Board.String(), "side", side, "cell", cell)

	that.writeJSON(w, http.StatusOK, bestMoveResponse{Cell: cell, Side: side})
}

func (that *handlers) outcome(w http.ResponseWriter, r *http.Request) {
	var req outcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to decode request: %w", err))
		return
	}

	if err := req.Board.Validate(); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	outcome := entity.DetermineOutcome(req.Board)

	resp := outcomeResponse{Outcome: outcome, Status: statusOngoing}
	if outcome.IsFinished() {
		resp.Status = statusFinished
	}

	that.writeJSON(w, http.StatusOK, resp)
}

// session reports the latest snapshot of a connected page.
func (that *handlers) session(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := that.sessions.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		that.writeError(w, http.StatusNotFound, err)
		return
	}

	if err != nil {
		that.logger.Error("failed to get session", "session", id, "error", err)
		that.writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

// X always opens, so equal counts mean X is to move.
func sideToMove(board entity.Board) entity.Mark {
	if board.Count(entity.PlayerX) == board.Count(entity.PlayerO) {
		return entity.PlayerX
	}

	return entity.PlayerO
}

func (that *handlers) writeError(w http.ResponseWriter, status int, err error) {
	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
