package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the game endpoints. Only the sessions route touches
// shared state.
func NewRouter(logger *slog.Logger, sessions sessionReader) http.Handler {
	h := &handlers{logger: logger.With("component", "rest"), sessions: sessions}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ping", h.ping)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/best-move", h.bestMove)
		r.Post("/outcome", h.outcome)
		r.Get("/sessions/{id}", h.session)
	})

	return r
}

// Start - starts HTTP server and stops it when ctx is done.
func Start(ctx context.Context, logger *slog.Logger, sessions sessionReader, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(logger, sessions),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
