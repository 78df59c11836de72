package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	arcaderedis "github.com/rocketscienceinc/tictactoe-arcade/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/usecase"
)

const (
	readBufferSize  = 1024
	writeBufferSize = 1024
	writeWait       = 10 * time.Second
)

type turnController interface {
	CellActivated(cell int) error
	ResetRequested()
	ModeSelected(mode entity.Mode)
}

type sessionStore interface {
	Save(ctx context.Context, session *entity.Session) error
	DeleteByID(ctx context.Context, id string) error
}

// Server hosts one game session per WebSocket connection. Inbound messages
// drive the session's TurnController; its presentation events travel
// through Redis and are written back to the same connection.
type Server struct {
	logger   *slog.Logger
	client   *redis.Client
	sessions sessionStore

	delays usecase.Delays
	mode   entity.Mode

	upgrader websocket.Upgrader
	handlers map[string]func(controller turnController, msg *Message) error
}

func New(logger *slog.Logger, client *redis.Client, sessions sessionStore, delays usecase.Delays, mode entity.Mode) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		client:   client,
		sessions: sessions,
		delays:   delays,
		mode:     mode,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  readBufferSize,
			WriteBufferSize: writeBufferSize,
			// the host page is served from another port
			CheckOrigin: func(*http.Request) bool { return true },
		},
		handlers: make(map[string]func(turnController, *Message) error),
	}

	server.handlers[actionTurn] = server.handleGameTurn
	server.handlers[actionReset] = server.handleGameReset
	server.handlers[actionMode] = server.handleGameMode

	return server
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.handleConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// handleConnection - upgrades the request and runs a session until the
// client goes away.
func (that *Server) handleConnection(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "handleConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-connCtx.Done()
		_ = conn.Close()
	}()

	session := entity.Session{ID: uuid.NewString(), Mode: that.mode}
	log = log.With("session", session.ID)

	pubsub, err := arcaderedis.Subscribe(connCtx, that.client, session.ID)
	if err != nil {
		log.Error("failed to subscribe to session events", "error", err)
		return
	}
	defer func() { _ = pubsub.Close() }()

	connectMsg, err := newConnectMessage(session)
	if err != nil {
		log.Error("failed to build connect message", "error", err)
		return
	}

	if err = that.writeJSON(conn, connectMsg); err != nil {
		log.Error("failed to send connect message", "error", err)
		return
	}

	publisher := arcaderedis.NewPublisher(connCtx, that.logger, that.client, session.ID)
	controller := usecase.NewTurnController(that.logger.With("session", session.ID), publisher, usecase.NewTimerScheduler(), that.delays, session.Mode)

	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		that.forwardEvents(conn, pubsub.Channel(), log, func() {
			that.saveSnapshot(connCtx, session.ID, controller, log)
		})
	}()

	controller.Start()

	log.Info("WebSocket connection established")

	that.handleMessages(conn, controller, log)

	controller.Close()
	_ = conn.Close()
	_ = pubsub.Close()
	<-forwarded

	that.dropSnapshot(connCtx, session.ID, log)

	log.Info("WebSocket connection closed")
}

// forwardEvents is the only writer of conn once the session runs.
func (that *Server) forwardEvents(conn *websocket.Conn, events <-chan *redis.Message, log *slog.Logger, afterEvent func()) {
	for event := range events {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

		if err := conn.WriteMessage(websocket.TextMessage, []byte(event.Payload)); err != nil {
			log.Error("failed to forward event", "error", err)
			return
		}

		afterEvent()
	}
}

func (that *Server) saveSnapshot(ctx context.Context, id string, controller *usecase.TurnController, log *slog.Logger) {
	game, score := controller.Snapshot()

	session := &entity.Session{ID: id, Mode: game.Mode, Game: &game, Score: &score}
	if err := that.sessions.Save(ctx, session); err != nil {
		log.Error("failed to save session snapshot", "error", err)
	}
}

// dropSnapshot runs after the connection ended, possibly because ctx was
// canceled, so it gets its own deadline.
func (that *Server) dropSnapshot(ctx context.Context, id string, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeWait)
	defer cancel()

	if err := that.sessions.DeleteByID(ctx, id); err != nil {
		log.Error("failed to delete session snapshot", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(conn *websocket.Conn, controller turnController, log *slog.Logger) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		if err = that.processMessage(controller, data); err != nil {
			log.Error("error processing message", "error", err)
		}
	}
}

func (that *Server) writeJSON(conn *websocket.Conn, msg Message) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
