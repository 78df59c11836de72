package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

const channelPrefix = "arcade:session:"

const (
	ActionRender    = "board:render"
	ActionStatus    = "status:show"
	ActionHighlight = "line:highlight"
	ActionScore     = "score:update"
)

// Event is one presentation update as the page receives it.
type Event struct {
	Action  string       `json:"action"`
	Payload EventPayload `json:"payload"`
}

type EventPayload struct {
	Board  *entity.Board `json:"board,omitempty"`
	Status string        `json:"status,omitempty"`
	Line   []int         `json:"line,omitempty"`
	Score  *ScoreUpdate  `json:"score,omitempty"`
}

type ScoreUpdate struct {
	Key   entity.ScoreKey `json:"key"`
	Value int             `json:"value"`
}

// Channel returns the pub/sub channel carrying the events of one session.
func Channel(sessionID string) string {
	return channelPrefix + sessionID
}

// Publisher presents a session by publishing its events to Redis.
// Publish failures are logged and dropped.
type Publisher struct {
	ctx    context.Context //nolint: containedctx // presenter methods carry no context
	logger *slog.Logger
	client *redis.Client

	channel string
}

func NewPublisher(ctx context.Context, logger *slog.Logger, client *redis.Client, sessionID string) *Publisher {
	return &Publisher{
		ctx:     ctx,
		logger:  logger.With("component", "publisher", "session", sessionID),
		client:  client,
		channel: Channel(sessionID),
	}
}

func (that *Publisher) Render(board entity.Board) {
	that.publish(Event{Action: ActionRender, Payload: EventPayload{Board: &board}})
}

func (that *Publisher) ShowStatus(text string) {
	that.publish(Event{Action: ActionStatus, Payload: EventPayload{Status: text}})
}

func (that *Publisher) HighlightLine(line []int) {
	that.publish(Event{Action: ActionHighlight, Payload: EventPayload{Line: line}})
}

func (that *Publisher) UpdateScore(key entity.ScoreKey, value int) {
	that.publish(Event{Action: ActionScore, Payload: EventPayload{Score: &ScoreUpdate{Key: key, Value: value}}})
}

func (that *Publisher) publish(event Event) {
	log := that.logger.With("method", "publish", "action", event.Action)

	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Error("could not marshal event", "error", err)
		return
	}

	if err = that.client.Publish(that.ctx, that.channel, eventJSON).Err(); err != nil {
		log.Error("failed to publish event", "error", err)
	}
}

// Subscribe listens on the session channel. The subscription is confirmed
// before returning, so no event published afterwards is missed.
func Subscribe(ctx context.Context, client *redis.Client, sessionID string) (*redis.PubSub, error) {
	pubsub := client.Subscribe(ctx, Channel(sessionID))

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to session %s: %w", sessionID, err)
	}

	return pubsub, nil
}
