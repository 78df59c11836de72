package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

const (
	actionConnect = "connect"
	actionTurn    = "game:turn"
	actionReset   = "game:reset"
	actionMode    = "game:mode"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is the body of inbound messages.
type Payload struct {
	Cell *int   `json:"cell,omitempty"`
	Mode string `json:"mode,omitempty"`
}

func newConnectMessage(session entity.Session) (Message, error) {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal session: %w", err)
	}

	return Message{Action: actionConnect, Payload: sessionJSON}, nil
}

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}
