package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrCellRequired  = errors.New("cell is required")
)

func (that *Server) processMessage(controller turnController, data []byte) error {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, message.Action)
	}

	if err := handler(controller, &message); err != nil {
		return fmt.Errorf("%s: %w", message.Action, err)
	}

	return nil
}

// handleGameTurn forwards a cell click. Illegal moves are dropped here.
func (that *Server) handleGameTurn(controller turnController, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.Cell == nil {
		return ErrCellRequired
	}

	if err = controller.CellActivated(*payload.Cell); err != nil {
		that.logger.Debug("move ignored", "cell", *payload.Cell, "reason", err)
	}

	return nil
}

func (that *Server) handleGameReset(controller turnController, _ *Message) error {
	controller.ResetRequested()
	return nil
}

func (that *Server) handleGameMode(controller turnController, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	mode, err := entity.ParseMode(payload.Mode)
	if err != nil {
		return fmt.Errorf("failed to select mode: %w", err)
	}

	controller.ModeSelected(mode)

	return nil
}
