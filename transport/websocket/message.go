package websocket

import (
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

const actionMove = "game:move"

// Message is one frame of the effect feed.
type Message struct {
	Action  string             `json:"action"`
	Payload *entity.MoveResult `json:"payload,omitempty"`
}
