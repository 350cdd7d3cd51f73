package websocket

import (
	"encoding/json"

	"github.com/seaportlabs/harborlord-backend/internal/engine"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
)

// Message is the envelope for every client request: an action name from the
// handler table and an action-specific payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries request parameters; only the fields relevant to the action
// are read.
type Payload struct {
	GameID   string `json:"game_id,omitempty"`
	Name     string `json:"name,omitempty"`
	PlayerID int    `json:"player_id,omitempty"`
	Amount   int    `json:"amount,omitempty"`
	Index    int    `json:"index,omitempty"`
	SpacePos int    `json:"space_pos,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Option   string `json:"option,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// Response mirrors every request: the full game state for display refresh,
// the operation's result description, or a recoverable error.
type Response struct {
	Action string         `json:"action"`
	Game   *entity.Game   `json:"game,omitempty"`
	Result *engine.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}
