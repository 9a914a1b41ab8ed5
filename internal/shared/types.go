package shared

import (
	"encoding/json"

	"quoridor/internal/game"
)

// Event names on the websocket.
const (
	EventJoinGame        = "joinGame"
	EventGameJoined      = "gameJoined"
	EventPlayerJoined    = "playerJoined"
	EventGameError       = "gameError"
	EventGameAction      = "gameAction"
	EventGameStateUpdate = "gameStateUpdate"
	EventGameWin         = "gameWin"
	EventGameOver        = "gameOver"
	EventResetGame       = "resetGame"
	EventLeaveGame       = "leaveGame"
	EventPlayerLeft      = "playerLeft"
	EventActionRejected  = "actionRejected"
)

// gameAction sub-actions.
const (
	ActionMovePlayer        = "movePlayer"
	ActionPlaceWall         = "placeWall"
	ActionSetSelectedAction = "setSelectedAction"
)

const (
	StatusWaiting = "waiting"
	StatusPlaying = "playing"
)

// Inbound is the client envelope; Data is decoded once the event is known.
type Inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type Outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type JoinGameRequest struct {
	RoomID     string `json:"roomId" validate:"required,max=64,printascii"`
	PlayerName string `json:"playerName" validate:"required,max=32"`
	IsHost     bool   `json:"isHost"`
}

type GameActionRequest struct {
	RoomID string          `json:"roomId" validate:"required"`
	Action string          `json:"action" validate:"required,oneof=movePlayer placeWall setSelectedAction"`
	Data   json.RawMessage `json:"data"`
}

type MovePlayerData struct {
	PlayerID game.PlayerID  `json:"playerId" validate:"omitempty,oneof=player1 player2"`
	Position *game.Position `json:"position" validate:"required"`
}

type PlaceWallData struct {
	X           *int             `json:"x" validate:"required"`
	Y           *int             `json:"y" validate:"required"`
	Orientation game.Orientation `json:"orientation" validate:"required,oneof=horizontal vertical"`
}

type SetSelectedActionData struct {
	SelectedAction game.Action `json:"selectedAction" validate:"required,oneof=move wall"`
}

type GameWinRequest struct {
	RoomID string        `json:"roomId" validate:"required"`
	Winner game.PlayerID `json:"winner" validate:"required,oneof=player1 player2"`
}

// RoomRequest carries resetGame and leaveGame.
type RoomRequest struct {
	RoomID string `json:"roomId" validate:"required"`
}

type GameJoined struct {
	Status    string           `json:"status"`
	Seat      game.PlayerID    `json:"seat"`
	Opponent  string           `json:"opponent,omitempty"`
	GameState *game.MatchState `json:"gameState,omitempty"`
}

type PlayerJoined struct {
	PlayerName string `json:"playerName"`
}

type GameError struct {
	Message string `json:"message"`
}

type GameOver struct {
	Winner game.PlayerID `json:"winner"`
}

type ActionRejected struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}
