package http

import (
	"time"

	"quoridor/internal/game"
	"quoridor/internal/room"
)

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status      string `json:"status"`
	Rooms       int    `json:"rooms"`
	Connections int    `json:"connections"`
}

// RoomResponse is a read-only view of one room.
type RoomResponse struct {
	Code         string             `json:"code"`
	CreatedAt    time.Time          `json:"createdAt"`
	Participants []room.Participant `json:"participants"`
	GameState    game.MatchState    `json:"gameState"`
}

// MovesResponse lists where a player's token may go next.
type MovesResponse struct {
	Player    game.PlayerID   `json:"player"`
	From      game.Position   `json:"from"`
	Targets   []game.Position `json:"targets"`
	GoalRow   int             `json:"goalRow"`
	Distance  int             `json:"distance"`
	Reachable bool            `json:"reachable"`
	YourTurn  bool            `json:"yourTurn"`
}

// RulesResponse describes the rules every new match starts with.
type RulesResponse struct {
	GridSize       int                      `json:"gridSize"`
	WallsPerPlayer int                      `json:"wallsPerPlayer"`
	Colors         map[game.PlayerID]string `json:"colors"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
