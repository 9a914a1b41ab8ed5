package ws

import (
	"quoridor/internal/game"
	"quoridor/internal/room"
)

// RoomManager is the part of the room registry the gateway drives.
type RoomManager interface {
	Join(code, participantID, name string, asHost bool) (room.JoinResult, error)
	Leave(code, participantID string) bool
	LeaveAll(participantID string) []string
	Dispatch(code, participantID string, act room.Action) (game.MatchState, bool, error)
}
