package game

import (
	"encoding/json"
	"fmt"
)

type PlayerID string

const (
	Player1 PlayerID = "player1"
	Player2 PlayerID = "player2"
)

// Opponent returns the other seat.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

type Phase string

const (
	PhaseInProgress Phase = "playing"
	PhaseFinished   Phase = "finished"
)

// Action is the UI mode of the player to move. It is synchronized but never
// consulted by the rules.
type Action string

const (
	ActionMove Action = "move"
	ActionWall Action = "wall"
)

func (a Action) Valid() bool {
	return a == ActionMove || a == ActionWall
}

// Position is a (row, col) cell, encoded as a two element array on the wire.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func (p Position) InBounds(gridSize int) bool {
	return p.Row >= 0 && p.Row < gridSize && p.Col >= 0 && p.Col < gridSize
}

func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Col})
}

func (p *Position) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var rc []int
	if err := json.Unmarshal(b, &rc); err != nil {
		return fmt.Errorf("position must be [row, col]: %w", err)
	}
	if len(rc) != 2 {
		return fmt.Errorf("position must be [row, col]: got %d elements", len(rc))
	}
	p.Row, p.Col = rc[0], rc[1]
	return nil
}

type Player struct {
	ID       PlayerID `json:"id"`
	Position Position `json:"position"`
	Color    string   `json:"color"`
}

// Players is keyed by seat; both seats are always present in a live match.
type Players map[PlayerID]Player

type Wall struct {
	X           int         `json:"x"`
	Y           int         `json:"y"`
	Orientation Orientation `json:"orientation"`
	Color       string      `json:"color"`
}

// sameSlot reports whether two walls occupy the identical (x, y, orientation).
func (w Wall) sameSlot(o Wall) bool {
	return w.X == o.X && w.Y == o.Y && w.Orientation == o.Orientation
}

type MatchState struct {
	GridSize       int              `json:"gridSize"`
	CurrentPlayer  PlayerID         `json:"currentPlayer"`
	Players        Players          `json:"players"`
	Walls          []Wall           `json:"walls"`
	WallsRemaining map[PlayerID]int `json:"wallsRemaining"`
	Phase          Phase            `json:"gameState"`
	SelectedAction Action           `json:"selectedAction"`
	Winner         *PlayerID        `json:"winner,omitempty"`
}

// Clone returns a deep copy safe to hand outside the owning match.
func (s MatchState) Clone() MatchState {
	out := s
	out.Players = make(Players, len(s.Players))
	for id, p := range s.Players {
		out.Players[id] = p
	}
	out.Walls = append(make([]Wall, 0, len(s.Walls)), s.Walls...)
	out.WallsRemaining = make(map[PlayerID]int, len(s.WallsRemaining))
	for id, n := range s.WallsRemaining {
		out.WallsRemaining[id] = n
	}
	if s.Winner != nil {
		w := *s.Winner
		out.Winner = &w
	}
	return out
}
