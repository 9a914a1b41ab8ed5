package room

import (
	"sync"
	"time"

	"quoridor/internal/game"
)

const Capacity = 2

type Participant struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	IsHost bool          `json:"isHost"`
	Seat   game.PlayerID `json:"seat"`
}

// Room groups the two connections of one match. Everything below mu is
// guarded by it; closed is set once the room leaves the store so late
// dispatches fail instead of mutating an orphan.
type Room struct {
	Code      string
	CreatedAt time.Time

	mu           sync.Mutex
	participants []Participant
	match        *game.Match
	closed       bool
}

func newRoom(code string, rules game.Rules) *Room {
	return &Room{
		Code:      code,
		CreatedAt: time.Now(),
		match:     game.NewMatch(rules),
	}
}

func (r *Room) indexOf(participantID string) int {
	for i, p := range r.participants {
		if p.ID == participantID {
			return i
		}
	}
	return -1
}

func (r *Room) participant(participantID string) (Participant, bool) {
	if i := r.indexOf(participantID); i >= 0 {
		return r.participants[i], true
	}
	return Participant{}, false
}

// freeSeat returns player1 unless it is taken.
func (r *Room) freeSeat() game.PlayerID {
	for _, p := range r.participants {
		if p.Seat == game.Player1 {
			return game.Player2
		}
	}
	return game.Player1
}

func (r *Room) full() bool {
	return len(r.participants) >= Capacity
}

// Info is a read-only copy of a room for callers outside the registry.
type Info struct {
	Code         string          `json:"code"`
	CreatedAt    time.Time       `json:"createdAt"`
	Participants []Participant   `json:"participants"`
	State        game.MatchState `json:"gameState"`
}

func (r *Room) info() Info {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Info{
		Code:         r.Code,
		CreatedAt:    r.CreatedAt,
		Participants: append([]Participant(nil), r.participants...),
		State:        r.match.Snapshot(),
	}
}
