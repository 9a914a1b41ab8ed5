package room

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"quoridor/internal/game"
	"quoridor/internal/shared"
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomFull           = errors.New("room full")
	ErrAlreadyJoined      = errors.New("already joined this room")
	ErrNotParticipant     = errors.New("not a participant of this room")
	ErrWaitingForOpponent = errors.New("waiting for opponent")
	ErrInvalidRoomCode    = errors.New("invalid room code")
)

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
	Rooms() []*Room
}

type ActionKind string

const (
	KindMovePlayer        ActionKind = shared.ActionMovePlayer
	KindPlaceWall         ActionKind = shared.ActionPlaceWall
	KindSetSelectedAction ActionKind = shared.ActionSetSelectedAction
	KindReset             ActionKind = shared.EventResetGame
	KindClaimWin          ActionKind = shared.EventGameWin
)

// Action is one request against a room's match. Only the fields relevant to
// Kind are read.
type Action struct {
	Kind        ActionKind
	PlayerID    game.PlayerID
	Position    game.Position
	X, Y        int
	Orientation game.Orientation
	Selected    game.Action
}

type JoinResult struct {
	Status   string
	Seat     game.PlayerID
	Opponent string
	State    game.MatchState
}

// Manager is the room registry. mu orders membership changes (create, join,
// leave, destroy); each room's own mutex orders the actions on its match, so
// unrelated rooms never wait on each other.
type Manager struct {
	mu    sync.Mutex
	store Store
	rules game.Rules
	out   atomic.Pointer[outlet]
	log   *zap.Logger
}

// outlet boxes the Broadcaster so implementations of different concrete types
// can be swapped through one atomic pointer.
type outlet struct{ Broadcaster }

func NewManager(s Store, rules game.Rules, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{store: s, rules: rules, log: log}
	m.SetBroadcaster(nil)
	return m
}

// SetBroadcaster wires the transport once it exists; the hub itself needs the
// manager to be constructed first. It may be called while rooms are live. A
// nil Broadcaster discards notifications.
func (m *Manager) SetBroadcaster(b Broadcaster) {
	if b == nil {
		b = nopBroadcaster{}
	}
	m.out.Store(&outlet{b})
}

func (m *Manager) broadcaster() Broadcaster {
	return m.out.Load().Broadcaster
}

func (m *Manager) Rules() game.Rules {
	return m.rules
}

// normalizeCode is applied to every code a caller hands in, so a room is
// found under the same key it was created with.
func normalizeCode(code string) string {
	return strings.TrimSpace(code)
}

func (m *Manager) Join(code, participantID, name string, asHost bool) (JoinResult, error) {
	code = normalizeCode(code)
	if code == "" {
		return JoinResult{}, ErrInvalidRoomCode
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(code)
	if !ok {
		if !asHost {
			return JoinResult{}, ErrRoomNotFound
		}
		r = newRoom(code, m.rules)
		r.participants = []Participant{{ID: participantID, Name: name, IsHost: true, Seat: game.Player1}}
		m.store.SaveRoom(r)

		m.log.Info("room created",
			zap.String("room", code),
			zap.String("participant", participantID),
			zap.String("name", name),
		)
		return JoinResult{Status: shared.StatusWaiting, Seat: game.Player1, State: r.match.Snapshot()}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(participantID) >= 0 {
		return JoinResult{}, ErrAlreadyJoined
	}
	if r.full() {
		return JoinResult{}, ErrRoomFull
	}

	opponent := r.participants[0]
	seat := r.freeSeat()
	r.participants = append(r.participants, Participant{ID: participantID, Name: name, Seat: seat})
	m.broadcaster().Send(opponent.ID, shared.EventPlayerJoined, shared.PlayerJoined{PlayerName: name})

	m.log.Info("participant joined",
		zap.String("room", code),
		zap.String("participant", participantID),
		zap.String("seat", string(seat)),
	)
	return JoinResult{
		Status:   shared.StatusPlaying,
		Seat:     seat,
		Opponent: opponent.Name,
		State:    r.match.Snapshot(),
	}, nil
}

// Leave removes a participant. The room is destroyed with its match when the
// last participant goes; otherwise the survivor is told and becomes host.
func (m *Manager) Leave(code, participantID string) bool {
	code = normalizeCode(code)
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(code)
	if !ok {
		return false
	}
	return m.leaveLocked(r, participantID)
}

// LeaveAll drops participantID from every room that lists it. It serves
// abrupt disconnects, which arrive without a room code.
func (m *Manager) LeaveAll(participantID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var codes []string
	for _, r := range m.store.Rooms() {
		if m.leaveLocked(r, participantID) {
			codes = append(codes, r.Code)
		}
	}
	sort.Strings(codes)
	return codes
}

func (m *Manager) leaveLocked(r *Room, participantID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(participantID)
	if i < 0 {
		return false
	}
	r.participants = append(r.participants[:i], r.participants[i+1:]...)

	if len(r.participants) == 0 {
		r.closed = true
		m.store.DeleteRoom(r.Code)
		m.log.Info("room closed", zap.String("room", r.Code))
		return true
	}

	r.participants[0].IsHost = true
	m.broadcaster().Send(r.participants[0].ID, shared.EventPlayerLeft, nil)
	m.log.Info("participant left",
		zap.String("room", r.Code),
		zap.String("participant", participantID),
	)
	return true
}

// Dispatch applies act on behalf of participantID. The returned state is only
// meaningful when changed is true. Accepted actions are broadcast to the room
// before the room lock is released, so every client sees updates in the order
// they were applied.
func (m *Manager) Dispatch(code, participantID string, act Action) (game.MatchState, bool, error) {
	code = normalizeCode(code)
	r, ok := m.store.GetRoom(code)
	if !ok {
		return game.MatchState{}, false, ErrRoomNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return game.MatchState{}, false, ErrRoomNotFound
	}
	p, ok := r.participant(participantID)
	if !ok {
		return game.MatchState{}, false, ErrNotParticipant
	}
	if act.Kind != KindReset && !r.full() {
		return game.MatchState{}, false, ErrWaitingForOpponent
	}

	wasFinished := r.match.Finished()
	if err := apply(r.match, p.Seat, act); err != nil {
		m.log.Debug("action rejected",
			zap.String("room", code),
			zap.String("participant", participantID),
			zap.String("action", string(act.Kind)),
			zap.Error(err),
		)
		return game.MatchState{}, false, err
	}

	changed := act.Kind != KindClaimWin || !wasFinished
	s := r.match.Snapshot()
	if changed {
		m.broadcastLocked(r, shared.EventGameStateUpdate, s)
	}
	if winner, done := r.match.Winner(); done && (!wasFinished || act.Kind == KindClaimWin) {
		m.broadcastLocked(r, shared.EventGameOver, shared.GameOver{Winner: winner})
		m.log.Info("game over", zap.String("room", code), zap.String("winner", string(winner)))
	}
	return s, changed, nil
}

func apply(match *game.Match, seat game.PlayerID, act Action) error {
	switch act.Kind {
	case KindMovePlayer:
		if act.PlayerID != "" && act.PlayerID != seat {
			return game.ErrNotYourTurn
		}
		return match.MovePlayer(seat, act.Position)
	case KindPlaceWall:
		return match.PlaceWall(seat, act.X, act.Y, act.Orientation)
	case KindSetSelectedAction:
		return match.SetSelectedAction(seat, act.Selected)
	case KindReset:
		match.Reset()
		return nil
	case KindClaimWin:
		return match.ClaimWin(act.PlayerID)
	}
	return fmt.Errorf("%w: %s", game.ErrUnknownAction, act.Kind)
}

func (m *Manager) broadcastLocked(r *Room, event string, data any) {
	for _, p := range r.participants {
		m.broadcaster().Send(p.ID, event, data)
	}
}

func (m *Manager) Get(code string) (Info, bool) {
	r, ok := m.store.GetRoom(normalizeCode(code))
	if !ok {
		return Info{}, false
	}
	return r.info(), true
}

func (m *Manager) Count() int {
	return len(m.store.Rooms())
}
