package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"quoridor/internal/game"
	"quoridor/internal/room"
	"quoridor/internal/shared"
)

var errMissingData = errors.New("missing data")

type Options struct {
	// AllowedOrigins lists accepted Origin hosts; empty accepts any origin.
	AllowedOrigins []string
	PongTimeout    time.Duration
}

// Hub is the realtime boundary: it turns inbound events into registry calls
// and delivers the registry's notifications to connections.
type Hub struct {
	mu          sync.RWMutex
	clients     map[string]*Client
	roomManager RoomManager
	validate    *validator.Validate
	upgrader    websocket.Upgrader
	pongWait    time.Duration
	log         *zap.Logger
}

func NewHub(roomManager RoomManager, opts Options, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.PongTimeout <= 0 {
		opts.PongTimeout = 60 * time.Second
	}
	h := &Hub{
		clients:     make(map[string]*Client),
		roomManager: roomManager,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		pongWait:    opts.PongTimeout,
		log:         log,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(opts.AllowedOrigins),
	}
	return h
}

func checkOrigin(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[strings.ToLower(strings.TrimSpace(o))] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		_, ok := set[strings.ToLower(u.Host)]
		return ok
	}
}

// HandleWS upgrades the request and serves the connection until it drops.
// @Summary Realtime game session
// @Description WebSocket endpoint. Clients send {"event","data"} envelopes (joinGame, gameAction, gameWin, resetGame, leaveGame) and receive gameJoined, playerJoined, gameError, gameStateUpdate, gameOver, playerLeft, actionRejected.
// @Tags Session
// @Success 101
// @Router /ws [get]
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := newClient(uuid.NewString(), conn)
	h.mu.Lock()
	h.clients[client.id] = client
	h.mu.Unlock()

	h.log.Debug("client connected",
		zap.String("participant", client.id),
		zap.String("remote", c.ClientIP()),
	)

	go h.writePump(client)
	h.readPump(client)
}

// unregister runs once per connection and gives a dropped connection the
// same cleanup as an explicit leaveGame.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
	c.shutdown()

	codes := h.roomManager.LeaveAll(c.id)
	h.log.Debug("client disconnected",
		zap.String("participant", c.id),
		zap.Strings("rooms", codes),
	)
}

// Send implements room.Broadcaster.
func (h *Hub) Send(participantID string, event string, data any) {
	h.mu.RLock()
	c, ok := h.clients[participantID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	h.deliver(c, event, data)
}

// Close disconnects every client. The registry cleans up rooms as each read
// pump exits.
func (h *Hub) Close() {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.shutdown()
	}
}

func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) reply(c *Client, event string, data any) {
	h.deliver(c, event, data)
}

func (h *Hub) deliver(c *Client, event string, data any) {
	if !c.enqueue(shared.Outbound{Event: event, Data: data}) {
		h.log.Warn("dropping slow client", zap.String("participant", c.id), zap.String("event", event))
	}
}

func (h *Hub) decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return errMissingData
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}
	if err := h.validate.Struct(v); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}

func (h *Hub) handle(c *Client, msg shared.Inbound) {
	switch msg.Event {
	case shared.EventJoinGame:
		h.handleJoin(c, msg.Data)
	case shared.EventGameAction:
		h.handleGameAction(c, msg.Data)
	case shared.EventGameWin:
		var req shared.GameWinRequest
		if err := h.decode(msg.Data, &req); err != nil {
			h.reply(c, shared.EventGameError, shared.GameError{Message: err.Error()})
			return
		}
		h.dispatch(c, req.RoomID, shared.EventGameWin, room.Action{Kind: room.KindClaimWin, PlayerID: req.Winner})
	case shared.EventResetGame:
		var req shared.RoomRequest
		if err := h.decode(msg.Data, &req); err != nil {
			h.reply(c, shared.EventGameError, shared.GameError{Message: err.Error()})
			return
		}
		h.dispatch(c, req.RoomID, shared.EventResetGame, room.Action{Kind: room.KindReset})
	case shared.EventLeaveGame:
		var req shared.RoomRequest
		if err := h.decode(msg.Data, &req); err != nil {
			h.reply(c, shared.EventGameError, shared.GameError{Message: err.Error()})
			return
		}
		h.roomManager.Leave(req.RoomID, c.id)
	default:
		h.reply(c, shared.EventGameError, shared.GameError{Message: "unknown event: " + msg.Event})
	}
}

func (h *Hub) handleJoin(c *Client, raw json.RawMessage) {
	var req shared.JoinGameRequest
	if err := h.decode(raw, &req); err != nil {
		h.reply(c, shared.EventGameError, shared.GameError{Message: err.Error()})
		return
	}

	res, err := h.roomManager.Join(req.RoomID, c.id, req.PlayerName, req.IsHost)
	if err != nil {
		h.log.Debug("join rejected",
			zap.String("room", req.RoomID),
			zap.String("participant", c.id),
			zap.Error(err),
		)
		h.reply(c, shared.EventGameError, shared.GameError{Message: err.Error()})
		return
	}

	h.reply(c, shared.EventGameJoined, shared.GameJoined{
		Status:    res.Status,
		Seat:      res.Seat,
		Opponent:  res.Opponent,
		GameState: &res.State,
	})
}

func (h *Hub) handleGameAction(c *Client, raw json.RawMessage) {
	var req shared.GameActionRequest
	if err := h.decode(raw, &req); err != nil {
		h.reply(c, shared.EventGameError, shared.GameError{Message: err.Error()})
		return
	}

	act, err := h.gameAction(req)
	if err != nil {
		h.reply(c, shared.EventActionRejected, shared.ActionRejected{Action: req.Action, Message: err.Error()})
		return
	}
	h.dispatch(c, req.RoomID, req.Action, act)
}

func (h *Hub) gameAction(req shared.GameActionRequest) (room.Action, error) {
	switch req.Action {
	case shared.ActionMovePlayer:
		var d shared.MovePlayerData
		if err := h.decode(req.Data, &d); err != nil {
			return room.Action{}, err
		}
		return room.Action{Kind: room.KindMovePlayer, PlayerID: d.PlayerID, Position: *d.Position}, nil
	case shared.ActionPlaceWall:
		var d shared.PlaceWallData
		if err := h.decode(req.Data, &d); err != nil {
			return room.Action{}, err
		}
		return room.Action{Kind: room.KindPlaceWall, X: *d.X, Y: *d.Y, Orientation: d.Orientation}, nil
	case shared.ActionSetSelectedAction:
		var d shared.SetSelectedActionData
		if err := h.decode(req.Data, &d); err != nil {
			return room.Action{}, err
		}
		return room.Action{Kind: room.KindSetSelectedAction, Selected: d.SelectedAction}, nil
	}
	return room.Action{}, game.ErrUnknownAction
}

// dispatch forwards an action; the registry broadcasts accepted ones, so only
// rejections are answered here, and only to the sender.
func (h *Hub) dispatch(c *Client, code, name string, act room.Action) {
	if _, _, err := h.roomManager.Dispatch(code, c.id, act); err != nil {
		h.reply(c, shared.EventActionRejected, shared.ActionRejected{Action: name, Message: err.Error()})
	}
}
