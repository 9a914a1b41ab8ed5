package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"quoridor/internal/api/ws"
	"quoridor/internal/game"
	"quoridor/internal/room"
)

const qrSize = 320

// @Summary Health check
// @Description Reports liveness with the number of open rooms and connections
// @Tags System
// @Produce json
// @Success 200 {object} http.HealthResponse
// @Router /healthz [get]
func HealthHandler(rm *room.Manager, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:      "ok",
			Rooms:       rm.Count(),
			Connections: hub.Connected(),
		})
	}
}

// @Summary Get room
// @Description Participants and the current match snapshot of a room
// @Tags Room
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} http.RoomResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /api/rooms/{code} [get]
func RoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, ok := rm.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: room.ErrRoomNotFound.Error()})
			return
		}
		c.JSON(http.StatusOK, RoomResponse{
			Code:         info.Code,
			CreatedAt:    info.CreatedAt,
			Participants: info.Participants,
			GameState:    info.State,
		})
	}
}

// @Summary Legal moves
// @Description Cells the player's token may step to and its shortest distance to the goal row
// @Tags Game
// @Produce json
// @Param code path string true "Room code"
// @Param player query string true "player1 or player2"
// @Success 200 {object} http.MovesResponse
// @Failure 400 {object} http.ErrorResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /api/rooms/{code}/moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		pid := game.PlayerID(c.Query("player"))
		if !pid.Valid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "player must be player1 or player2"})
			return
		}
		info, ok := rm.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: room.ErrRoomNotFound.Error()})
			return
		}

		s := info.State
		from := s.Players[pid].Position
		goal := game.GoalRow(pid, s.GridSize)
		dist, reachable := game.ShortestPathLength(from, goal, s.Walls, s.GridSize)
		c.JSON(http.StatusOK, MovesResponse{
			Player:    pid,
			From:      from,
			Targets:   game.LegalTargets(from, s.Walls, s.GridSize),
			GoalRow:   goal,
			Distance:  dist,
			Reachable: reachable,
			YourTurn:  s.Phase == game.PhaseInProgress && s.CurrentPlayer == pid,
		})
	}
}

// @Summary Room invite QR code
// @Description PNG QR code of the URL a second player opens to join the room
// @Tags Room
// @Produce png
// @Param code path string true "Room code"
// @Success 200 {file} binary
// @Failure 404 {object} http.ErrorResponse
// @Router /api/rooms/{code}/qr [get]
func QRHandler(rm *room.Manager, publicURL string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		if _, ok := rm.Get(code); !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: room.ErrRoomNotFound.Error()})
			return
		}

		png, err := qrcode.Encode(inviteURL(c.Request, publicURL, code), qrcode.Medium, qrSize)
		if err != nil {
			log.Error("qr generation failed", zap.String("room", code), zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "qr generation failed"})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}

// inviteURL points at the client with the room pre-filled. Without a
// configured public URL the request's own scheme and host are used.
func inviteURL(r *http.Request, publicURL, code string) string {
	base := strings.TrimSuffix(publicURL, "/")
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		base = scheme + "://" + r.Host
	}
	return base + "/?room=" + url.QueryEscape(code)
}
