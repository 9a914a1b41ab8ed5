package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoridor/internal/api/ws"
	"quoridor/internal/game"
	"quoridor/internal/room"
	"quoridor/internal/store"
)

func setup(t *testing.T, publicURL string) (*gin.Engine, *room.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rm := room.NewManager(store.NewMemoryStore(), game.DefaultRules(), nil)
	hub := ws.NewHub(rm, ws.Options{}, nil)
	rm.SetBroadcaster(hub)
	return NewRouter(Deps{Rooms: rm, Hub: hub, PublicURL: publicURL}), rm
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHealth(t *testing.T) {
	r, rm := setup(t, "")
	_, err := rm.Join("ROOM", "p1", "Ada", true)
	require.NoError(t, err)

	w := get(r, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	var body HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 1, body.Rooms)
	assert.Equal(t, 0, body.Connections)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRoot_RedirectsToSwagger(t *testing.T) {
	r, _ := setup(t, "")
	w := get(r, "/")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/swagger/index.html", w.Header().Get("Location"))
}

func TestRoom(t *testing.T) {
	r, rm := setup(t, "")

	w := get(r, "/api/rooms/NOPE")
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, err := rm.Join("ROOM", "p1", "Ada", true)
	require.NoError(t, err)
	_, err = rm.Join("ROOM", "p2", "Bo", false)
	require.NoError(t, err)

	w = get(r, "/api/rooms/ROOM")
	require.Equal(t, http.StatusOK, w.Code)
	var body RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ROOM", body.Code)
	require.Len(t, body.Participants, 2)
	assert.Equal(t, game.Player1, body.Participants[0].Seat)
	assert.Equal(t, game.Player2, body.Participants[1].Seat)
	assert.Equal(t, game.DefaultGridSize, body.GameState.GridSize)
	assert.Equal(t, game.PhaseInProgress, body.GameState.Phase)
}

func TestPossibleMoves(t *testing.T) {
	r, rm := setup(t, "")
	_, err := rm.Join("ROOM", "p1", "Ada", true)
	require.NoError(t, err)

	w := get(r, "/api/rooms/ROOM/moves?player=nobody")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(r, "/api/rooms/NOPE/moves?player=player1")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(r, "/api/rooms/ROOM/moves?player=player1")
	require.Equal(t, http.StatusOK, w.Code)
	var body MovesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, game.Position{Row: 8, Col: 4}, body.From)
	assert.Equal(t, 0, body.GoalRow)
	assert.Equal(t, 8, body.Distance)
	assert.True(t, body.Reachable)
	assert.True(t, body.YourTurn)
	assert.ElementsMatch(t, []game.Position{{Row: 7, Col: 4}, {Row: 8, Col: 3}, {Row: 8, Col: 5}}, body.Targets)

	w = get(r, "/api/rooms/ROOM/moves?player=player2")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 8, body.GoalRow)
	assert.False(t, body.YourTurn)
}

func TestQR(t *testing.T) {
	r, rm := setup(t, "https://play.example/")

	w := get(r, "/api/rooms/NOPE/qr")
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, err := rm.Join("ROOM", "p1", "Ada", true)
	require.NoError(t, err)

	w = get(r, "/api/rooms/ROOM/qr")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func TestInviteURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/a%20b/qr", nil)
	req.Host = "game.local:8080"

	assert.Equal(t, "https://play.example/?room=a+b", inviteURL(req, "https://play.example/", "a b"))
	assert.Equal(t, "http://game.local:8080/?room=ROOM", inviteURL(req, "", "ROOM"))

	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://game.local:8080/?room=ROOM", inviteURL(req, "", "ROOM"))
}

func TestRules(t *testing.T) {
	r, _ := setup(t, "")
	w := get(r, "/api/config")
	require.Equal(t, http.StatusOK, w.Code)

	var body RulesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, game.DefaultGridSize, body.GridSize)
	assert.Equal(t, game.DefaultWallsPerPlayer, body.WallsPerPlayer)
	assert.Equal(t, game.DefaultPlayer1Color, body.Colors[game.Player1])
	assert.Equal(t, game.DefaultPlayer2Color, body.Colors[game.Player2])
}
