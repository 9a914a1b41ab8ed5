package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quoridor/internal/game"
)

// GetRulesHandler returns the rules new matches are created with
// @Summary Get game rules
// @Description Grid size, wall allotment and player colors used for every new room
// @Tags Config
// @Produce json
// @Success 200 {object} http.RulesResponse
// @Router /api/config [get]
func GetRulesHandler(rules game.Rules) gin.HandlerFunc {
	colors := make(map[game.PlayerID]string, len(rules.Colors))
	for id, c := range rules.Colors {
		colors[id] = c
	}
	resp := RulesResponse{
		GridSize:       rules.GridSize,
		WallsPerPlayer: rules.WallsPerPlayer,
		Colors:         colors,
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resp)
	}
}
