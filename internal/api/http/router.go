package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"quoridor/internal/api/ws"
	"quoridor/internal/room"
)

type Deps struct {
	Rooms     *room.Manager
	Hub       *ws.Hub
	PublicURL string
	Log       *zap.Logger
}

func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	r := gin.New()
	r.Use(requestLogger(d.Log), gin.Recovery(), securityHeaders())

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", HealthHandler(d.Rooms, d.Hub))

	// WebSocket for live sessions
	r.GET("/ws", d.Hub.HandleWS)

	api := r.Group("/api")
	api.GET("/config", GetRulesHandler(d.Rooms.Rules()))
	api.GET("/rooms/:code", RoomHandler(d.Rooms))
	api.GET("/rooms/:code/moves", PossibleMovesHandler(d.Rooms))
	api.GET("/rooms/:code/qr", QRHandler(d.Rooms, d.PublicURL, d.Log))

	return r
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.String("remote", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Debug("request", fields...)
		}
	}
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}
