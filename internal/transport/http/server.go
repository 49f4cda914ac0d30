package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/roomrelay/roomrelay/internal/auth"
	"github.com/roomrelay/roomrelay/internal/config"
	"github.com/roomrelay/roomrelay/internal/core"
)

// NewServer builds the HTTP server: health check, the websocket endpoint,
// and the REST surface for room pages and admin access.
func NewServer(hub *core.Hub, directory *core.Directory, membership *core.Membership, authService *auth.Service, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/health", func(c *gin.Context) {
		c.String(stdhttp.StatusOK, "ok")
	})
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg, logger)))

	rooms := NewRoomHandlers(directory, membership, logger)
	admin := NewAdminHandlers(authService, logger)

	api := router.Group("/api")
	api.POST("/rooms", rooms.CreateRoom)
	api.GET("/rooms/:id", rooms.GetRoom)
	api.POST("/admin/login", admin.Login)

	authorized := api.Group("", AdminMiddleware(authService, logger))
	authorized.GET("/rooms", rooms.ListRooms)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

// ErrorResponse is the generic error body for REST endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
