package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ignatzorin/grant-assistant/internal/http/handlers/common"
	"github.com/ignatzorin/grant-assistant/internal/http/response"
	"github.com/ignatzorin/grant-assistant/internal/logger"
	"github.com/ignatzorin/grant-assistant/internal/pkg/apperror"
	"github.com/ignatzorin/grant-assistant/internal/ws"
)

// WSHandler отвечает за установку WebSocket соединений.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler создаёт новый хэндлер. Origin проверяется по тому же списку, что и CORS.
func NewWSHandler(hub *ws.Hub, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// Handle обслуживает GET /api/sessions/:id/ws?token=...
// Токен проверяется SessionMiddleware.
func (h *WSHandler) Handle(c *gin.Context) {
	sessionID, err := common.CurrentSessionID(c)
	if err != nil {
		response.Error(c, apperror.Wrap(err, apperror.ErrCodeInternal, "session is not resolved"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade сам пишет ответ клиенту
		logger.WithSession(sessionID).WithError(err).Warn("ws: upgrade failed")
		return
	}

	client := ws.NewClient(conn, h.hub, sessionID)
	h.hub.Register(client)

	client.Run(c.Request.Context())
}
