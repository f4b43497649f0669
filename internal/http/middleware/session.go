package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/grant-assistant/internal/pkg/apperror"
	"github.com/ignatzorin/grant-assistant/internal/service"
	"github.com/ignatzorin/grant-assistant/internal/usecase/workflow"
)

// Context ключи для gin.Context.
const (
	ContextSessionIDKey  = "sessionID"
	ContextControllerKey = "controller"
)

// SessionTokenHeader заголовок с токеном сессии страницы.
const SessionTokenHeader = "X-Session-Token"

// SessionMiddleware проверяет, что токен выпущен для сессии из параметра paramName,
// и кладёт её контроллер в контекст. Для WebSocket токен берётся из query "token".
func SessionMiddleware(sessions *service.SessionService, paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := uuid.Parse(c.Param(paramName))
		if err != nil {
			_ = c.Error(apperror.New(apperror.ErrCodeBadRequest, "parameter "+paramName+" must be a valid UUID"))
			c.Abort()
			return
		}

		token := c.GetHeader(SessionTokenHeader)
		if token == "" {
			token = c.Query("token")
		}

		if err := sessions.Authorize(sessionID, token); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		controller, err := sessions.Get(sessionID)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(ContextSessionIDKey, sessionID)
		c.Set(ContextControllerKey, controller)
		c.Next()
	}
}

// CurrentController извлекает контроллер сессии из контекста.
func CurrentController(c *gin.Context) (*workflow.Controller, bool) {
	raw, exists := c.Get(ContextControllerKey)
	if !exists {
		return nil, false
	}
	controller, ok := raw.(*workflow.Controller)
	return controller, ok
}
