package common

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/grant-assistant/internal/http/middleware"
	"github.com/ignatzorin/grant-assistant/internal/pkg/apperror"
	"github.com/ignatzorin/grant-assistant/internal/usecase/workflow"
)

// ErrSessionNotInContext is returned when the session middleware did not run
var ErrSessionNotInContext = errors.New("сессия не найдена в контексте")

// CurrentSessionID extracts session ID from Gin context
func CurrentSessionID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get(middleware.ContextSessionIDKey)
	if !exists {
		return uuid.Nil, ErrSessionNotInContext
	}

	sessionID, ok := raw.(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrSessionNotInContext
	}

	return sessionID, nil
}

// CurrentController extracts the session's form controller from Gin context
func CurrentController(c *gin.Context) (*workflow.Controller, error) {
	controller, ok := middleware.CurrentController(c)
	if !ok || controller == nil {
		return nil, apperror.Wrap(ErrSessionNotInContext, apperror.ErrCodeInternal, "session is not resolved")
	}
	return controller, nil
}

// BindAndValidate binds JSON request and returns a BAD_REQUEST app error
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeBadRequest, "invalid request body")
	}
	return nil
}

// ParseIntQuery safely reads an integer query parameter with a fallback value
func ParseIntQuery(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// ParseBoolQuery reads a boolean query parameter, false when absent or malformed
func ParseBoolQuery(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}
