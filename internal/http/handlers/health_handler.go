package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/grant-assistant/internal/dto"
	"github.com/ignatzorin/grant-assistant/internal/service"
)

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	generator string
	sessions  *service.SessionService
}

// NewHealthHandler создаёт новый health handler. generator пустой, если генерация не настроена.
func NewHealthHandler(generator string, sessions *service.SessionService) *HealthHandler {
	return &HealthHandler{generator: generator, sessions: sessions}
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.generator == "" {
		checks["generator"] = "unhealthy: not configured"
		status = "unhealthy"
	} else {
		checks["generator"] = h.generator
	}

	if h.sessions != nil {
		checks["sessions"] = strconv.Itoa(h.sessions.Count())
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
	})
}
