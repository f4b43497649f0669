package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/grant-assistant/internal/http/handlers/common"
	"github.com/ignatzorin/grant-assistant/internal/http/response"
	"github.com/ignatzorin/grant-assistant/internal/pkg/apperror"
	"github.com/ignatzorin/grant-assistant/internal/service"
)

// NotificationHandler отдаёт журнал последних уведомлений сессии.
type NotificationHandler struct {
	notifications *service.NotificationService
}

// NewNotificationHandler создаёт новый хэндлер.
func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// ListNotifications обрабатывает GET /api/sessions/:id/notifications.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	sessionID, err := common.CurrentSessionID(c)
	if err != nil {
		response.Error(c, apperror.Wrap(err, apperror.ErrCodeInternal, "session is not resolved"))
		return
	}

	limit := common.ParseIntQuery(c, "limit", 20)

	notifications, err := h.notifications.ListNotifications(c.Request.Context(), sessionID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, notifications)
}
