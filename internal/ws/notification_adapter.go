package ws

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/grant-assistant/internal/models"
)

// NotificationServiceAdapter адаптирует NotificationService для использования в Hub.
type NotificationServiceAdapter struct {
	service interface {
		CreateNotificationForWS(ctx context.Context, sessionID uuid.UUID, n models.Notification) (*models.Notification, error)
	}
}

// NewNotificationServiceAdapter создаёт новый адаптер.
func NewNotificationServiceAdapter(service interface {
	CreateNotificationForWS(ctx context.Context, sessionID uuid.UUID, n models.Notification) (*models.Notification, error)
}) *NotificationServiceAdapter {
	return &NotificationServiceAdapter{service: service}
}

// CreateNotification реализует интерфейс NotificationSaver.
func (a *NotificationServiceAdapter) CreateNotification(ctx context.Context, sessionID uuid.UUID, n models.Notification) (*models.Notification, error) {
	return a.service.CreateNotificationForWS(ctx, sessionID, n)
}
