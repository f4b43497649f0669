package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ignatzorin/grant-assistant/internal/models"
)

// NotificationRepository описывает взаимодействие сервиса с хранилищем уведомлений.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	List(ctx context.Context, sessionID uuid.UUID, limit int) ([]models.Notification, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
}

// NotificationService ведёт журнал последних уведомлений сессии
// для клиентов без открытого сокета.
type NotificationService struct {
	repo NotificationRepository
}

// NewNotificationService создаёт новый сервис уведомлений.
func NewNotificationService(repo NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// CreateNotification сохраняет уведомление сессии.
func (s *NotificationService) CreateNotification(ctx context.Context, sessionID uuid.UUID, n models.Notification) (*models.Notification, error) {
	if sessionID == uuid.Nil {
		return nil, fmt.Errorf("notification service: пустой идентификатор сессии")
	}
	n.SessionID = sessionID

	if err := s.repo.Create(ctx, &n); err != nil {
		return nil, fmt.Errorf("notification service: %w", err)
	}
	return &n, nil
}

// ListNotifications возвращает последние уведомления сессии, новые первыми.
func (s *NotificationService) ListNotifications(ctx context.Context, sessionID uuid.UUID, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, sessionID, limit)
}

// Forget удаляет журнал сессии.
func (s *NotificationService) Forget(ctx context.Context, sessionID uuid.UUID) error {
	return s.repo.DeleteSession(ctx, sessionID)
}

// CreateNotificationForWS сохраняет уведомление (для использования в WebSocket hub).
func (s *NotificationService) CreateNotificationForWS(ctx context.Context, sessionID uuid.UUID, n models.Notification) (*models.Notification, error) {
	return s.CreateNotification(ctx, sessionID, n)
}
