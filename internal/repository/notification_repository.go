package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/grant-assistant/internal/models"
)

// DefaultNotificationsPerSession сколько последних уведомлений хранится на сессию.
const DefaultNotificationsPerSession = 20

// NotificationRepository хранит последние уведомления сессий в памяти процесса.
type NotificationRepository struct {
	mu       sync.RWMutex
	capacity int
	items    map[uuid.UUID][]models.Notification
}

// NewNotificationRepository создаёт экземпляр репозитория.
func NewNotificationRepository(capacity int) *NotificationRepository {
	if capacity <= 0 {
		capacity = DefaultNotificationsPerSession
	}
	return &NotificationRepository{
		capacity: capacity,
		items:    make(map[uuid.UUID][]models.Notification),
	}
}

// Create сохраняет уведомление, вытесняя самое старое при переполнении.
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := append(r.items[notification.SessionID], *notification)
	if len(list) > r.capacity {
		list = list[len(list)-r.capacity:]
	}
	r.items[notification.SessionID] = list
	return nil
}

// List возвращает уведомления сессии, новые первыми.
func (r *NotificationRepository) List(ctx context.Context, sessionID uuid.UUID, limit int) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.items[sessionID]
	if limit <= 0 || limit > len(list) {
		limit = len(list)
	}

	out := make([]models.Notification, 0, limit)
	for i := len(list) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, list[i])
	}
	return out, nil
}

// DeleteSession удаляет все уведомления сессии.
func (r *NotificationRepository) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, sessionID)
	return nil
}
