package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ignatzorin/grant-assistant/internal/goroutine"
	"github.com/ignatzorin/grant-assistant/internal/logger"
	"github.com/ignatzorin/grant-assistant/internal/models"
)

// EventToast имя события всплывающего уведомления.
const EventToast = "toast"

// NotificationSaver интерфейс для сохранения уведомлений в журнал сессии.
type NotificationSaver interface {
	CreateNotification(ctx context.Context, sessionID uuid.UUID, n models.Notification) (*models.Notification, error)
}

// Hub управляет WebSocket клиентами всех сессий.
type Hub struct {
	mu                sync.RWMutex
	clients           map[uuid.UUID]map[*Client]struct{}
	register          chan *Client
	unregister        chan *Client
	broadcast         chan message
	notificationSaver NotificationSaver
	ctx               context.Context
}

// message событие для сокетов сессии. disconnect идёт через ту же очередь,
// поэтому уведомления, поставленные раньше, доставляются до закрытия.
type message struct {
	sessionID  uuid.UUID
	payload    []byte
	disconnect bool
}

// NewHub создаёт новый хаб. Отмена ctx останавливает Run.
func NewHub(ctx context.Context) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 32),
		ctx:        ctx,
	}
}

// SetNotificationSaver устанавливает сервис для сохранения уведомлений.
func (h *Hub) SetNotificationSaver(saver NotificationSaver) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notificationSaver = saver
}

// Run запускает главный цикл хаба.
func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case msg := <-h.broadcast:
			if msg.disconnect {
				h.disconnect(msg.sessionID)
				continue
			}
			h.send(msg.sessionID, msg.payload)
		}
	}
}

// Register добавляет клиента.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.ctx.Done():
	}
}

// Unregister удаляет клиента.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

// Notify сохраняет уведомление в журнал сессии и рассылает его открытым сокетам.
func (h *Hub) Notify(ctx context.Context, sessionID uuid.UUID, n models.Notification) error {
	h.mu.RLock()
	saver := h.notificationSaver
	h.mu.RUnlock()

	if saver != nil {
		stored, err := saver.CreateNotification(ctx, sessionID, n)
		if err != nil {
			// Журнал вспомогательный, сокет всё равно получает уведомление
			logger.WithSession(sessionID).WithError(err).Warn("ws: не удалось сохранить уведомление")
		} else {
			n = *stored
		}
	}

	return h.BroadcastToSession(sessionID, EventToast, n)
}

// BroadcastToSession отправляет событие всем сокетам сессии.
func (h *Hub) BroadcastToSession(sessionID uuid.UUID, event string, data any) error {
	// "type" содержит имя события, "data" полезную нагрузку.
	payload := map[string]any{
		"type": event,
		"data": data,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ws: не удалось сериализовать сообщение: %w", err)
	}

	select {
	case h.broadcast <- message{sessionID: sessionID, payload: raw}:
		return nil
	case <-h.ctx.Done():
		return fmt.Errorf("ws: хаб остановлен: %w", h.ctx.Err())
	}
}

// DisconnectSession закрывает все сокеты сессии после уже поставленных в очередь сообщений.
func (h *Hub) DisconnectSession(sessionID uuid.UUID) {
	select {
	case h.broadcast <- message{sessionID: sessionID, disconnect: true}:
	case <-h.ctx.Done():
	}
}

// ClientCount число сокетов сессии.
func (h *Hub) ClientCount(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.sessionID]; !ok {
		h.clients[client.sessionID] = make(map[*Client]struct{})
	}
	h.clients[client.sessionID][client] = struct{}{}
}

// removeClient и disconnect вызываются только из Run: send закрывается ровно один раз.
func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.sessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	if len(clients) == 0 {
		delete(h.clients, client.sessionID)
	}
	close(client.send)
}

// disconnect отключает сессию: writePump дописывает буфер и закрывает соединение.
func (h *Hub) disconnect(sessionID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients[sessionID] {
		close(client.send)
	}
	delete(h.clients, sessionID)
}

func (h *Hub) send(sessionID uuid.UUID, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[sessionID] {
		select {
		case client.send <- payload:
		default:
			// Медленный клиент: закрываем вне цикла хаба
			c := client
			goroutine.SafeGo(c.Close)
		}
	}
}
