package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/grant-assistant/internal/goroutine"
	"github.com/ignatzorin/grant-assistant/internal/logger"
	"github.com/ignatzorin/grant-assistant/internal/pkg/apperror"
	"github.com/ignatzorin/grant-assistant/internal/usecase/workflow"
)

// DefaultSessionIdleTTL время простоя, после которого черновик удаляется.
const DefaultSessionIdleTTL = 30 * time.Minute

// ControllerFactory создаёт контроллер формы для новой сессии.
type ControllerFactory func(sessionID uuid.UUID) *workflow.Controller

// SessionObserver учитывает открытые сессии.
type SessionObserver interface {
	SessionOpened()
	SessionClosed()
}

// Session результат открытия страницы.
type Session struct {
	ID         uuid.UUID
	Token      string
	ExpiresAt  time.Time
	Controller *workflow.Controller
}

// SessionService хранит сессии страниц в памяти процесса с вытеснением по простою.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry

	tokens   *TokenManager
	factory  ControllerFactory
	idleTTL  time.Duration
	observer SessionObserver
	onEvict  []func(ctx context.Context, sessionID uuid.UUID)
}

type sessionEntry struct {
	controller *workflow.Controller
	lastSeen   time.Time
}

// NewSessionService создаёт реестр сессий.
func NewSessionService(tokens *TokenManager, factory ControllerFactory, idleTTL time.Duration) *SessionService {
	if idleTTL <= 0 {
		idleTTL = DefaultSessionIdleTTL
	}
	return &SessionService{
		sessions: make(map[uuid.UUID]*sessionEntry),
		tokens:   tokens,
		factory:  factory,
		idleTTL:  idleTTL,
	}
}

// SetObserver подключает учёт метрик.
func (s *SessionService) SetObserver(o SessionObserver) {
	s.observer = o
}

// OnEvict регистрирует обработчик, вызываемый после удаления сессии.
func (s *SessionService) OnEvict(fn func(ctx context.Context, sessionID uuid.UUID)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = append(s.onEvict, fn)
}

// Start запускает фоновую очистку простаивающих сессий до отмены ctx.
func (s *SessionService) Start(ctx context.Context) {
	interval := s.idleTTL / 2
	if interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	goroutine.SafeGoWithContext(ctx, func(ctx context.Context) {
		s.cleanup(ctx, interval)
	})
}

// Create открывает новую сессию с пустым черновиком.
func (s *SessionService) Create(ctx context.Context) (*Session, error) {
	id := uuid.New()

	token, exp, err := s.tokens.Issue(id)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to issue session token")
	}

	controller := s.factory(id)

	s.mu.Lock()
	s.sessions[id] = &sessionEntry{controller: controller, lastSeen: time.Now()}
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.SessionOpened()
	}
	logger.WithSession(id).Info("session opened")

	return &Session{
		ID:         id,
		Token:      token,
		ExpiresAt:  exp,
		Controller: controller,
	}, nil
}

// Get возвращает контроллер сессии и продлевает её жизнь.
func (s *SessionService) Get(sessionID uuid.UUID) (*workflow.Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}
	entry.lastSeen = time.Now()
	return entry.controller, nil
}

// Authorize проверяет, что токен выпущен для этой сессии.
func (s *SessionService) Authorize(sessionID uuid.UUID, token string) error {
	if token == "" {
		return apperror.ErrUnauthorized
	}
	sub, err := s.tokens.Parse(token)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeUnauthorized, "invalid session token")
	}
	if sub != sessionID {
		return apperror.New(apperror.ErrCodeUnauthorized, "token does not belong to this session")
	}
	return nil
}

// Discard удаляет сессию (уход со страницы). Идущая генерация доводится до конца,
// журнал уведомлений очищается после её завершения.
func (s *SessionService) Discard(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	entry, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return apperror.ErrSessionNotFound
	}

	entry.controller.Discard()
	s.release(ctx, sessionID, entry.controller)
	logger.WithSession(sessionID).Info("session discarded")
	return nil
}

// EvictIdle удаляет сессии, простаивающие дольше idleTTL на момент now.
// Сессии с незавершённой генерацией не удаляются.
func (s *SessionService) EvictIdle(ctx context.Context, now time.Time) int {
	var evicted []*sessionEntry
	var ids []uuid.UUID

	s.mu.Lock()
	for id, entry := range s.sessions {
		if now.Sub(entry.lastSeen) < s.idleTTL || entry.controller.Loading() {
			continue
		}
		delete(s.sessions, id)
		evicted = append(evicted, entry)
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for i, entry := range evicted {
		entry.controller.Discard()
		s.release(ctx, ids[i], entry.controller)
		logger.WithSession(ids[i]).Info("session expired")
	}
	return len(evicted)
}

// Count число живых сессий.
func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionService) release(ctx context.Context, sessionID uuid.UUID, controller *workflow.Controller) {
	if s.observer != nil {
		s.observer.SessionClosed()
	}

	s.mu.RLock()
	hooks := append([]func(context.Context, uuid.UUID){}, s.onEvict...)
	s.mu.RUnlock()

	run := func(ctx context.Context) {
		for _, fn := range hooks {
			fn(ctx, sessionID)
		}
	}

	sub := controller.Current()
	if sub == nil {
		run(ctx)
		return
	}

	// Уведомление о завершении ещё придёт, чистим после него.
	detached := context.WithoutCancel(ctx)
	goroutine.SafeGo(func() {
		<-sub.Done()
		run(detached)
	})
}

// cleanup периодически удаляет простаивающие сессии.
func (s *SessionService) cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.EvictIdle(ctx, now); n > 0 {
				logger.Log.WithField("evicted", n).Debug("idle sessions removed")
			}
		}
	}
}
