package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/grant-assistant/internal/ai"
	"github.com/ignatzorin/grant-assistant/internal/config"
	"github.com/ignatzorin/grant-assistant/internal/form"
	"github.com/ignatzorin/grant-assistant/internal/goroutine"
	httpHandlers "github.com/ignatzorin/grant-assistant/internal/http/handlers"
	httpRouter "github.com/ignatzorin/grant-assistant/internal/http/router"
	infraAI "github.com/ignatzorin/grant-assistant/internal/infrastructure/ai"
	"github.com/ignatzorin/grant-assistant/internal/logger"
	"github.com/ignatzorin/grant-assistant/internal/metrics"
	"github.com/ignatzorin/grant-assistant/internal/repository"
	"github.com/ignatzorin/grant-assistant/internal/service"
	"github.com/ignatzorin/grant-assistant/internal/usecase/workflow"
	"github.com/ignatzorin/grant-assistant/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logger.Init(cfg.LogLevel)
	if cfg.Env == "development" {
		logger.SetTextFormatter()
	}

	appMetrics := metrics.New(nil)

	// Генерация рекомендаций.
	suggester, err := newSuggester(ctx, cfg)
	if err != nil {
		log.Fatalf("main: не удалось подготовить генератор: %v", err)
	}
	aiService := infraAI.NewAIServiceAdapter(suggester, appMetrics)

	// Журнал уведомлений и вебсокеты.
	notificationRepo := repository.NewNotificationRepository(repository.DefaultNotificationsPerSession)
	notificationService := service.NewNotificationService(notificationRepo)

	hub := ws.NewHub(ctx)
	hub.SetNotificationSaver(ws.NewNotificationServiceAdapter(notificationService))
	goroutine.SafeGo(hub.Run)

	// Сессии страниц.
	schema := form.Default()
	tokenManager := service.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)
	sessions := service.NewSessionService(tokenManager, func(id uuid.UUID) *workflow.Controller {
		controller := workflow.NewController(id, schema, aiService, hub)
		controller.SetRecorder(appMetrics)
		return controller
	}, cfg.SessionIdleTTL)
	sessions.SetObserver(appMetrics)
	sessions.OnEvict(func(ctx context.Context, id uuid.UUID) {
		hub.DisconnectSession(id)
		if err := notificationService.Forget(ctx, id); err != nil {
			logger.WithSession(id).WithError(err).Warn("main: не удалось очистить журнал уведомлений")
		}
	})
	sessions.Start(ctx)

	// HTTP хэндлеры.
	handlers := httpRouter.Handlers{
		Session:      httpHandlers.NewSessionHandler(sessions),
		Schema:       httpHandlers.NewSchemaHandler(schema),
		Notification: httpHandlers.NewNotificationHandler(notificationService),
		WS:           httpHandlers.NewWSHandler(hub, cfg.AllowedOrigins),
		Health:       httpHandlers.NewHealthHandler(aiService.Name(), sessions),
	}

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, handlers, sessions)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	logger.Log.WithField("generator", aiService.Name()).Infof("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// newSuggester выбирает бэкенд генерации по GENERATOR.
func newSuggester(ctx context.Context, cfg *config.Config) (infraAI.Suggester, error) {
	switch cfg.Generator {
	case config.GeneratorStub:
		return ai.NewStubClient(cfg.StubDelay), nil
	case config.GeneratorOpenAI:
		return ai.NewClient(cfg.AIBaseURL, cfg.AIModel, cfg.AIAPIKey), nil
	case config.GeneratorGemini:
		return ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("неизвестный генератор %q", cfg.Generator)
	}
}
