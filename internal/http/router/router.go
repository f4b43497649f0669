package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ignatzorin/grant-assistant/internal/config"
	"github.com/ignatzorin/grant-assistant/internal/http/handlers"
	"github.com/ignatzorin/grant-assistant/internal/http/middleware"
	"github.com/ignatzorin/grant-assistant/internal/service"
)

// Handlers набор хэндлеров API.
type Handlers struct {
	Session      *handlers.SessionHandler
	Schema       *handlers.SchemaHandler
	Notification *handlers.NotificationHandler
	WS           *handlers.WSHandler
	Health       *handlers.HealthHandler

	// Metrics отдаёт /metrics; nil означает promhttp.Handler().
	Metrics http.Handler
}

func SetupRouter(cfg *config.Config, h Handlers, sessions *service.SessionService) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	metrics := h.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}

	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(metrics))

	api := r.Group("/api")
	api.GET("/form/schema", h.Schema.GetSchema)

	sessionRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	api.POST("/sessions", sessionRateLimit, h.Session.Create)

	// Маршруты одной страницы, требуют X-Session-Token этой сессии
	session := api.Group("/sessions/:id")
	session.Use(middleware.UUIDValidator("id"), middleware.SessionMiddleware(sessions, "id"))
	{
		session.GET("", h.Session.Get)
		session.DELETE("", h.Session.Discard)
		session.PATCH("/fields/:field", h.Session.UpdateField)
		session.PUT("/fields", h.Session.UpdateFields)
		session.POST("/validate", h.Session.Validate)
		session.POST("/submit", middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod), h.Session.Submit)
		session.GET("/notifications", h.Notification.ListNotifications)
		session.GET("/ws", h.WS.Handle)
	}

	return r
}
