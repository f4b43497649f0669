package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Поддерживаемые бэкенды генерации.
const (
	GeneratorStub   = "stub"
	GeneratorOpenAI = "openai"
	GeneratorGemini = "gemini"
)

// Config хранит все параметры запуска приложения.
type Config struct {
	Env      string
	HTTPPort string
	LogLevel string

	Generator    string
	StubDelay    time.Duration
	AIBaseURL    string
	AIModel      string
	AIAPIKey     string
	GeminiAPIKey string
	GeminiModel  string

	SessionSecret  string
	SessionTTL     time.Duration
	SessionIdleTTL time.Duration

	AllowedOrigins  []string
	RateLimitLimit  int64
	RateLimitPeriod time.Duration
}

// Load читает переменные окружения и возвращает готовую конфигурацию.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: .env не найден, используем переменные окружения: %v", err)
	}

	env := getEnv("APP_ENV", "development")

	defaultLevel := "info"
	if env == "development" {
		defaultLevel = "debug"
	}

	cfg := &Config{
		Env:          env,
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", defaultLevel),
		Generator:    strings.ToLower(getEnv("GENERATOR", GeneratorStub)),
		AIBaseURL:    getEnv("AI_BASE_URL", "http://localhost:9000"),
		AIModel:      getEnv("AI_MODEL", "gpt-4o-mini"),
		AIAPIKey:     getEnv("AI_API_KEY", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	switch cfg.Generator {
	case GeneratorStub, GeneratorOpenAI:
	case GeneratorGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("config: GEMINI_API_KEY обязателен для GENERATOR=gemini")
		}
	default:
		return nil, fmt.Errorf("config: неизвестный GENERATOR %q (stub, openai, gemini)", cfg.Generator)
	}

	// Валидация секрета токенов сессий
	secret := getEnv("SESSION_SECRET", "")
	if env == "production" {
		if len(secret) < 32 {
			return nil, fmt.Errorf("config: SESSION_SECRET обязателен и должен быть не менее 32 символов в production")
		}
	} else if secret == "" {
		secret = "session-secret-development-only-change-in-production"
		log.Printf("config: WARNING - используется дефолтный SESSION_SECRET, измените в production!")
	}
	cfg.SessionSecret = secret

	// CORS allowed origins
	originsStr := getEnv("CORS_ALLOWED_ORIGINS", "")
	if originsStr == "" {
		if env == "production" {
			return nil, fmt.Errorf("config: CORS_ALLOWED_ORIGINS обязателен в production")
		}
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	} else {
		cfg.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.AllowedOrigins {
			cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}

	cfg.StubDelay = mustParseDuration(getEnv("STUB_DELAY", "2s"))
	cfg.SessionTTL = mustParseDuration(getEnv("SESSION_TTL", "2h"))
	cfg.SessionIdleTTL = mustParseDuration(getEnv("SESSION_IDLE_TTL", "30m"))

	// Rate limiting настройки
	cfg.RateLimitLimit = mustParseInt64(getEnv("RATE_LIMIT_LIMIT", "10"))
	cfg.RateLimitPeriod = mustParseDuration(getEnv("RATE_LIMIT_PERIOD", "1m"))

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или дефолт.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// mustParseDuration безопасно парсит строку в duration.
func mustParseDuration(v string) time.Duration {
	dur, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: не удалось распарсить длительность %q: %v", v, err)
	}
	return dur
}

// mustParseInt64 безопасно парсит строку в int64.
func mustParseInt64(v string) int64 {
	num, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("config: не удалось распарсить число %q: %v", v, err)
	}
	return num
}
