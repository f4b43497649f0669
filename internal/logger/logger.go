package logger

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Log доступен сразу после импорта, Init только перенастраивает его.
var Log = logrus.New()

// Init инициализирует структурированный логгер.
func Init(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// Используем JSON формат для production, text для development
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter устанавливает текстовый формат логов (для development).
func SetTextFormatter() {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// Silence отключает вывод (используется в тестах).
func Silence() {
	Log.SetOutput(io.Discard)
}

// WithSession возвращает запись с привязкой к сессии страницы.
func WithSession(sessionID uuid.UUID) *logrus.Entry {
	return Log.WithField("session_id", sessionID.String())
}
