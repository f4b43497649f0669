package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	aiclient "github.com/ignatzorin/grant-assistant/internal/ai"
	"github.com/ignatzorin/grant-assistant/internal/domain/entity"
	"github.com/ignatzorin/grant-assistant/internal/logger"
)

// Suggester реализуется клиентами из пакета internal/ai.
type Suggester interface {
	Name() string
	GenerateSuggestions(ctx context.Context, req entity.GrantRequest) (string, error)
}

// PlainTexter реализуют клиенты, чей ответ уже является обычным текстом.
type PlainTexter interface {
	PlainText() bool
}

// Observer получает длительность и исход каждого вызова генерации.
type Observer interface {
	ObserveGeneration(backend string, d time.Duration, err error)
}

// AIServiceAdapter приводит ответ клиента к отображаемому тексту:
// чистит разметку и считает пустой ответ отказом.
type AIServiceAdapter struct {
	client   Suggester
	observer Observer
}

func NewAIServiceAdapter(client Suggester, observer Observer) *AIServiceAdapter {
	return &AIServiceAdapter{client: client, observer: observer}
}

func (a *AIServiceAdapter) Name() string {
	return a.client.Name()
}

func (a *AIServiceAdapter) GenerateSuggestions(ctx context.Context, req entity.GrantRequest) (string, error) {
	started := time.Now()
	text, err := a.client.GenerateSuggestions(ctx, req)
	if err == nil {
		text = a.clean(text)
		if text == "" {
			err = fmt.Errorf("ai: %s вернул пустой ответ", a.client.Name())
		}
	}

	elapsed := time.Since(started)
	if a.observer != nil {
		a.observer.ObserveGeneration(a.client.Name(), elapsed, err)
	}

	entry := logger.Log.WithFields(logrus.Fields{
		"backend":  a.client.Name(),
		"duration": elapsed.String(),
	})
	if err != nil {
		entry.WithError(err).Warn("generation failed")
		return "", err
	}
	entry.Debug("generation completed")

	return text, nil
}

// clean очищает ответ модели от разметки; шаблонный текст только выравнивается.
func (a *AIServiceAdapter) clean(text string) string {
	if pt, ok := a.client.(PlainTexter); ok && pt.PlainText() {
		return aiclient.TidySuggestion(text)
	}
	return aiclient.NormalizeSuggestion(text)
}
