package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/ignatzorin/grant-assistant/internal/domain/entity"
)

// DefaultStubDelay задержка, имитирующая вызов настоящего бэкенда.
const DefaultStubDelay = 2 * time.Second

// StubClient заглушка генерации: ждёт фиксированную задержку и возвращает шаблонный текст.
type StubClient struct {
	delay time.Duration
	after func(time.Duration) <-chan time.Time
}

// NewStubClient создаёт заглушку. Отрицательная задержка приводится к нулю.
func NewStubClient(delay time.Duration) *StubClient {
	if delay < 0 {
		delay = 0
	}
	return &StubClient{delay: delay, after: time.After}
}

func (s *StubClient) Name() string {
	return "stub"
}

// PlainText сообщает, что ответ собирается из шаблона и не содержит разметки.
// Пользовательский ввод в нём выводится как есть.
func (s *StubClient) PlainText() bool {
	return true
}

// GenerateSuggestions возвращает шаблонные рекомендации после задержки.
func (s *StubClient) GenerateSuggestions(ctx context.Context, req entity.GrantRequest) (string, error) {
	if s.delay > 0 {
		select {
		case <-s.after(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	org, _, topic := req.Brief()
	return StubSuggestion(org, topic), nil
}

// StubSuggestion шаблон ответа заглушки.
func StubSuggestion(organization, topic string) string {
	return fmt.Sprintf("Based on your input for %s, here are some suggestions for your grant proposal on %s:\n\n", organization, topic) +
		"1. Focus on demonstrating clear impact metrics\n" +
		"2. Highlight your organization's unique approach\n" +
		"3. Include specific timeline and milestones\n" +
		"4. Detail the sustainability of your proposed project"
}
