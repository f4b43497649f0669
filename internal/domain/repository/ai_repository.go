package repository

import (
	"context"

	"github.com/ignatzorin/grant-assistant/internal/domain/entity"
)

// AIService внешняя операция генерации: один вызов на отправку,
// без стриминга и частичных результатов.
type AIService interface {
	GenerateSuggestions(ctx context.Context, req entity.GrantRequest) (string, error)
}

// AIServiceFunc позволяет использовать функцию как AIService.
type AIServiceFunc func(ctx context.Context, req entity.GrantRequest) (string, error)

func (f AIServiceFunc) GenerateSuggestions(ctx context.Context, req entity.GrantRequest) (string, error) {
	return f(ctx, req)
}
