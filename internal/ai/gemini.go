package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/ignatzorin/grant-assistant/internal/domain/entity"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiClient генерирует рекомендации через Google Gen AI SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient создаёт клиента Gemini API.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ai: GEMINI_API_KEY не задан")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("ai: не удалось создать клиента Gemini: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Name() string {
	return "gemini:" + g.model
}

// GenerateSuggestions выполняет один запрос GenerateContent без стриминга.
func (g *GeminiClient) GenerateSuggestions(ctx context.Context, req entity.GrantRequest) (string, error) {
	temperature := float32(0.7)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   1024,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildGrantPrompt(req)), config)
	if err != nil {
		return "", fmt.Errorf("ai: gemini: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("ai: gemini: пустой ответ")
	}

	return text, nil
}
