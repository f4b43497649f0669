package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	assert.Error(t, err)
}

func TestNewGeminiClient_DefaultModel(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "test-key", "")
	require.NoError(t, err)

	assert.Equal(t, "gemini:"+defaultGeminiModel, client.Name())
}
