package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/grant-assistant/internal/domain/entity"
)

func sampleRequest() entity.GrantRequest {
	return entity.GrantRequest{
		OrganizationName: "Green Future",
		Mission:          "Restore urban parks",
		ContactEmail:     "private@example.org",
		ContactPhone:     "5035550100",
		GrantTitle:       "Tree Canopy",
		FundingAmount:    "75000",
	}
}

func TestClient_GenerateSuggestions(t *testing.T) {
	var got struct {
		Model    string              `json:"model"`
		Messages []map[string]string `json:"messages"`
	}
	var auth, path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"1. Add metrics"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "test-model", "secret").WithHTTPClient(srv.Client())

	text, err := client.GenerateSuggestions(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, "1. Add metrics", text)
	assert.Equal(t, "/v1/chat/completions", path)
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0]["role"])
	assert.Contains(t, got.Messages[1]["content"], "Tree Canopy")
	assert.NotContains(t, got.Messages[1]["content"], "private@example.org")
	assert.Equal(t, "openai:test-model", client.Name())
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "m", "k").GenerateSuggestions(context.Background(), sampleRequest())

	assert.ErrorContains(t, err, "429")
}

func TestClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "m", "k").GenerateSuggestions(context.Background(), sampleRequest())

	assert.Error(t, err)
}

func TestClient_NoBaseURL(t *testing.T) {
	_, err := NewClient("", "m", "k").GenerateSuggestions(context.Background(), sampleRequest())
	assert.Error(t, err)
}

func TestNewClient_DefaultModel(t *testing.T) {
	t.Setenv("AI_API_KEY", "from-env")

	client := NewClient("http://localhost", "", "")

	assert.Equal(t, defaultChatModel, client.model)
	assert.Equal(t, "from-env", client.apiKey)
}

func TestBuildGrantPrompt_SkipsEmptyAndContacts(t *testing.T) {
	prompt := buildGrantPrompt(sampleRequest())

	assert.Contains(t, prompt, "- Name: Green Future")
	assert.Contains(t, prompt, "- Funding amount: 75000")
	assert.NotContains(t, prompt, "Website")
	assert.NotContains(t, prompt, "5035550100")
}
