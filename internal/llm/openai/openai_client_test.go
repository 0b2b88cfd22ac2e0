package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptpilot/internal/config"
	"promptpilot/internal/llm"
	"promptpilot/internal/llm/openai"
	"promptpilot/internal/port"
)

func newTestClient(serverURL string) *openai.Client {
	cfg := &config.LLMConfig{
		Provider:        "openai",
		APIKey:          "test-openai-key",
		DefaultModel:    "gpt-4o",
		TimeoutSecs:     30,
		MaxOutputTokens: 8192,
	}
	return openai.NewClientWithEndpoint(cfg, "", serverURL)
}

func TestOpenAIClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)
		assert.Equal(t, "gpt-4o", reqBody["model"])
		assert.Equal(t, float64(8192), reqBody["max_completion_tokens"])

		messages := reqBody["messages"].([]interface{})
		require.Len(t, messages, 1)
		msg := messages[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])
		assert.Equal(t, "rewrite this", msg["content"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"rewritten"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	out, err := client.Complete(context.Background(), port.CompletionInput{Prompt: "rewrite this"})

	require.NoError(t, err)
	assert.Equal(t, "rewritten", out.Text)
	assert.Equal(t, "gpt-4o", out.ModelUsed)
}

func TestOpenAIClient_Complete_Truncated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"partial"},"finish_reason":"length"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), port.CompletionInput{Prompt: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "finish_reason: length")
}

func TestOpenAIClient_Complete_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_exceeded"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), port.CompletionInput{Prompt: "p"})

	require.Error(t, err)
	var rateErr *llm.RateLimitError
	require.True(t, errors.As(err, &rateErr))
	assert.Equal(t, "openai", rateErr.Provider)
}

func TestOpenAIClient_Complete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), port.CompletionInput{Prompt: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
