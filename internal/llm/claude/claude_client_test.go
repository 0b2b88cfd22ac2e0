package claude_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptpilot/internal/config"
	"promptpilot/internal/llm"
	"promptpilot/internal/llm/claude"
	"promptpilot/internal/port"
)

func newTestClient(serverURL string) *claude.Client {
	cfg := &config.LLMConfig{
		Provider:        "claude",
		APIKey:          "test-claude-key",
		DefaultModel:    "claude-sonnet-4-20250514",
		TimeoutSecs:     30,
		MaxOutputTokens: 8192,
	}
	return claude.NewClientWithEndpoint(cfg, "", serverURL)
}

func TestClaudeClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-claude-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)
		assert.Equal(t, "claude-sonnet-4-20250514", reqBody["model"])
		assert.Equal(t, float64(8192), reqBody["max_tokens"])

		messages := reqBody["messages"].([]interface{})
		require.Len(t, messages, 1)
		msg := messages[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])
		assert.Equal(t, "polish this prompt", msg["content"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"polished"}],"stop_reason":"end_turn"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	out, err := client.Complete(context.Background(), port.CompletionInput{Prompt: "polish this prompt"})

	require.NoError(t, err)
	assert.Equal(t, "polished", out.Text)
	assert.Equal(t, "claude-sonnet-4-20250514", out.ModelUsed)
}

func TestClaudeClient_Complete_Truncated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"partial"}],"stop_reason":"max_tokens"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), port.CompletionInput{Prompt: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tokens")
}

func TestClaudeClient_Complete_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "17")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), port.CompletionInput{Prompt: "p"})

	require.Error(t, err)
	var rateErr *llm.RateLimitError
	require.True(t, errors.As(err, &rateErr))
	assert.Equal(t, "claude", rateErr.Provider)
	assert.Equal(t, 17*time.Second, rateErr.RetryAfter)
}
