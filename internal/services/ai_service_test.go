package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicoach/internal/apperrors"
	"aicoach/internal/config"
)

func newAIClient(t *testing.T, handler http.HandlerFunc) *AIService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewAIService(config.AIConfig{
		APIKey:  "test-key",
		Model:   "openai/gpt-4o-mini",
		BaseURL: server.URL + "/v1",
	})
	require.NoError(t, err)
	return client
}

func TestNewAIServiceRejectsBlankToken(t *testing.T) {
	for _, key := range []string{"", "   "} {
		_, err := NewAIService(config.AIConfig{APIKey: key})
		assert.True(t, apperrors.IsConfiguration(err), "key %q", key)
	}
}

func TestChatSendsExpectedRequest(t *testing.T) {
	var captured struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature float32 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
	}
	var authHeader string

	client := newAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"the reply"}}]}`))
	})

	reply, err := client.Chat(context.Background(), "system text", "user text", 0.35, 900)
	require.NoError(t, err)
	assert.Equal(t, "the reply", reply)

	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, "openai/gpt-4o-mini", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "system text", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "user text", captured.Messages[1].Content)
	assert.InDelta(t, 0.35, captured.Temperature, 0.001)
	assert.Equal(t, 900, captured.MaxTokens)
}

func TestChatNon2xxIsRemoteErrorWithStatus(t *testing.T) {
	client := newAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.Chat(context.Background(), "s", "u", 0.1, 100)
	require.Error(t, err)
	assert.True(t, apperrors.IsRemote(err))
	assert.Contains(t, err.Error(), "502")
}

func TestChatAPIErrorKeepsStatusAndMessage(t *testing.T) {
	client := newAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad token","type":"invalid_request_error"}}`))
	})

	_, err := client.Chat(context.Background(), "s", "u", 0.1, 100)
	require.Error(t, err)
	assert.True(t, apperrors.IsRemote(err))
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "bad token")
}

func TestChatMissingContentIsEmptyString(t *testing.T) {
	cases := map[string]string{
		"no choices":    `{}`,
		"empty choices": `{"choices":[]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client := newAIClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body))
			})

			reply, err := client.Chat(context.Background(), "s", "u", 0.1, 100)
			assert.NoError(t, err)
			assert.Equal(t, "", reply)
		})
	}
}

func TestChatConnectionFailureIsRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL + "/v1"
	server.Close()

	client, err := NewAIService(config.AIConfig{APIKey: "k", Model: "m", BaseURL: baseURL})
	require.NoError(t, err)

	_, err = client.Chat(context.Background(), "s", "u", 0.1, 100)
	require.Error(t, err)
	assert.True(t, apperrors.IsRemote(err))
}
