package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmiclearn/learning-service/internal/config"
)

type capturedRequest struct {
	Auth string
	Body struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		ResponseFormat *struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}
}

func newFakeService(t *testing.T, status int, reply string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		captured.Auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.Body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "gpt-4o",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": reply},
				"finish_reason": "stop",
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestOpenAIClient_CompleteJSON(t *testing.T) {
	srv, captured := newFakeService(t, http.StatusOK, `{"hint":"think"}`)
	client := NewOpenAIClient(config.OpenAIConfig{
		APIKey: "sk-test", Model: "gpt-4o", BaseURL: srv.URL + "/v1", Timeout: 5 * time.Second,
	})

	got, err := client.Complete(context.Background(), Request{System: "sys", User: "usr", JSON: true})
	require.NoError(t, err)
	assert.Equal(t, `{"hint":"think"}`, got)

	assert.Equal(t, "Bearer sk-test", captured.Auth)
	assert.Equal(t, "gpt-4o", captured.Body.Model)
	require.Len(t, captured.Body.Messages, 2)
	assert.Equal(t, "system", captured.Body.Messages[0].Role)
	assert.Equal(t, "sys", captured.Body.Messages[0].Content)
	assert.Equal(t, "user", captured.Body.Messages[1].Role)
	assert.Equal(t, "usr", captured.Body.Messages[1].Content)
	require.NotNil(t, captured.Body.ResponseFormat)
	assert.Equal(t, "json_object", captured.Body.ResponseFormat.Type)
}

func TestOpenAIClient_CompleteText(t *testing.T) {
	srv, captured := newFakeService(t, http.StatusOK, "Plain answer")
	client := NewOpenAIClient(config.OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o", BaseURL: srv.URL + "/v1"})

	got, err := client.Complete(context.Background(), Request{System: "sys", User: "why?"})
	require.NoError(t, err)
	assert.Equal(t, "Plain answer", got)
	assert.Nil(t, captured.Body.ResponseFormat)
}

func TestOpenAIClient_UpstreamError(t *testing.T) {
	srv, _ := newFakeService(t, http.StatusInternalServerError, "")
	client := NewOpenAIClient(config.OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o", BaseURL: srv.URL + "/v1"})

	_, err := client.Complete(context.Background(), Request{System: "s", User: "u", JSON: true})
	assert.Error(t, err)
}

func TestOpenAIClient_NoCredential(t *testing.T) {
	for _, key := range []string{"", config.PlaceholderAPIKey} {
		client := NewOpenAIClient(config.OpenAIConfig{APIKey: key, Model: "gpt-4o"})
		assert.False(t, client.Available())

		_, err := client.Complete(context.Background(), Request{System: "s", User: "u"})
		assert.ErrorIs(t, err, ErrNoCredential)
	}
}
