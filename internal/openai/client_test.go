package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChatCompletion(t *testing.T) {
	var gotAuth string
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "gpt-4o",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"ok\":true}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer srv.Close()

	c := NewClient("sk-test", WithBaseURL(srv.URL))
	resp, err := c.CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Model: "gpt-4o",
		Messages: []ChatMessage{
			{Role: "system", Content: "You are a judge."},
			{Role: "user", Content: "Score this."},
		},
		Temperature:    0.2,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4o", gotReq["model"])
	assert.Equal(t, 0.2, gotReq["temperature"])
	rf := gotReq["response_format"].(map[string]any)
	assert.Equal(t, "json_object", rf["type"])

	assert.Equal(t, `{"ok":true}`, resp.Content())
	assert.Equal(t, 15, resp.Usage.TotalTokens)
}

func TestCreateChatCompletionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	defer srv.Close()

	c := NewClient("bad", WithBaseURL(srv.URL))
	_, err := c.CreateChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt-4o"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestContentEmptyChoices(t *testing.T) {
	var resp ChatCompletionResponse
	assert.Equal(t, "", resp.Content())
}
