package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestClient_Complete(t *testing.T) {
	t.Run("returns the first choice", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req chatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "gpt-3.5-turbo", req.Model)
			require.Len(t, req.Messages, 1)
			assert.Equal(t, "user", req.Messages[0].Role)

			_ = json.NewEncoder(w).Encode(chatResponse{
				Choices: []struct {
					Message chatMessage `json:"message"`
				}{
					{Message: chatMessage{Role: "assistant", Content: "Wear a blue shirt."}},
				},
			})
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
		text, err := c.Complete(context.Background(), "suggest an outfit")
		require.NoError(t, err)
		assert.Equal(t, "Wear a blue shirt.", text)
	})

	t.Run("non-2xx is an error with body excerpt", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
		_, err := c.Complete(context.Background(), "prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(chatResponse{})
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
		_, err := c.Complete(context.Background(), "prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
		_, err := c.Complete(context.Background(), "prompt")
		assert.Error(t, err)
	})

	t.Run("missing key is an error", func(t *testing.T) {
		c := New(Config{BaseURL: "http://localhost:1"})
		_, err := c.Complete(context.Background(), "prompt")
		assert.Error(t, err)
	})

	t.Run("limiter denial fails fast", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
		c.limiter = rate.NewLimiter(0, 0)

		_, err := c.Complete(context.Background(), "prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limit")
		assert.False(t, called)
	})
}

func TestNew_Defaults(t *testing.T) {
	c := New(Config{APIKey: "k"})
	assert.Equal(t, defaultBaseURL, c.baseURL)
	assert.Equal(t, defaultModel, c.model)
	assert.NotNil(t, c.http)
	assert.NotNil(t, c.limiter)
}
