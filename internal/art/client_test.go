package art

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDecodesImage(t *testing.T) {
	want := []byte("fake-png-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/image/generate", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "flux-dev", payload["model"])
		assert.Contains(t, payload["prompt"], "kawaii")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"images": []string{base64.StdEncoding.EncodeToString(want)},
		})
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.baseURL = srv.URL

	got, err := c.Generate(context.Background(), "a fluffy kitten with a heart in a very kawaii style")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGenerateNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.baseURL = srv.URL

	_, err := c.Generate(context.Background(), "prompt")
	assert.ErrorContains(t, err, "429")
}

func TestGenerateEmptyImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"images": []string{}})
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.baseURL = srv.URL

	_, err := c.Generate(context.Background(), "prompt")
	assert.ErrorContains(t, err, "no images")
}

func TestGenerateBadBase64(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"images": []string{"%%%not-base64%%%"}})
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.baseURL = srv.URL

	_, err := c.Generate(context.Background(), "prompt")
	assert.ErrorContains(t, err, "base64")
}

func TestEnabled(t *testing.T) {
	assert.True(t, NewClient("key").Enabled())
	assert.False(t, NewClient("").Enabled())
}
