package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressline/pressline/pkg/protocol"
)

func TestHTTPDiscoverer_Discover(t *testing.T) {
	var gotPath string

	var gotQuery protocol.DiscoveryQuery

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotQuery))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{{"title": "a"}, {"title": "b"}},
		})
	}))
	defer server.Close()

	discoverer := NewHTTPDiscoverer(server.URL, time.Second)

	items, err := discoverer.Discover(context.Background(), protocol.DiscoveryQuery{
		Source:   protocol.DiscoverySourceNews,
		Keywords: []string{"ai"},
		Limit:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/discover/news", gotPath)
	assert.Equal(t, []string{"ai"}, gotQuery.Keywords)
	assert.Len(t, items, 2)
}

func TestHTTPDiscoverer_MissingItemsIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	items, err := NewHTTPDiscoverer(server.URL, time.Second).
		Discover(context.Background(), protocol.DiscoveryQuery{Source: protocol.DiscoverySourceRSS})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestHTTPGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/generate", r.URL.Path)

		var req protocol.GenerationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "research", req.Mode)

		_ = json.NewEncoder(w).Encode(map[string]any{"content": "analysis text"})
	}))
	defer server.Close()

	content, err := NewHTTPGenerator(server.URL, time.Second).
		Generate(context.Background(), protocol.GenerationRequest{Prompt: "topic", Mode: "research"})
	require.NoError(t, err)
	assert.Equal(t, "analysis text", content)
}

func TestHTTPPublisher_Publish(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/articles", r.URL.Path)

		var req protocol.PublishRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "published", req.Status)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"article_id": "art-9", "status": "published"})
	}))
	defer server.Close()

	created, err := NewHTTPPublisher(server.URL, time.Second).
		Publish(context.Background(), protocol.PublishRequest{Title: "t", Status: "published"})
	require.NoError(t, err)
	assert.Equal(t, "art-9", created["article_id"])
}

func TestPostJSON_NonSuccessStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := NewHTTPGenerator(server.URL, time.Second).
		Generate(context.Background(), protocol.GenerationRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}
