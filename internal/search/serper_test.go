package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlewave/leadgen-cli/internal/resilience"
)

func TestSerperSearch(t *testing.T) {
	var gotReq serperRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"organic": []map[string]string{
				{"title": "AutoNation", "link": "https://autonation.com", "snippet": "retailer"},
				{"title": "Penske", "link": "https://penskeautomotive.com", "snippet": "dealer group"},
			},
		})
	}))
	defer srv.Close()

	c := NewSerper("test-key", WithSerperBaseURL(srv.URL))
	results, err := c.Search(context.Background(), "dealer groups", 10)

	require.NoError(t, err)
	assert.Equal(t, "dealer groups", gotReq.Q)
	assert.Equal(t, 10, gotReq.Num)
	require.Len(t, results, 2)
	assert.Equal(t, Result{Title: "AutoNation", URL: "https://autonation.com", Snippet: "retailer"}, results[0])
}

func TestSerperSearch_CapsAtMaxResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"organic": []map[string]string{
				{"title": "a"}, {"title": "b"}, {"title": "c"},
			},
		})
	}))
	defer srv.Close()

	c := NewSerper("k", WithSerperBaseURL(srv.URL))
	results, err := c.Search(context.Background(), "q", 2)

	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSerperSearch_TransientStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewSerper("k", WithSerperBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "q", 5)

	require.Error(t, err)
	assert.True(t, resilience.IsTransient(err))
}

func TestSerperSearch_PermanentStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewSerper("bad-key", WithSerperBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "q", 5)

	require.Error(t, err)
	assert.False(t, resilience.IsTransient(err))
}

func TestGoogleSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("key"))
		assert.Equal(t, "cse-id", q.Get("cx"))
		assert.Equal(t, "dealer groups", q.Get("q"))
		// Requests above the API limit are capped at 10.
		assert.Equal(t, "10", q.Get("num"))

		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"items": []map[string]string{
				{"title": "AutoNation", "link": "https://autonation.com", "snippet": "retailer"},
			},
		})
	}))
	defer srv.Close()

	c := NewGoogle("test-key", "cse-id", WithGoogleBaseURL(srv.URL))
	results, err := c.Search(context.Background(), "dealer groups", 25)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "https://autonation.com", results[0].URL)
}
