package market

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientListings_Success(t *testing.T) {
	catalog := NewCatalog()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/marketplace/listings", r.URL.Path)
		assert.Equal(t, "desk", r.URL.Query().Get("q"))
		_ = json.NewEncoder(w).Encode(catalog.Listings(r.URL.Query().Get("q"), r.URL.Query().Get("category")))
	}))
	defer srv.Close()

	cli, err := NewClient(srv.URL, nil, nil)
	require.NoError(t, err)

	listings, warning := cli.Listings(context.Background(), "desk", "")
	assert.Empty(t, warning)
	require.Len(t, listings, 1)
	assert.Equal(t, "lst-2", listings[0].ID)
}

func TestClientListings_FailureFallsBack(t *testing.T) {
	// Closed immediately so every request fails at the transport level.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	cli, err := NewClient(srv.URL, nil, nil)
	require.NoError(t, err)

	listings, warning := cli.Listings(context.Background(), "", "")
	assert.Equal(t, FallbackListings(), listings)
	assert.Equal(t, FallbackWarning, warning)

	requests, warning := cli.Requests(context.Background())
	assert.Equal(t, FallbackRequests(), requests)
	assert.NotEmpty(t, warning)
}

func TestClientListings_Non200FallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cli, err := NewClient(srv.URL, nil, nil)
	require.NoError(t, err)

	listings, warning := cli.Listings(context.Background(), "", "")
	assert.Equal(t, FallbackListings(), listings)
	assert.NotEmpty(t, warning)
}

func TestClientListings_CachesSuccess(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_ = json.NewEncoder(w).Encode([]Listing{{ID: "lst-9", Title: "Cached"}})
	}))
	defer srv.Close()

	cli, err := NewClient(srv.URL, nil, nil)
	require.NoError(t, err)

	first, _ := cli.Listings(context.Background(), "q", "cat")
	second, _ := cli.Listings(context.Background(), "q", "cat")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits, "second fetch must come from cache")
}

func TestClientListings_CachedResultIsIsolated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]Listing{{ID: "lst-9", Title: "Pristine"}})
	}))
	defer srv.Close()

	cli, err := NewClient(srv.URL, nil, nil)
	require.NoError(t, err)

	first, _ := cli.Listings(context.Background(), "q", "cat")
	require.Len(t, first, 1)
	first[0].Title = "Scribbled"

	second, _ := cli.Listings(context.Background(), "q", "cat")
	require.Len(t, second, 1)
	assert.Equal(t, "Pristine", second[0].Title, "mutating a returned slice must not reach the cache")
}
