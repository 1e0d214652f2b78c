package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexchat/internal/market"
)

func TestHandleHub_FallbackOnAPIFailure(t *testing.T) {
	// Marketplace API that is already gone.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	cli, err := market.NewClient(backend.URL, nil, nil)
	require.NoError(t, err)
	h := NewMarketHandler(market.NewCatalog(), cli, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/marketplace/hub?q=&category=All", nil)
	rec := httptest.NewRecorder()
	h.HandleHub(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp hubResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, market.FallbackListings(), resp.Listings)
	assert.Equal(t, market.FallbackRequests(), resp.Requests)
	assert.NotEmpty(t, resp.Warning)
}

func TestHandleListings_ServesCatalog(t *testing.T) {
	h := NewMarketHandler(market.NewCatalog(), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/marketplace/listings?category=Sports", nil)
	rec := httptest.NewRecorder()
	h.HandleListings(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listings []market.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "lst-3", listings[0].ID)
}
