package handler

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nexchat/internal/market"
)

// MarketHandler serves both sides of the marketplace boundary: the catalog
// endpoints the UI's client consumes, and the aggregated hub view that goes
// through the client with its fallback discipline.
type MarketHandler struct {
	catalog *market.Catalog
	client  *market.Client
	logger  *zap.Logger
}

func NewMarketHandler(catalog *market.Catalog, client *market.Client, logger *zap.Logger) *MarketHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarketHandler{catalog: catalog, client: client, logger: logger}
}

// HandleListings filters the catalog by ?q= and ?category=.
func (h *MarketHandler) HandleListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	writeJSON(w, http.StatusOK, h.catalog.Listings(q, category))
}

// HandleRequests returns every buyer-demand record.
func (h *MarketHandler) HandleRequests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Requests())
}

type hubResponse struct {
	Listings []market.Listing      `json:"listings"`
	Requests []market.BuyerRequest `json:"requests"`
	Warning  string                `json:"warning,omitempty"`
}

// HandleHub aggregates listings and buyer requests for the marketplace hub
// view. Both fetches run concurrently; either one failing substitutes its
// fallback set and surfaces a single non-blocking warning.
func (h *MarketHandler) HandleHub(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	var resp hubResponse
	var listingWarn, requestWarn string
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		resp.Listings, listingWarn = h.client.Listings(ctx, q, category)
		return nil
	})
	g.Go(func() error {
		resp.Requests, requestWarn = h.client.Requests(ctx)
		return nil
	})
	_ = g.Wait()

	if listingWarn != "" {
		resp.Warning = listingWarn
	} else if requestWarn != "" {
		resp.Warning = requestWarn
	}
	writeJSON(w, http.StatusOK, resp)
}
