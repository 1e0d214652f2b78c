package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Metrics receives fallback counters. Tests pass nil.
type Metrics interface {
	MarketplaceFallback()
}

// Client talks to the marketplace API. Every failure degrades to the fixed
// fallback data plus a warning string; the caller never sees a hard error
// from the fetch paths. Successful responses are cached briefly so typing
// in the search box does not hammer the API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics Metrics

	cache *lru.Cache[string, []Listing]
}

// NewClient builds a client against baseURL (no trailing slash required).
func NewClient(baseURL string, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cache, err := lru.New[string, []Listing](128)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
		metrics: metrics,
		cache:   cache,
	}, nil
}

// Listings fetches listings for the query/category pair. On any transport
// or decode failure it returns the fallback set and a non-empty warning.
func (c *Client) Listings(ctx context.Context, query, category string) ([]Listing, string) {
	key := query + "\x00" + category
	if cached, ok := c.cache.Get(key); ok {
		return cloneListings(cached), ""
	}

	params := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		params.Set("q", q)
	}
	if category != "" && !strings.EqualFold(category, "all") {
		params.Set("category", category)
	}
	path := "/api/marketplace/listings"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var listings []Listing
	if err := c.getJSON(ctx, path, &listings); err != nil {
		c.logger.Warn("marketplace listings fetch failed", zap.Error(err))
		if c.metrics != nil {
			c.metrics.MarketplaceFallback()
		}
		return FallbackListings(), FallbackWarning
	}
	c.cache.Add(key, cloneListings(listings))
	return listings, ""
}

// cloneListings copies the slice so cached entries stay isolated from
// whatever the caller does with its result.
func cloneListings(listings []Listing) []Listing {
	out := make([]Listing, len(listings))
	copy(out, listings)
	return out
}

// Requests fetches buyer-demand records with the same fallback discipline.
func (c *Client) Requests(ctx context.Context) ([]BuyerRequest, string) {
	var requests []BuyerRequest
	if err := c.getJSON(ctx, "/api/marketplace/requests", &requests); err != nil {
		c.logger.Warn("marketplace requests fetch failed", zap.Error(err))
		if c.metrics != nil {
			c.metrics.MarketplaceFallback()
		}
		return FallbackRequests(), FallbackWarning
	}
	return requests, ""
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("market: request failed: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
