package market

import "strings"

// Catalog is the service-side listing inventory. It is fixed seed data for
// the lifetime of the process; filtering is the only operation.
type Catalog struct {
	listings []Listing
	requests []BuyerRequest
}

// NewCatalog builds the default inventory.
func NewCatalog() *Catalog {
	return &Catalog{
		listings: []Listing{
			{
				ID:         "lst-1",
				Title:      "DJI Mini 4 Pro + Creator Pack",
				Category:   "Electronics",
				Price:      850,
				Condition:  "Like New",
				Location:   "Austin, TX",
				TrustScore: 98,
				Shipping:   []string{"Pickup", "Same-Day Courier"},
				Tags:       []string{"Verified Seller", "Warranty"},
			},
			{
				ID:         "lst-2",
				Title:      "Ergonomic Standing Desk (Bamboo)",
				Category:   "Furniture",
				Price:      420,
				Condition:  "Excellent",
				Location:   "Dallas, TX",
				TrustScore: 93,
				Shipping:   []string{"Delivery", "Pickup"},
				Tags:       []string{"Bundle Ready", "Office"},
			},
			{
				ID:         "lst-3",
				Title:      "Road Bike Carbon 54cm",
				Category:   "Sports",
				Price:      1120,
				Condition:  "Good",
				Location:   "Houston, TX",
				TrustScore: 89,
				Shipping:   []string{"Pickup"},
				Tags:       []string{"Negotiable", "Certified"},
			},
		},
		requests: []BuyerRequest{
			{
				ID:                  "req-1",
				Title:               "Need a remote-work setup under $1,500",
				Budget:              1500,
				PreferredCategories: []string{"Electronics", "Furniture"},
				Urgency:             UrgencyHigh,
			},
			{
				ID:                  "req-2",
				Title:               "Looking for a starter content creator kit",
				Budget:              1200,
				PreferredCategories: []string{"Electronics"},
				Urgency:             UrgencyMedium,
			},
		},
	}
}

// Listings filters by category (case-insensitive, "All" and empty match
// everything) and by a substring search over title and tags.
func (c *Catalog) Listings(query, category string) []Listing {
	results := c.listings
	if category != "" && !strings.EqualFold(category, "all") {
		filtered := make([]Listing, 0, len(results))
		for _, l := range results {
			if strings.EqualFold(l.Category, category) {
				filtered = append(filtered, l)
			}
		}
		results = filtered
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q != "" {
		filtered := make([]Listing, 0, len(results))
		for _, l := range results {
			haystack := strings.ToLower(l.Title + " " + strings.Join(l.Tags, " "))
			if strings.Contains(haystack, q) {
				filtered = append(filtered, l)
			}
		}
		results = filtered
	}
	out := make([]Listing, len(results))
	copy(out, results)
	return out
}

// Requests returns every buyer-demand record.
func (c *Catalog) Requests() []BuyerRequest {
	out := make([]BuyerRequest, len(c.requests))
	copy(out, c.requests)
	return out
}
