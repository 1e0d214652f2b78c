// Package market covers both sides of the marketplace boundary: the
// in-process listing catalog the service exposes, and the consuming client
// with its static-fallback behavior when the API is unreachable.
package market

// Listing is one marketplace offer.
type Listing struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Price      float64  `json:"price"`
	Condition  string   `json:"condition"`
	Location   string   `json:"location"`
	TrustScore int      `json:"trustScore"`
	Shipping   []string `json:"shipping"`
	Tags       []string `json:"tags"`
}

// Urgency grades a buyer request.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// BuyerRequest is one buyer-demand record.
type BuyerRequest struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Budget              float64  `json:"budget"`
	PreferredCategories []string `json:"preferredCategories"`
	Urgency             Urgency  `json:"urgency"`
}
