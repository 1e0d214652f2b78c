package market

// FallbackWarning is the non-blocking notice shown whenever the marketplace
// API could not be reached and fallback data is substituted.
const FallbackWarning = "Marketplace API unavailable. Showing fallback data."

// FallbackListings is the fixed data set substituted when the listings call
// fails. Returned fresh on each call so callers can mutate their copy.
func FallbackListings() []Listing {
	return []Listing{
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
	}
}

// FallbackRequests is the fixed data set substituted when the requests call
// fails.
func FallbackRequests() []BuyerRequest {
	return []BuyerRequest{
		{
			ID:                  "req-1",
			Title:               "Need a remote-work setup under $1,500",
			Budget:              1500,
			PreferredCategories: []string{"Electronics", "Furniture"},
			Urgency:             UrgencyHigh,
		},
	}
}
