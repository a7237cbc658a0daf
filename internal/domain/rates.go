package domain

// BullionQuote holds the raw per-gram prices scraped from the public rates
// page, in whole rupees.
type BullionQuote struct {
	Gold24PerGram int
	Gold22PerGram int
}

// MetalRates is the display-ready rates payload. Headline gold prices are
// quoted per 10 grams and silver per kilogram, matching local market
// convention. When no rate is available each field is RateUnavailable.
type MetalRates struct {
	Gold24K     string `json:"gold_24k"`
	Gold22K     string `json:"gold_22k"`
	Silver      string `json:"silver"`
	LastUpdated string `json:"lastUpdated"`
}

// RateUnavailable is the sentinel returned when no rate has ever been
// fetched successfully. Sentinel results are never cached.
const RateUnavailable = "N/A"
