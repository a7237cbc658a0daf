package application

import (
	"context"
	"math"
	"sync"
	"time"

	"aurum-admin-core/internal/domain"
	"aurum-admin-core/internal/ports"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CacheInterval is how long a fetched rate is served without re-fetching
const CacheInterval = time.Hour

// silverRatio derives the silver per-gram price from the 24K gold per-gram
// price. A deliberate approximation, not a live silver quote.
const silverRatio = 0.0126

// RatesService serves reference metal prices with a single-entry cache.
// On fetch failure a previously cached value is returned unchanged; with no
// prior value a sentinel is returned and never cached, so the next call
// retries immediately. Callers never see an error.
type RatesService struct {
	source ports.RateSource
	logger zerolog.Logger

	mu        sync.Mutex
	cached    *domain.MetalRates
	fetchedAt time.Time
}

// NewRatesService creates a new rates service in the no-cache state
func NewRatesService(source ports.RateSource, logger zerolog.Logger) *RatesService {
	return &RatesService{
		source: source,
		logger: logger,
	}
}

// Current returns the rates to display, honoring the cache interval
func (s *RatesService) Current(ctx context.Context) *domain.MetalRates {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.fetchedAt) < CacheInterval {
		return s.cached
	}

	quote, err := s.source.Fetch(ctx)
	if err != nil {
		if s.cached != nil {
			s.logger.Warn().Err(err).Msg("Rate fetch failed, serving stale value")
			return s.cached
		}
		s.logger.Warn().Err(err).Msg("Rate fetch failed with no prior value, serving sentinel")
		return &domain.MetalRates{
			Gold24K:     domain.RateUnavailable,
			Gold22K:     domain.RateUnavailable,
			Silver:      domain.RateUnavailable,
			LastUpdated: domain.RateUnavailable,
		}
	}

	now := time.Now()
	s.cached = DeriveRates(quote, now)
	s.fetchedAt = now

	s.logger.Info().
		Str("gold24k", s.cached.Gold24K).
		Str("gold22k", s.cached.Gold22K).
		Str("silver", s.cached.Silver).
		Msg("Refreshed metal rates")

	return s.cached
}

var ratePrinter = message.NewPrinter(language.English)

// DeriveRates turns a raw per-gram quote into the display payload: gold
// quoted per 10 grams, silver derived from 24K gold and quoted per
// kilogram.
func DeriveRates(quote *domain.BullionQuote, fetchedAt time.Time) *domain.MetalRates {
	silverPerGram := int(math.Round(float64(quote.Gold24PerGram) * silverRatio))

	return &domain.MetalRates{
		Gold24K:     formatRupees(quote.Gold24PerGram * 10),
		Gold22K:     formatRupees(quote.Gold22PerGram * 10),
		Silver:      formatRupees(silverPerGram * 1000),
		LastUpdated: fetchedAt.Format(time.RFC3339),
	}
}

// formatRupees renders an integer amount with thousands grouping and the
// currency prefix, e.g. 72450 -> "₹72,450".
func formatRupees(amount int) string {
	return ratePrinter.Sprintf("₹%d", amount)
}
