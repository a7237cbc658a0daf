package ports

import (
	"context"

	"aurum-admin-core/internal/domain"
)

// RateSource produces a raw bullion quote from the public rates page. A
// partial result (one marker found, the other missing) is an error, never a
// quote.
type RateSource interface {
	Fetch(ctx context.Context) (*domain.BullionQuote, error)
}
