package repositories

import (
	"context"

	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
)

// ExchangeRateReader defines the read-only queries served by the rate store.
// The store is populated by an external ingestion process; this application
// never writes to it.
type ExchangeRateReader interface {
	// FindRate retrieves the rate for the (date, base, target) triple with
	// the most recent downloaded_at, ties broken by highest surrogate id.
	FindRate(ctx context.Context, date, baseCurrency, targetCurrency string) (*domain.ExchangeRateRecord, error)

	// ListAvailableDates returns the distinct dates for which at least one
	// record exists for the pair, newest first. An empty result is not an error.
	ListAvailableDates(ctx context.Context, baseCurrency, targetCurrency string) ([]string, error)
}
