package services

import (
	"context"

	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
)

// ExchangeRateReaderSvc defines read operations for historical exchange rates.
type ExchangeRateReaderSvc interface {
	// GetRate retrieves the authoritative stored rate for a date and pair.
	GetRate(ctx context.Context, date, baseCurrency, targetCurrency string) (*domain.ExchangeRateRecord, error)

	// ListAvailableDates retrieves the distinct dates stored for a pair,
	// newest first.
	ListAvailableDates(ctx context.Context, baseCurrency, targetCurrency string) ([]string, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces.
// The rate store is read-only from this application, so the facade currently
// only embeds the reader.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
}
