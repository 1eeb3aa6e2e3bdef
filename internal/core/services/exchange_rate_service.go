package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ecotrack/emission_tracking_app/internal/apperrors"
	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	portsrepo "github.com/ecotrack/emission_tracking_app/internal/core/ports/repositories"
)

// rateDateLayout is the calendar-day form the ingestion process writes.
const rateDateLayout = "2006-01-02"

// ExchangeRateService provides read-only business logic over the historical
// rate store.
type ExchangeRateService struct {
	rateRepo portsrepo.ExchangeRateReader
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateReader) *ExchangeRateService {
	return &ExchangeRateService{rateRepo: rateRepo}
}

// GetRate retrieves the authoritative stored rate for a specific date and
// currency pair: the matching row with the latest downloaded_at.
func (s *ExchangeRateService) GetRate(ctx context.Context, date, baseCurrency, targetCurrency string) (*domain.ExchangeRateRecord, error) {
	if date == "" || baseCurrency == "" || targetCurrency == "" {
		return nil, fmt.Errorf("%w: date, baseCurrency and targetCurrency are required", apperrors.ErrValidation)
	}
	if _, err := time.Parse(rateDateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be a calendar date in YYYY-MM-DD form", apperrors.ErrValidation)
	}
	baseCurrency, targetCurrency, err := normalizePair(baseCurrency, targetCurrency)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.FindRate(ctx, date, baseCurrency, targetCurrency)
	if err != nil {
		// Repository layer maps not-found and storage errors.
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// ListAvailableDates retrieves the distinct dates for which the pair has at
// least one stored record, newest first. An empty result is a valid success.
func (s *ExchangeRateService) ListAvailableDates(ctx context.Context, baseCurrency, targetCurrency string) ([]string, error) {
	if baseCurrency == "" || targetCurrency == "" {
		return nil, fmt.Errorf("%w: baseCurrency and targetCurrency are required", apperrors.ErrValidation)
	}
	baseCurrency, targetCurrency, err := normalizePair(baseCurrency, targetCurrency)
	if err != nil {
		return nil, err
	}

	dates, err := s.rateRepo.ListAvailableDates(ctx, baseCurrency, targetCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to list available dates in service: %w", err)
	}
	if dates == nil {
		dates = []string{}
	}
	return dates, nil
}

func normalizePair(baseCurrency, targetCurrency string) (string, string, error) {
	baseCurrency = strings.ToUpper(baseCurrency)
	targetCurrency = strings.ToUpper(targetCurrency)
	if len(baseCurrency) != 3 || len(targetCurrency) != 3 {
		return "", "", fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	return baseCurrency, targetCurrency, nil
}
