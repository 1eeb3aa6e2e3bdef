package dto

import (
	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	"github.com/ecotrack/emission_tracking_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse is the wire form of one stored rate row. Field names
// match the columns of the exchange_rates table, which is the payload shape
// the frontend already consumes.
type ExchangeRateResponse struct {
	ID             int64           `json:"id"`
	Date           string          `json:"date"`
	BaseCurrency   string          `json:"base_currency"`
	TargetCurrency string          `json:"target_currency"`
	Rate           decimal.Decimal `json:"rate"`
	DownloadedAt   string          `json:"downloaded_at"`
}

// ToExchangeRateResponse converts a domain record to its response DTO.
func ToExchangeRateResponse(rate *domain.ExchangeRateRecord) ExchangeRateResponse {
	row := mapping.ToModelExchangeRate(*rate)
	return ExchangeRateResponse{
		ID:             row.ID,
		Date:           row.Date,
		BaseCurrency:   row.BaseCurrency,
		TargetCurrency: row.TargetCurrency,
		Rate:           row.Rate,
		DownloadedAt:   row.DownloadedAt,
	}
}

// AvailableDatesRequest asks for the dates stored for a currency pair.
type AvailableDatesRequest struct {
	BaseCurrency   string `json:"baseCurrency" binding:"required"`
	TargetCurrency string `json:"targetCurrency" binding:"required"`
}

// AvailableDateResponse is one available date, newest first in the sequence.
type AvailableDateResponse struct {
	Date string `json:"date"`
}

// ToAvailableDatesResponse converts a date list to response DTOs.
func ToAvailableDatesResponse(dates []string) []AvailableDateResponse {
	responses := make([]AvailableDateResponse, len(dates))
	for i, d := range dates {
		responses[i] = AvailableDateResponse{Date: d}
	}
	return responses
}
