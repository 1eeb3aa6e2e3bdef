package dto

import (
	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateEmissionRequest carries the form inputs for one calculation.
// Amount is deliberately not required: an empty or unparsable amount is
// treated as zero by the calculator, matching the live-updating form.
type CalculateEmissionRequest struct {
	Amount      string `json:"amount"`
	CountryCode string `json:"countryCode" binding:"required,len=2,uppercase"`
	TemplateKey string `json:"templateKey" binding:"required"`
}

// CalculationResultResponse is the presentation form of a CalculationResult.
// Monetary figures are rounded to 2 decimal places and the gases breakdown to
// 3, as the form displays them; the underlying computation is full precision.
type CalculationResultResponse struct {
	LocalValue     string          `json:"localValue"`
	LocalCurrency  string          `json:"localCurrency"`
	LocalSymbol    string          `json:"localSymbol"`
	BaseValue      string          `json:"baseValue"`
	BaseCurrency   string          `json:"baseCurrency"`
	Factor         decimal.Decimal `json:"factor"`
	Unit           string          `json:"unit"`
	Total          string          `json:"total"`
	GasesBreakdown string          `json:"gasesBreakdown"`
}

// ToCalculationResultResponse applies presentation rounding to a full-precision result.
func ToCalculationResultResponse(result *domain.CalculationResult) CalculationResultResponse {
	return CalculationResultResponse{
		LocalValue:     result.LocalValue.String(),
		LocalCurrency:  result.LocalCurrency,
		LocalSymbol:    result.LocalSymbol,
		BaseValue:      result.BaseValue.StringFixed(2),
		BaseCurrency:   result.BaseCurrency,
		Factor:         result.Factor,
		Unit:           result.Unit,
		Total:          result.Total.StringFixed(2),
		GasesBreakdown: result.GasesBreakdown.StringFixed(3),
	}
}

// CountryResponse is the wire form of one static country entry.
type CountryResponse struct {
	Code          string                     `json:"code"`
	Name          string                     `json:"name"`
	Currency      string                     `json:"currency"`
	Symbol        string                     `json:"symbol"`
	ExchangeRates map[string]decimal.Decimal `json:"exchangeRates"`
}

// ToCountryResponse converts a domain country to its response DTO.
func ToCountryResponse(c domain.Country) CountryResponse {
	return CountryResponse{
		Code:          c.Code,
		Name:          c.Name,
		Currency:      c.Currency,
		Symbol:        c.Symbol,
		ExchangeRates: c.CrossRates,
	}
}

// ToListCountryResponse converts the country list to response DTOs.
func ToListCountryResponse(countries []domain.Country) []CountryResponse {
	responses := make([]CountryResponse, len(countries))
	for i, c := range countries {
		responses[i] = ToCountryResponse(c)
	}
	return responses
}

// EmissionTemplateResponse is the wire form of one emission template.
type EmissionTemplateResponse struct {
	Sector      string          `json:"sector"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Factor      decimal.Decimal `json:"factor"`
	Unit        string          `json:"unit"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}

// ToTemplateMapResponse converts the template map to response DTOs keyed by template key.
func ToTemplateMapResponse(templates map[string]domain.EmissionTemplate) map[string]EmissionTemplateResponse {
	responses := make(map[string]EmissionTemplateResponse, len(templates))
	for key, t := range templates {
		responses[key] = EmissionTemplateResponse{
			Sector:      t.Sector,
			Category:    t.Category,
			Name:        t.Name,
			Factor:      t.Factor,
			Unit:        t.Unit,
			Currency:    t.Currency,
			Description: t.Description,
		}
	}
	return responses
}

// MidMarketRateResponse is the informational mid-market line: the stored
// date-specific rate for (template currency -> local currency) combined with
// the country's static cross-rate, rounded to 4 decimal places for display.
type MidMarketRateResponse struct {
	Date           string          `json:"date"`
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	DisplayRate    string          `json:"displayRate"`
}
