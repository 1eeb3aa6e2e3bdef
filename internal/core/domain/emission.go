package domain

import "github.com/shopspring/decimal"

// EmissionTemplate is a static reference entity describing a sector-specific
// spend-based emission factor. Factor converts one unit of the template
// currency into kg of CO2-equivalent emissions.
type EmissionTemplate struct {
	Sector      string          `json:"sector"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Factor      decimal.Decimal `json:"factor"`
	Unit        string          `json:"unit"`     // factor denominator, e.g. "kg/usd"
	Currency    string          `json:"currency"` // one of the reference currencies
	Description string          `json:"description"`
}

// CalculationResult is the outcome of converting a local-currency amount into
// the template currency and applying the emission factor. It is computed on
// demand and never persisted. All values carry full precision; rounding
// happens only at the presentation boundary.
type CalculationResult struct {
	LocalValue    decimal.Decimal
	LocalCurrency string
	LocalSymbol   string

	// BaseValue is the local amount expressed in the template currency,
	// via the country's static cross-rate table.
	BaseValue    decimal.Decimal
	BaseCurrency string

	Factor decimal.Decimal
	Unit   string

	// Total is BaseValue multiplied by the emission factor, in kg CO2e.
	Total decimal.Decimal

	// GasesBreakdown is an illustrative multi-gas adjustment of the factor
	// itself (factor x 1.001). It is not derived from BaseValue.
	GasesBreakdown decimal.Decimal
}
