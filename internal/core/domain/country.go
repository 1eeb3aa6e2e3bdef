package domain

import "github.com/shopspring/decimal"

// Country is a static reference entity describing where an activity took
// place and how its local currency converts into the reference currencies
// used by emission templates.
type Country struct {
	Code     string `json:"code"`     // ISO-2, e.g. "MY"
	Name     string `json:"name"`     // e.g. "Malaysia"
	Currency string `json:"currency"` // ISO-3, e.g. "MYR"
	Symbol   string `json:"symbol"`   // display symbol, e.g. "RM"

	// CrossRates maps a reference currency code to the fixed multiplier
	// "1 unit of this country's currency = X units of reference currency".
	// This is hand-maintained configuration data and is distinct from the
	// date-specific rates served by the rate store.
	CrossRates map[string]decimal.Decimal `json:"exchangeRates"`
}

// CrossRate returns the fixed multiplier into the given reference currency.
func (c Country) CrossRate(referenceCurrency string) (decimal.Decimal, bool) {
	rate, ok := c.CrossRates[referenceCurrency]
	return rate, ok
}
