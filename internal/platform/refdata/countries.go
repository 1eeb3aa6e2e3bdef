package refdata

import (
	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// countries is the fixed list of supported countries with their hand-maintained
// cross-rate tables: 1 unit of local currency = X units of reference currency.
// These multipliers are configuration constants, not derived from the rate store.
func countries() []domain.Country {
	return []domain.Country{
		{
			Code:     "MY",
			Name:     "Malaysia",
			Currency: "MYR",
			Symbol:   "RM",
			CrossRates: map[string]decimal.Decimal{
				"USD": decimal.RequireFromString("0.21"),
				"EUR": decimal.RequireFromString("0.19"),
				"GBP": decimal.RequireFromString("0.17"),
			},
		},
		{
			Code:     "SG",
			Name:     "Singapore",
			Currency: "SGD",
			Symbol:   "S$",
			CrossRates: map[string]decimal.Decimal{
				"USD": decimal.RequireFromString("0.74"),
				"EUR": decimal.RequireFromString("0.69"),
				"GBP": decimal.RequireFromString("0.59"),
			},
		},
		{
			Code:     "TH",
			Name:     "Thailand",
			Currency: "THB",
			Symbol:   "฿",
			CrossRates: map[string]decimal.Decimal{
				"USD": decimal.RequireFromString("0.028"),
				"EUR": decimal.RequireFromString("0.026"),
				"GBP": decimal.RequireFromString("0.022"),
			},
		},
		{
			Code:     "ID",
			Name:     "Indonesia",
			Currency: "IDR",
			Symbol:   "Rp",
			CrossRates: map[string]decimal.Decimal{
				"USD": decimal.RequireFromString("0.000064"),
				"EUR": decimal.RequireFromString("0.000059"),
				"GBP": decimal.RequireFromString("0.000051"),
			},
		},
		{
			Code:     "VN",
			Name:     "Vietnam",
			Currency: "VND",
			Symbol:   "₫",
			CrossRates: map[string]decimal.Decimal{
				"USD": decimal.RequireFromString("0.000041"),
				"EUR": decimal.RequireFromString("0.000038"),
				"GBP": decimal.RequireFromString("0.000033"),
			},
		},
		{
			Code:     "PH",
			Name:     "Philippines",
			Currency: "PHP",
			Symbol:   "₱",
			CrossRates: map[string]decimal.Decimal{
				"USD": decimal.RequireFromString("0.018"),
				"EUR": decimal.RequireFromString("0.016"),
				"GBP": decimal.RequireFromString("0.014"),
			},
		},
	}
}
