package models

import "github.com/shopspring/decimal"

// ExchangeRate mirrors one row of the exchange_rates table as written by the
// external ingestion process. Both date and downloaded_at are stored as text
// (the ingester writes ISO strings), so they are scanned as strings here and
// parsed at the mapping boundary.
type ExchangeRate struct {
	ID             int64           `json:"id"`
	Date           string          `json:"date"`
	BaseCurrency   string          `json:"base_currency"`
	TargetCurrency string          `json:"target_currency"`
	Rate           decimal.Decimal `json:"rate"`
	DownloadedAt   string          `json:"downloaded_at"`
}
