package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateRecord is one observation of a downloaded exchange rate:
// 1 unit of BaseCurrency = Rate units of TargetCurrency on Date.
// The same (date, base, target) triple may have been re-downloaded; the
// record with the latest DownloadedAt is authoritative.
type ExchangeRateRecord struct {
	RateID         int64           `json:"id"`
	Date           string          `json:"date"` // calendar day, "2006-01-02"
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	DownloadedAt   time.Time       `json:"downloadedAt"`
}
