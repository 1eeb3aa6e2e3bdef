package mapping

import (
	"fmt"
	"time"

	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	"github.com/ecotrack/emission_tracking_app/internal/models"
)

// downloadedAtLayouts are the timestamp formats the ingestion process has been
// observed to write: RFC 3339 and a bare ISO timestamp without zone.
var downloadedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
}

// ToDomainExchangeRate converts a stored row into the domain record.
func ToDomainExchangeRate(m models.ExchangeRate) (domain.ExchangeRateRecord, error) {
	downloadedAt, err := parseDownloadedAt(m.DownloadedAt)
	if err != nil {
		return domain.ExchangeRateRecord{}, err
	}
	return domain.ExchangeRateRecord{
		RateID:         m.ID,
		Date:           m.Date,
		BaseCurrency:   m.BaseCurrency,
		TargetCurrency: m.TargetCurrency,
		Rate:           m.Rate,
		DownloadedAt:   downloadedAt,
	}, nil
}

// ToModelExchangeRate converts a domain record into its storage row form.
func ToModelExchangeRate(r domain.ExchangeRateRecord) models.ExchangeRate {
	return models.ExchangeRate{
		ID:             r.RateID,
		Date:           r.Date,
		BaseCurrency:   r.BaseCurrency,
		TargetCurrency: r.TargetCurrency,
		Rate:           r.Rate,
		DownloadedAt:   r.DownloadedAt.Format(time.RFC3339Nano),
	}
}

func parseDownloadedAt(value string) (time.Time, error) {
	for _, layout := range downloadedAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable downloaded_at %q", value)
}
