package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ecotrack/emission_tracking_app/internal/apperrors"
	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	"github.com/ecotrack/emission_tracking_app/internal/models"
	"github.com/ecotrack/emission_tracking_app/internal/utils/mapping"
)

// ExchangeRateRepository implements the ports ExchangeRateReader interface
// against the local SQLite file written by the ingestion scraper.
type ExchangeRateRepository struct {
	db *sql.DB
}

// NewExchangeRateRepository creates a new SQLite-backed rate repository.
func NewExchangeRateRepository(db *sql.DB) *ExchangeRateRepository {
	return &ExchangeRateRepository{db: db}
}

// FindRate retrieves the rate for the (date, base, target) triple with the
// most recent downloaded_at. Re-downloads of the same triple produce multiple
// rows; the id tie-break makes the choice deterministic when downloaded_at
// collides.
func (r *ExchangeRateRepository) FindRate(ctx context.Context, date, baseCurrency, targetCurrency string) (*domain.ExchangeRateRecord, error) {
	query := `
		SELECT id, date, base_currency, target_currency, rate, downloaded_at
		FROM exchange_rates
		WHERE date = ? AND base_currency = ? AND target_currency = ?
		ORDER BY downloaded_at DESC, id DESC
		LIMIT 1;
	`

	var row models.ExchangeRate
	err := r.db.QueryRowContext(ctx, query, date, strings.ToUpper(baseCurrency), strings.ToUpper(targetCurrency)).Scan(
		&row.ID, &row.Date, &row.BaseCurrency, &row.TargetCurrency, &row.Rate, &row.DownloadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no exchange rate for %s %s/%s", apperrors.ErrNotFound, date, baseCurrency, targetCurrency)
		}
		return nil, fmt.Errorf("%w: failed to find exchange rate: %v", apperrors.ErrStorage, err)
	}

	record, err := mapping.ToDomainExchangeRate(row)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return &record, nil
}

// ListAvailableDates returns the distinct dates stored for the pair, newest
// first. No matching rows is a valid empty result, not an error.
func (r *ExchangeRateRepository) ListAvailableDates(ctx context.Context, baseCurrency, targetCurrency string) ([]string, error) {
	query := `
		SELECT DISTINCT date
		FROM exchange_rates
		WHERE base_currency = ? AND target_currency = ?
		ORDER BY date DESC;
	`

	rows, err := r.db.QueryContext(ctx, query, strings.ToUpper(baseCurrency), strings.ToUpper(targetCurrency))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list available dates: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: failed to scan date: %v", apperrors.ErrStorage, err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating dates: %v", apperrors.ErrStorage, err)
	}

	return dates, nil
}
