package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecotrack/emission_tracking_app/internal/apperrors"
	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	"github.com/ecotrack/emission_tracking_app/internal/models"
	"github.com/ecotrack/emission_tracking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements the ports ExchangeRateReader interface
// using pgxpool, for deployments where the rate store lives in Postgres
// instead of the local SQLite file. Query semantics are identical to the
// sqlite adapter.
type PgxExchangeRateRepository struct {
	pool *pgxpool.Pool
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(pool *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{pool: pool}
}

// FindRate retrieves the most recently downloaded rate for the triple, ties
// on downloaded_at broken by highest id.
func (r *PgxExchangeRateRepository) FindRate(ctx context.Context, date, baseCurrency, targetCurrency string) (*domain.ExchangeRateRecord, error) {
	query := `
		SELECT id, date, base_currency, target_currency, rate, downloaded_at
		FROM exchange_rates
		WHERE date = $1 AND base_currency = $2 AND target_currency = $3
		ORDER BY downloaded_at DESC, id DESC
		LIMIT 1;
	`

	var row models.ExchangeRate
	err := r.pool.QueryRow(ctx, query, date, strings.ToUpper(baseCurrency), strings.ToUpper(targetCurrency)).Scan(
		&row.ID, &row.Date, &row.BaseCurrency, &row.TargetCurrency, &row.Rate, &row.DownloadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

// ListAvailableDates returns the distinct dates stored for the pair, newest first.
func (r *PgxExchangeRateRepository) ListAvailableDates(ctx context.Context, baseCurrency, targetCurrency string) ([]string, error) {
	query := `
		SELECT DISTINCT date
		FROM exchange_rates
		WHERE base_currency = $1 AND target_currency = $2
		ORDER BY date DESC;
	`

	rows, err := r.pool.Query(ctx, query, strings.ToUpper(baseCurrency), strings.ToUpper(targetCurrency))
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
