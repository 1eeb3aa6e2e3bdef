package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ecotrack/emission_tracking_app/internal/apperrors"
	portsrepo "github.com/ecotrack/emission_tracking_app/internal/core/ports/repositories"
	"github.com/ecotrack/emission_tracking_app/internal/repositories/database/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"
)

const testSchema = `
CREATE TABLE exchange_rates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT,
    base_currency TEXT,
    target_currency TEXT,
    rate REAL,
    downloaded_at TEXT
);
`

// --- Test Suite ---
type ExchangeRateRepositoryTestSuite struct {
	suite.Suite
	db   *sql.DB
	repo portsrepo.ExchangeRateReader
}

func (suite *ExchangeRateRepositoryTestSuite) SetupTest() {
	db, err := sql.Open("sqlite3", ":memory:")
	suite.Require().NoError(err)
	_, err = db.Exec(testSchema)
	suite.Require().NoError(err)

	suite.db = db
	suite.repo = sqlite.NewExchangeRateRepository(db)
}

func (suite *ExchangeRateRepositoryTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *ExchangeRateRepositoryTestSuite) insertRate(date, base, target string, rate float64, downloadedAt string) {
	_, err := suite.db.Exec(
		`INSERT INTO exchange_rates (date, base_currency, target_currency, rate, downloaded_at) VALUES (?, ?, ?, ?, ?)`,
		date, base, target, rate, downloadedAt,
	)
	suite.Require().NoError(err)
}

// --- Test Cases ---

func (suite *ExchangeRateRepositoryTestSuite) TestFindRate_PicksLatestDownload() {
	// Two downloads of the same triple; the later downloaded_at wins.
	suite.insertRate("2024-03-15", "USD", "MYR", 4.40, "2024-03-15T06:00:00Z")
	suite.insertRate("2024-03-15", "USD", "MYR", 4.45, "2024-03-15T12:00:00Z")

	record, err := suite.repo.FindRate(context.Background(), "2024-03-15", "USD", "MYR")

	suite.Require().NoError(err)
	suite.Equal("4.45", record.Rate.String())
	suite.Equal("2024-03-15", record.Date)
	suite.Equal("USD", record.BaseCurrency)
	suite.Equal("MYR", record.TargetCurrency)
}

func (suite *ExchangeRateRepositoryTestSuite) TestFindRate_IDBreaksDownloadTies() {
	// Identical downloaded_at; the higher rowid wins so repeated reads agree.
	suite.insertRate("2024-03-15", "USD", "MYR", 4.40, "2024-03-15T06:00:00Z")
	suite.insertRate("2024-03-15", "USD", "MYR", 4.45, "2024-03-15T06:00:00Z")

	record, err := suite.repo.FindRate(context.Background(), "2024-03-15", "USD", "MYR")

	suite.Require().NoError(err)
	suite.Equal("4.45", record.Rate.String())
	suite.Equal(int64(2), record.RateID)
}

func (suite *ExchangeRateRepositoryTestSuite) TestFindRate_UppercasesCurrencies() {
	suite.insertRate("2024-03-15", "USD", "MYR", 4.45, "2024-03-15T06:00:00Z")

	record, err := suite.repo.FindRate(context.Background(), "2024-03-15", "usd", "myr")

	suite.Require().NoError(err)
	suite.Equal("USD", record.BaseCurrency)
}

func (suite *ExchangeRateRepositoryTestSuite) TestFindRate_NotFound() {
	suite.insertRate("2024-03-15", "USD", "MYR", 4.45, "2024-03-15T06:00:00Z")

	record, err := suite.repo.FindRate(context.Background(), "2024-03-16", "USD", "MYR")

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExchangeRateRepositoryTestSuite) TestFindRate_ParsesBareTimestamps() {
	// The ingestion process writes zone-less timestamps on some platforms.
	suite.insertRate("2024-03-15", "USD", "MYR", 4.45, "2024-03-15 06:00:00.123456")

	record, err := suite.repo.FindRate(context.Background(), "2024-03-15", "USD", "MYR")

	suite.Require().NoError(err)
	suite.Equal(2024, record.DownloadedAt.Year())
}

func (suite *ExchangeRateRepositoryTestSuite) TestListAvailableDates_NewestFirstDistinct() {
	suite.insertRate("2024-03-13", "USD", "MYR", 4.41, "2024-03-13T06:00:00Z")
	suite.insertRate("2024-03-15", "USD", "MYR", 4.44, "2024-03-15T06:00:00Z")
	suite.insertRate("2024-03-15", "USD", "MYR", 4.45, "2024-03-15T12:00:00Z")
	suite.insertRate("2024-03-14", "USD", "MYR", 4.43, "2024-03-14T06:00:00Z")
	suite.insertRate("2024-03-14", "EUR", "MYR", 4.80, "2024-03-14T06:00:00Z")

	dates, err := suite.repo.ListAvailableDates(context.Background(), "USD", "MYR")

	suite.Require().NoError(err)
	suite.Equal([]string{"2024-03-15", "2024-03-14", "2024-03-13"}, dates)
}

func (suite *ExchangeRateRepositoryTestSuite) TestListAvailableDates_EmptyForUnknownPair() {
	suite.insertRate("2024-03-15", "USD", "MYR", 4.45, "2024-03-15T06:00:00Z")

	dates, err := suite.repo.ListAvailableDates(context.Background(), "USD", "JPY")

	suite.Require().NoError(err)
	suite.NotNil(dates)
	suite.Empty(dates)
}

func TestExchangeRateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateRepositoryTestSuite))
}
