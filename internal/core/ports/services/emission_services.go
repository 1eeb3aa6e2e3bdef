package services

import (
	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmissionCalculatorSvc defines the pure computations behind the emissions form.
type EmissionCalculatorSvc interface {
	// Calculate converts a user-entered local-currency amount into the
	// template currency and applies the template's emission factor.
	// Unparsable or empty amounts are treated as zero, never as an error.
	Calculate(amount, countryCode, templateKey string) (*domain.CalculationResult, error)

	// DisplayRate combines a stored date-specific rate with the country's
	// static cross-rate for the template currency. This is the informational
	// "mid-market rate" line only; it plays no part in Calculate.
	DisplayRate(storedRate decimal.Decimal, countryCode, templateKey string) (decimal.Decimal, error)
}

// ReferenceDataSvc exposes the immutable reference tables to the UI collaborator.
type ReferenceDataSvc interface {
	ListCountries() []domain.Country
	ListTemplates() map[string]domain.EmissionTemplate

	// GetCountry retrieves a single country by ISO-2 code.
	GetCountry(code string) (domain.Country, error)

	// GetTemplate retrieves a single emission template by key.
	GetTemplate(key string) (domain.EmissionTemplate, error)
}

// EmissionSvcFacade combines the calculator and reference data interfaces.
type EmissionSvcFacade interface {
	EmissionCalculatorSvc
	ReferenceDataSvc
}
