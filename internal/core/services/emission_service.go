package services

import (
	"fmt"

	"github.com/ecotrack/emission_tracking_app/internal/apperrors"
	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	"github.com/ecotrack/emission_tracking_app/internal/platform/refdata"
	"github.com/shopspring/decimal"
)

// gasesAdjustment is the fixed illustrative multi-gas multiplier applied to
// the emission factor for the gases breakdown line.
var gasesAdjustment = decimal.RequireFromString("1.001")

// EmissionService performs the conversion and emissions calculation behind the
// tracking form. It is stateless apart from the immutable reference tables and
// is safe for concurrent use.
type EmissionService struct {
	refData *refdata.ReferenceData
}

// NewEmissionService creates a new EmissionService over the given reference tables.
func NewEmissionService(refData *refdata.ReferenceData) *EmissionService {
	return &EmissionService{refData: refData}
}

// Calculate converts a user-entered local-currency amount into the template's
// currency via the country's static cross-rate table and applies the emission
// factor. Unparsable, empty or negative amounts are treated as zero; whether
// the user has entered anything at all is the caller's concern. The result
// carries full precision; rounding belongs to the presentation boundary.
func (s *EmissionService) Calculate(amount, countryCode, templateKey string) (*domain.CalculationResult, error) {
	template, ok := s.refData.Template(templateKey)
	if !ok {
		return nil, fmt.Errorf("%w: unknown emission template %q", apperrors.ErrValidation, templateKey)
	}
	country, ok := s.refData.Country(countryCode)
	if !ok {
		return nil, fmt.Errorf("%w: unknown country %q", apperrors.ErrValidation, countryCode)
	}

	localValue := parseAmount(amount)

	// The static cross-rate is the conversion constant for the emissions
	// total. It is not the date-specific stored rate; see DisplayRate.
	crossRate, ok := country.CrossRate(template.Currency)
	if !ok {
		return nil, fmt.Errorf("%w: country %q has no cross-rate for %s", apperrors.ErrConfiguration, country.Code, template.Currency)
	}

	baseValue := localValue.Mul(crossRate)

	return &domain.CalculationResult{
		LocalValue:     localValue,
		LocalCurrency:  country.Currency,
		LocalSymbol:    country.Symbol,
		BaseValue:      baseValue,
		BaseCurrency:   template.Currency,
		Factor:         template.Factor,
		Unit:           template.Unit,
		Total:          baseValue.Mul(template.Factor),
		GasesBreakdown: template.Factor.Mul(gasesAdjustment),
	}, nil
}

// DisplayRate combines a stored date-specific rate with the country's static
// cross-rate for the template currency, producing the informational
// "mid-market rate" figure the form shows alongside the calculation. The two
// rate sources are deliberately kept separate: this value never feeds the
// emissions total.
func (s *EmissionService) DisplayRate(storedRate decimal.Decimal, countryCode, templateKey string) (decimal.Decimal, error) {
	template, ok := s.refData.Template(templateKey)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown emission template %q", apperrors.ErrValidation, templateKey)
	}
	country, ok := s.refData.Country(countryCode)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown country %q", apperrors.ErrValidation, countryCode)
	}
	crossRate, ok := country.CrossRate(template.Currency)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: country %q has no cross-rate for %s", apperrors.ErrConfiguration, country.Code, template.Currency)
	}
	return storedRate.Mul(crossRate), nil
}

// GetCountry retrieves a single country by ISO-2 code.
func (s *EmissionService) GetCountry(code string) (domain.Country, error) {
	country, ok := s.refData.Country(code)
	if !ok {
		return domain.Country{}, fmt.Errorf("%w: unknown country %q", apperrors.ErrValidation, code)
	}
	return country, nil
}

// GetTemplate retrieves a single emission template by key.
func (s *EmissionService) GetTemplate(key string) (domain.EmissionTemplate, error) {
	template, ok := s.refData.Template(key)
	if !ok {
		return domain.EmissionTemplate{}, fmt.Errorf("%w: unknown emission template %q", apperrors.ErrValidation, key)
	}
	return template, nil
}

// ListCountries returns the static country list.
func (s *EmissionService) ListCountries() []domain.Country {
	return s.refData.Countries()
}

// ListTemplates returns the static emission template map.
func (s *EmissionService) ListTemplates() map[string]domain.EmissionTemplate {
	return s.refData.Templates()
}

func parseAmount(amount string) decimal.Decimal {
	value, err := decimal.NewFromString(amount)
	if err != nil || value.IsNegative() {
		return decimal.Zero
	}
	return value
}
