// Package refdata holds the static reference tables consumed by the emission
// calculator: the supported countries with their cross-rate tables and the
// emission-factor templates. The tables are constructed and validated once at
// process start and are immutable afterwards, so they are safe to share
// between concurrent requests without synchronization.
package refdata

import (
	"fmt"

	"github.com/ecotrack/emission_tracking_app/internal/apperrors"
	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ReferenceData is the immutable bundle of countries and emission templates.
// Accessors return copies so callers cannot mutate the shared tables.
type ReferenceData struct {
	countries []domain.Country
	templates map[string]domain.EmissionTemplate
}

// New builds the reference tables and enforces the static-data invariants:
// every template factor is positive, every template currency is a reference
// currency, and every country defines a cross-rate for every currency any
// template uses. Violations surface as ErrConfiguration and must abort boot.
func New() (*ReferenceData, error) {
	rd := &ReferenceData{
		countries: countries(),
		templates: templates(),
	}
	if err := rd.validate(); err != nil {
		return nil, err
	}
	return rd, nil
}

// referenceCurrencies is the closed set of currencies templates may price in.
var referenceCurrencies = map[string]bool{"USD": true, "EUR": true, "GBP": true}

func (rd *ReferenceData) validate() error {
	v := validator.New()

	for key, tmpl := range rd.templates {
		if err := v.Var(key, "required,lowercase"); err != nil {
			return fmt.Errorf("%w: template key %q is invalid", apperrors.ErrConfiguration, key)
		}
		if err := v.Var(tmpl.Currency, "required,len=3,uppercase"); err != nil {
			return fmt.Errorf("%w: template %q has malformed currency %q", apperrors.ErrConfiguration, key, tmpl.Currency)
		}
		if !referenceCurrencies[tmpl.Currency] {
			return fmt.Errorf("%w: template %q prices in %q, which is not a reference currency", apperrors.ErrConfiguration, key, tmpl.Currency)
		}
		if tmpl.Factor.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: template %q has non-positive factor %s", apperrors.ErrConfiguration, key, tmpl.Factor)
		}
	}

	for _, country := range rd.countries {
		if err := v.Var(country.Code, "required,len=2,uppercase"); err != nil {
			return fmt.Errorf("%w: country code %q is invalid", apperrors.ErrConfiguration, country.Code)
		}
		if err := v.Var(country.Currency, "required,len=3,uppercase"); err != nil {
			return fmt.Errorf("%w: country %q has malformed currency %q", apperrors.ErrConfiguration, country.Code, country.Currency)
		}
		for key, tmpl := range rd.templates {
			rate, ok := country.CrossRate(tmpl.Currency)
			if !ok {
				return fmt.Errorf("%w: country %q has no cross-rate for %s (required by template %q)", apperrors.ErrConfiguration, country.Code, tmpl.Currency, key)
			}
			if rate.LessThanOrEqual(decimal.Zero) {
				return fmt.Errorf("%w: country %q has non-positive cross-rate for %s", apperrors.ErrConfiguration, country.Code, tmpl.Currency)
			}
		}
	}

	return nil
}

// Country returns the country for the given ISO-2 code.
func (rd *ReferenceData) Country(code string) (domain.Country, bool) {
	for _, c := range rd.countries {
		if c.Code == code {
			return c, true
		}
	}
	return domain.Country{}, false
}

// Template returns the emission template for the given key.
func (rd *ReferenceData) Template(key string) (domain.EmissionTemplate, bool) {
	tmpl, ok := rd.templates[key]
	return tmpl, ok
}

// Countries returns a copy of the country list.
func (rd *ReferenceData) Countries() []domain.Country {
	out := make([]domain.Country, len(rd.countries))
	copy(out, rd.countries)
	return out
}

// Templates returns a copy of the template map.
func (rd *ReferenceData) Templates() map[string]domain.EmissionTemplate {
	out := make(map[string]domain.EmissionTemplate, len(rd.templates))
	for k, v := range rd.templates {
		out[k] = v
	}
	return out
}
