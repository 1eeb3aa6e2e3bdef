package refdata

import (
	"testing"

	"github.com/ecotrack/emission_tracking_app/internal/apperrors"
	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BuiltInTablesAreValid(t *testing.T) {
	rd, err := New()
	require.NoError(t, err)

	assert.Len(t, rd.Countries(), 6)
	assert.Len(t, rd.Templates(), 9)

	country, ok := rd.Country("MY")
	require.True(t, ok)
	assert.Equal(t, "MYR", country.Currency)

	template, ok := rd.Template("stone")
	require.True(t, ok)
	assert.Equal(t, "USD", template.Currency)
	assert.Equal(t, "0.58", template.Factor.String())
}

func TestNew_EveryCountryCoversEveryTemplateCurrency(t *testing.T) {
	rd, err := New()
	require.NoError(t, err)

	for _, country := range rd.Countries() {
		for key, template := range rd.Templates() {
			rate, ok := country.CrossRate(template.Currency)
			require.True(t, ok, "country %s missing cross-rate for template %s", country.Code, key)
			assert.True(t, rate.GreaterThan(decimal.Zero))
		}
	}
}

func TestValidate_MissingCrossRate(t *testing.T) {
	rd := &ReferenceData{
		countries: []domain.Country{{
			Code:     "MY",
			Name:     "Malaysia",
			Currency: "MYR",
			CrossRates: map[string]decimal.Decimal{
				"USD": decimal.RequireFromString("0.21"),
			},
		}},
		templates: map[string]domain.EmissionTemplate{
			"poultry": {Name: "Poultry", Factor: decimal.RequireFromString("0.71"), Currency: "EUR"},
		},
	}

	err := rd.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestValidate_NonPositiveFactor(t *testing.T) {
	rd := &ReferenceData{
		templates: map[string]domain.EmissionTemplate{
			"stone": {Name: "Stone", Factor: decimal.Zero, Currency: "USD"},
		},
	}

	err := rd.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestValidate_UnknownReferenceCurrency(t *testing.T) {
	rd := &ReferenceData{
		templates: map[string]domain.EmissionTemplate{
			"stone": {Name: "Stone", Factor: decimal.RequireFromString("0.58"), Currency: "JPY"},
		},
	}

	err := rd.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	rd, err := New()
	require.NoError(t, err)

	countries := rd.Countries()
	countries[0] = domain.Country{Code: "ZZ"}
	_, ok := rd.Country("ZZ")
	assert.False(t, ok)

	templates := rd.Templates()
	delete(templates, "stone")
	_, ok = rd.Template("stone")
	assert.True(t, ok)
}
