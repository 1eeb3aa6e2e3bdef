package refdata

import (
	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// templates is the fixed map of spend-based emission templates, keyed by
// template key. Factors are kg CO2e per unit of the template currency.
func templates() map[string]domain.EmissionTemplate {
	return map[string]domain.EmissionTemplate{
		"crude_petroleum": {
			Sector:      "Energy",
			Category:    "Fuel",
			Name:        "Crude petroleum and natural gas",
			Factor:      decimal.RequireFromString("0.66"),
			Unit:        "kg/gbp",
			Currency:    "GBP",
			Description: "Emissions from crude petroleum and natural gas production",
		},
		"motor_gasoline": {
			Sector:      "Energy",
			Category:    "Fuel",
			Name:        "Motor gasoline",
			Factor:      decimal.RequireFromString("0.6"),
			Unit:        "kg/gbp",
			Currency:    "GBP",
			Description: "Emissions from motor gasoline consumption",
		},
		"poultry": {
			Sector:      "Agriculture/Hunting/Forestry",
			Category:    "Livestock Farming",
			Name:        "Poultry",
			Factor:      decimal.RequireFromString("0.71"),
			Unit:        "kg/eur",
			Currency:    "EUR",
			Description: "Emissions from poultry farming operations",
		},
		"wheat": {
			Sector:      "Agriculture/Hunting/Forestry",
			Category:    "Arable Farming",
			Name:        "Wheat",
			Factor:      decimal.RequireFromString("0.64"),
			Unit:        "kg/eur",
			Currency:    "EUR",
			Description: "Emissions from wheat cultivation",
		},
		"stone": {
			Sector:      "Materials and Manufacturing",
			Category:    "Mined Materials",
			Name:        "Stone",
			Factor:      decimal.RequireFromString("0.58"),
			Unit:        "kg/usd",
			Currency:    "USD",
			Description: "Emissions from stone mining and processing",
		},
		"dairy_products": {
			Sector:      "Consumer Goods and Services",
			Category:    "Food/Beverages/Tobacco",
			Name:        "Dairy products",
			Factor:      decimal.RequireFromString("0.55"),
			Unit:        "kg/usd",
			Currency:    "USD",
			Description: "Emissions from dairy product manufacturing",
		},
		"education": {
			Sector:      "Education",
			Category:    "Education",
			Name:        "Education services",
			Factor:      decimal.RequireFromString("0.52"),
			Unit:        "kg/gbp",
			Currency:    "GBP",
			Description: "Emissions from educational services",
		},
		"financial_services": {
			Sector:      "Insurance and Financial Services",
			Category:    "Financial Services",
			Name:        "Financial intermediation services",
			Factor:      decimal.RequireFromString("0.52"),
			Unit:        "kg/gbp",
			Currency:    "GBP",
			Description: "Emissions from financial intermediation activities",
		},
		"insurance": {
			Sector:      "Insurance and Financial Services",
			Category:    "Insurance Services",
			Name:        "Insurance and pension funding services",
			Factor:      decimal.RequireFromString("0.52"),
			Unit:        "kg/gbp",
			Currency:    "GBP",
			Description: "Emissions from insurance and pension services",
		},
	}
}
