package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecotrack/emission_tracking_app/internal/apperrors"
	"github.com/ecotrack/emission_tracking_app/internal/core/domain"
	"github.com/ecotrack/emission_tracking_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type EmissionHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockExchangeRateSvc *MockExchangeRateService
	mockEmissionSvc     *MockEmissionService
}

func (suite *EmissionHandlerTestSuite) SetupTest() {
	suite.mockExchangeRateSvc = new(MockExchangeRateService)
	suite.mockEmissionSvc = new(MockEmissionService)
	suite.router = newTestRouter(suite.mockExchangeRateSvc, suite.mockEmissionSvc)
}

func malaysia() domain.Country {
	return domain.Country{
		Code:     "MY",
		Name:     "Malaysia",
		Currency: "MYR",
		Symbol:   "RM",
		CrossRates: map[string]decimal.Decimal{
			"USD": decimal.RequireFromString("0.21"),
		},
	}
}

func stoneTemplate() domain.EmissionTemplate {
	return domain.EmissionTemplate{
		Sector:   "Materials and Manufacturing",
		Category: "Mined Materials",
		Name:     "Stone",
		Factor:   decimal.RequireFromString("0.58"),
		Unit:     "kg/usd",
		Currency: "USD",
	}
}

// --- Test Cases ---

func (suite *EmissionHandlerTestSuite) TestListCountries() {
	suite.mockEmissionSvc.On("ListCountries").Return([]domain.Country{malaysia()}).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/countries", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.CountryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("MY", resp[0].Code)
	suite.Equal("RM", resp[0].Symbol)
	suite.Contains(resp[0].ExchangeRates, "USD")

	suite.mockEmissionSvc.AssertExpectations(suite.T())
}

func (suite *EmissionHandlerTestSuite) TestListTemplates() {
	suite.mockEmissionSvc.On("ListTemplates").Return(map[string]domain.EmissionTemplate{"stone": stoneTemplate()}).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/emission-templates", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]dto.EmissionTemplateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Contains(resp, "stone")
	suite.Equal("Stone", resp["stone"].Name)
	suite.Equal("USD", resp["stone"].Currency)

	suite.mockEmissionSvc.AssertExpectations(suite.T())
}

func (suite *EmissionHandlerTestSuite) TestCalculate_Success() {
	result := &domain.CalculationResult{
		LocalValue:     decimal.RequireFromString("100"),
		LocalCurrency:  "MYR",
		LocalSymbol:    "RM",
		BaseValue:      decimal.RequireFromString("21"),
		BaseCurrency:   "USD",
		Factor:         decimal.RequireFromString("0.58"),
		Unit:           "kg/usd",
		Total:          decimal.RequireFromString("12.18"),
		GasesBreakdown: decimal.RequireFromString("0.58058"),
	}
	suite.mockEmissionSvc.On("Calculate", "100", "MY", "stone").Return(result, nil).Once()

	body, _ := json.Marshal(dto.CalculateEmissionRequest{Amount: "100", CountryCode: "MY", TemplateKey: "stone"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/emissions/calculate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CalculationResultResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("21.00", resp.BaseValue)
	suite.Equal("12.18", resp.Total)
	suite.Equal("0.581", resp.GasesBreakdown)
	suite.Equal("USD", resp.BaseCurrency)
	suite.Equal("RM", resp.LocalSymbol)

	suite.mockEmissionSvc.AssertExpectations(suite.T())
}

func (suite *EmissionHandlerTestSuite) TestCalculate_BindingError() {
	body := []byte(`{"amount": "100", "templateKey": "stone"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/emissions/calculate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEmissionSvc.AssertNotCalled(suite.T(), "Calculate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmissionHandlerTestSuite) TestCalculate_UnknownTemplate() {
	suite.mockEmissionSvc.On("Calculate", "100", "MY", "nope").Return(nil, apperrors.ErrValidation).Once()

	body, _ := json.Marshal(dto.CalculateEmissionRequest{Amount: "100", CountryCode: "MY", TemplateKey: "nope"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/emissions/calculate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEmissionSvc.AssertExpectations(suite.T())
}

func (suite *EmissionHandlerTestSuite) TestCalculate_ConfigurationError() {
	suite.mockEmissionSvc.On("Calculate", "100", "MY", "stone").Return(nil, apperrors.ErrConfiguration).Once()

	body, _ := json.Marshal(dto.CalculateEmissionRequest{Amount: "100", CountryCode: "MY", TemplateKey: "stone"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/emissions/calculate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Internal server error")
	suite.mockEmissionSvc.AssertExpectations(suite.T())
}

func (suite *EmissionHandlerTestSuite) TestMidMarketRate_Success() {
	record := &domain.ExchangeRateRecord{
		RateID:         3,
		Date:           "2024-03-15",
		BaseCurrency:   "USD",
		TargetCurrency: "MYR",
		Rate:           decimal.RequireFromString("4.45"),
		DownloadedAt:   time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC),
	}
	suite.mockEmissionSvc.On("GetCountry", "MY").Return(malaysia(), nil).Once()
	suite.mockEmissionSvc.On("GetTemplate", "stone").Return(stoneTemplate(), nil).Once()
	suite.mockExchangeRateSvc.On("GetRate", mock.Anything, "2024-03-15", "USD", "MYR").Return(record, nil).Once()
	suite.mockEmissionSvc.On("DisplayRate", record.Rate, "MY", "stone").Return(decimal.RequireFromString("0.9345"), nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/emissions/mid-market-rate?date=2024-03-15&countryCode=MY&templateKey=stone", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.MidMarketRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-03-15", resp.Date)
	suite.Equal("USD", resp.BaseCurrency)
	suite.Equal("MYR", resp.TargetCurrency)
	suite.Equal("0.9345", resp.DisplayRate)

	suite.mockEmissionSvc.AssertExpectations(suite.T())
	suite.mockExchangeRateSvc.AssertExpectations(suite.T())
}

func (suite *EmissionHandlerTestSuite) TestMidMarketRate_UnknownCountry() {
	suite.mockEmissionSvc.On("GetCountry", "XX").Return(domain.Country{}, apperrors.ErrValidation).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/emissions/mid-market-rate?date=2024-03-15&countryCode=XX&templateKey=stone", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExchangeRateSvc.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockEmissionSvc.AssertExpectations(suite.T())
}

func (suite *EmissionHandlerTestSuite) TestMidMarketRate_RateNotFound() {
	suite.mockEmissionSvc.On("GetCountry", "MY").Return(malaysia(), nil).Once()
	suite.mockEmissionSvc.On("GetTemplate", "stone").Return(stoneTemplate(), nil).Once()
	suite.mockExchangeRateSvc.On("GetRate", mock.Anything, "2024-03-15", "USD", "MYR").Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/emissions/mid-market-rate?date=2024-03-15&countryCode=MY&templateKey=stone", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockEmissionSvc.AssertNotCalled(suite.T(), "DisplayRate", mock.Anything, mock.Anything, mock.Anything)
	suite.mockEmissionSvc.AssertExpectations(suite.T())
	suite.mockExchangeRateSvc.AssertExpectations(suite.T())
}

func TestEmissionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmissionHandlerTestSuite))
}
