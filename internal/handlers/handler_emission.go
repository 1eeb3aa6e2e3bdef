package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecotrack/emission_tracking_app/internal/apperrors"
	portssvc "github.com/ecotrack/emission_tracking_app/internal/core/ports/services"
	"github.com/ecotrack/emission_tracking_app/internal/dto"
	"github.com/ecotrack/emission_tracking_app/internal/middleware"
	"github.com/ecotrack/emission_tracking_app/internal/observability"
	"github.com/gin-gonic/gin"
)

// emissionHandler handles HTTP requests for the emissions form: reference
// data, the calculation itself, and the informational mid-market rate line.
type emissionHandler struct {
	emissionService     portssvc.EmissionSvcFacade
	exchangeRateService portssvc.ExchangeRateSvcFacade
	metrics             *observability.Metrics
}

// newEmissionHandler creates a new emissionHandler.
func newEmissionHandler(es portssvc.EmissionSvcFacade, ers portssvc.ExchangeRateSvcFacade, metrics *observability.Metrics) *emissionHandler {
	return &emissionHandler{
		emissionService:     es,
		exchangeRateService: ers,
		metrics:             metrics,
	}
}

// registerEmissionRoutes registers routes related to emission tracking.
func registerEmissionRoutes(rg *gin.RouterGroup, es portssvc.EmissionSvcFacade, ers portssvc.ExchangeRateSvcFacade, metrics *observability.Metrics) {
	h := newEmissionHandler(es, ers, metrics)

	rg.GET("/countries", h.listCountries)
	rg.GET("/emission-templates", h.listTemplates)

	emissions := rg.Group("/emissions")
	{
		emissions.POST("/calculate", h.calculate)
		emissions.GET("/mid-market-rate", h.midMarketRate)
	}
}

// listCountries godoc
// @Summary List supported countries
// @Description Retrieves the static country list with currencies, symbols and cross-rates
// @Tags emissions
// @Produce  json
// @Success 200 {array} dto.CountryResponse
// @Router /countries [get]
func (h *emissionHandler) listCountries(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCountryResponse(h.emissionService.ListCountries()))
}

// listTemplates godoc
// @Summary List emission templates
// @Description Retrieves the static emission-factor templates keyed by template key
// @Tags emissions
// @Produce  json
// @Success 200 {object} map[string]dto.EmissionTemplateResponse
// @Router /emission-templates [get]
func (h *emissionHandler) listTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToTemplateMapResponse(h.emissionService.ListTemplates()))
}

// calculate godoc
// @Summary Calculate emissions for an activity
// @Description Converts a local-currency amount into the template currency and applies the emission factor
// @Tags emissions
// @Accept  json
// @Produce  json
// @Param   calculation body dto.CalculateEmissionRequest true "Calculation inputs"
// @Success 200 {object} dto.CalculationResultResponse
// @Failure 400 {object} map[string]string "Unknown country or template"
// @Failure 500 {object} map[string]string "Reference data misconfiguration"
// @Router /emissions/calculate [post]
func (h *emissionHandler) calculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateEmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.Calculations.WithLabelValues("validation").Inc()
		logger.Warn("Failed to bind JSON for Calculate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(
		slog.String("country_code", req.CountryCode),
		slog.String("template_key", req.TemplateKey),
	)
	logger.Info("Received request to calculate emissions")

	result, err := h.emissionService.Calculate(req.Amount, req.CountryCode, req.TemplateKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			h.metrics.Calculations.WithLabelValues("validation").Inc()
			logger.Warn("Validation error calculating emissions", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			// ErrConfiguration lands here: a static-data invariant is broken
			// and the client cannot fix it.
			h.metrics.Calculations.WithLabelValues("error").Inc()
			logger.Error("Failed to calculate emissions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	h.metrics.Calculations.WithLabelValues("success").Inc()
	logger.Info("Emissions calculated successfully")
	c.JSON(http.StatusOK, dto.ToCalculationResultResponse(result))
}

// midMarketRate godoc
// @Summary Get the informational mid-market rate line
// @Description Combines the stored rate for (template currency, country currency) on a date with the country's static cross-rate
// @Tags emissions
// @Produce  json
// @Param   date query string true "Calendar date (YYYY-MM-DD)"
// @Param   countryCode query string true "Country code (ISO-2)"
// @Param   templateKey query string true "Emission template key"
// @Success 200 {object} dto.MidMarketRateResponse
// @Failure 400 {object} map[string]string "Missing or malformed parameters"
// @Failure 404 {object} map[string]string "No stored rate for that date"
// @Failure 500 {object} map[string]string "Failed to retrieve rate"
// @Router /emissions/mid-market-rate [get]
func (h *emissionHandler) midMarketRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Query("date")
	countryCode := c.Query("countryCode")
	templateKey := c.Query("templateKey")

	logger = logger.With(
		slog.String("date", date),
		slog.String("country_code", countryCode),
		slog.String("template_key", templateKey),
	)
	logger.Info("Received request for mid-market rate")

	country, err := h.emissionService.GetCountry(countryCode)
	if err != nil {
		logger.Warn("Unknown country for mid-market rate")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}
	template, err := h.emissionService.GetTemplate(templateKey)
	if err != nil {
		logger.Warn("Unknown template for mid-market rate")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	// The stored rate is template currency -> local currency for the chosen
	// date; the static cross-rate turns it into the displayed figure.
	rate, err := h.exchangeRateService.GetRate(c.Request.Context(), date, template.Currency, country.Currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
		} else {
			logger.Error("Failed to get rate for mid-market line", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	displayRate, err := h.emissionService.DisplayRate(rate.Rate, countryCode, templateKey)
	if err != nil {
		logger.Error("Failed to compute display rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	logger.Info("Mid-market rate retrieved successfully")
	c.JSON(http.StatusOK, dto.MidMarketRateResponse{
		Date:           rate.Date,
		BaseCurrency:   rate.BaseCurrency,
		TargetCurrency: rate.TargetCurrency,
		Rate:           rate.Rate,
		DisplayRate:    displayRate.StringFixed(4),
	})
}
