package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ecotrack/emission_tracking_app/internal/apperrors"
	portssvc "github.com/ecotrack/emission_tracking_app/internal/core/ports/services"
	"github.com/ecotrack/emission_tracking_app/internal/dto"
	"github.com/ecotrack/emission_tracking_app/internal/middleware"
	"github.com/ecotrack/emission_tracking_app/internal/observability"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to historical exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	metrics             *observability.Metrics
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, metrics *observability.Metrics) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		metrics:             metrics,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, metrics *observability.Metrics) {
	h := newExchangeRateHandler(exchangeRateService, metrics)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.getRate)
		exchangeRates.POST("/dates", h.listAvailableDates)
	}
}

// getRate godoc
// @Summary Get a stored exchange rate
// @Description Retrieves the most recently downloaded rate for a date and currency pair
// @Tags exchange rates
// @Produce  json
// @Param   date query string true "Calendar date (YYYY-MM-DD)"
// @Param   baseCurrency query string true "Base currency code (3 letters)"
// @Param   targetCurrency query string true "Target currency code (3 letters)"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Missing or malformed parameters"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Query("date")
	baseCurrency := c.Query("baseCurrency")
	targetCurrency := c.Query("targetCurrency")

	logger = logger.With(
		slog.String("date", date),
		slog.String("base_currency", baseCurrency),
		slog.String("target_currency", targetCurrency),
	)
	logger.Info("Received request to get exchange rate")

	start := time.Now()
	rate, err := h.exchangeRateService.GetRate(c.Request.Context(), date, baseCurrency, targetCurrency)
	h.metrics.LookupDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			h.metrics.RateLookups.WithLabelValues("validation").Inc()
			logger.Warn("Validation error getting exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			h.metrics.RateLookups.WithLabelValues("not_found").Inc()
			logger.Warn("Exchange rate not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
		} else {
			h.metrics.RateLookups.WithLabelValues("error").Inc()
			logger.Error("Failed to get exchange rate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	h.metrics.RateLookups.WithLabelValues("success").Inc()
	logger.Info("Exchange rate retrieved successfully", slog.Int64("rate_id", rate.RateID))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// listAvailableDates godoc
// @Summary List available dates for a currency pair
// @Description Retrieves the distinct dates with at least one stored rate for the pair, newest first
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   pair body dto.AvailableDatesRequest true "Currency pair"
// @Success 200 {array} dto.AvailableDateResponse
// @Failure 400 {object} map[string]string "Missing required parameters"
// @Failure 500 {object} map[string]string "Failed to list available dates"
// @Router /exchange-rates/dates [post]
func (h *exchangeRateHandler) listAvailableDates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AvailableDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.DateListings.WithLabelValues("validation").Inc()
		logger.Warn("Failed to bind JSON for ListAvailableDates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	logger = logger.With(
		slog.String("base_currency", req.BaseCurrency),
		slog.String("target_currency", req.TargetCurrency),
	)
	logger.Info("Received request to list available dates")

	dates, err := h.exchangeRateService.ListAvailableDates(c.Request.Context(), req.BaseCurrency, req.TargetCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			h.metrics.DateListings.WithLabelValues("validation").Inc()
			logger.Warn("Validation error listing available dates", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		} else {
			h.metrics.DateListings.WithLabelValues("error").Inc()
			logger.Error("Failed to list available dates from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	h.metrics.DateListings.WithLabelValues("success").Inc()
	logger.Info("Available dates listed successfully", slog.Int("count", len(dates)))
	c.JSON(http.StatusOK, dto.ToAvailableDatesResponse(dates))
}
