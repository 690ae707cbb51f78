package handlers

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
	portssvc "github.com/SscSPs/growth_estimator/internal/core/ports/services"
	"github.com/SscSPs/growth_estimator/internal/dto"
	"github.com/SscSPs/growth_estimator/internal/middleware"
	"github.com/SscSPs/growth_estimator/internal/utils"
	"github.com/gin-gonic/gin"
)

// estimateHandler handles HTTP requests related to growth estimates.
type estimateHandler struct {
	estimationService portssvc.EstimationSvc
}

// newEstimateHandler creates a new estimateHandler.
func newEstimateHandler(es portssvc.EstimationSvc) *estimateHandler {
	return &estimateHandler{
		estimationService: es,
	}
}

// registerEstimateRoutes registers routes related to growth estimates.
func registerEstimateRoutes(rg *gin.RouterGroup, estimationService portssvc.EstimationSvc) {
	h := newEstimateHandler(estimationService)

	estimates := rg.Group("/estimates")
	{
		estimates.POST("", h.createEstimate)
		estimates.POST("/source", h.createEstimateFromSource)
	}
}

// createEstimate godoc
// @Summary Estimate growth from an inline history
// @Description Blends the revenue CAGR of the given history with a five-forces intensity score
// @Tags estimates
// @Accept  json
// @Produce  json
// @Param   estimate body dto.EstimateRequest true "History, macro parameters and force weights"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} map[string]string "Invalid input or incomplete history"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Growth cannot be computed for these inputs"
// @Failure 500 {object} map[string]string "Failed to estimate growth"
// @Security BearerAuth
// @Router /estimates [post]
func (h *estimateHandler) createEstimate(c *gin.Context) {
	logger := callerLogger(c.Request.Context())
	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEstimate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("ticker", req.Ticker), slog.Int("periods", len(req.History)))
	logger.Info("Received request to estimate growth")

	estimate, err := h.estimationService.EstimateFromHistory(
		c.Request.Context(),
		req.ToDomainHistory(),
		req.Macro.ToDomain(),
		dto.ToDomainWeights(req.Weights),
		portssvc.EstimationOptions{Strict: req.Strict},
	)
	h.respond(c, logger, estimate, err)
}

// createEstimateFromSource godoc
// @Summary Estimate growth from a history source
// @Description Loads the history from a CSV or XLSX file, an HTML page or a stored ticker (db://TICKER), then estimates growth
// @Tags estimates
// @Accept  json
// @Produce  json
// @Param   estimate body dto.EstimateFromSourceRequest true "Source, macro parameters and force weights"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} map[string]string "Invalid input or incomplete history"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "History source not found"
// @Failure 422 {object} map[string]string "Growth cannot be computed for these inputs"
// @Failure 500 {object} map[string]string "Failed to estimate growth"
// @Security BearerAuth
// @Router /estimates/source [post]
func (h *estimateHandler) createEstimateFromSource(c *gin.Context) {
	logger := callerLogger(c.Request.Context())
	var req dto.EstimateFromSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEstimateFromSource", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("source", req.Source))
	logger.Info("Received request to estimate growth from source")

	estimate, err := h.estimationService.EstimateFromSource(
		c.Request.Context(),
		req.Source,
		req.Macro.ToDomain(),
		dto.ToDomainWeights(req.Weights),
		portssvc.EstimationOptions{Strict: req.Strict},
	)
	h.respond(c, logger, estimate, err)
}

// callerLogger returns the request logger tagged with the authenticated caller, if any.
func callerLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if userID, ok := middleware.GetUserIDFromCtx(ctx); ok {
		logger = logger.With(slog.String("user_id", userID))
	}
	return logger
}

func (h *estimateHandler) respond(c *gin.Context, logger *slog.Logger, estimate *domain.GrowthEstimate, err error) {
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("History source not found", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDomainMath):
			logger.Warn("Growth cannot be computed", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation),
			errors.Is(err, apperrors.ErrMissingData),
			errors.Is(err, apperrors.ErrMissingColumn),
			errors.Is(err, apperrors.ErrInvalidPeriod):
			logger.Warn("Invalid estimation input", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to estimate growth in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to estimate growth"})
		}
		return
	}

	// JSON cannot carry NaN or Inf, which a negative revenue ratio produces.
	if math.IsNaN(estimate.Value) || math.IsInf(estimate.Value, 0) {
		logger.Warn("Growth estimate is not a finite number", slog.String("growth_pct", utils.FormatWithPrecision(estimate.Value, 4)))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "growth rate is undefined for this history (negative revenue ratio?)"})
		return
	}

	logger.Info("Growth estimated successfully", slog.Float64("growth_pct", estimate.Value))
	c.JSON(http.StatusOK, dto.ToEstimateResponse(estimate))
}
