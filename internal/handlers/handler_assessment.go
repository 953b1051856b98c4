package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/surety_risk_app/internal/apperrors"
	portssvc "github.com/SscSPs/surety_risk_app/internal/core/ports/services"
	"github.com/SscSPs/surety_risk_app/internal/dto"
	"github.com/SscSPs/surety_risk_app/internal/middleware"
	"github.com/SscSPs/surety_risk_app/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// statusClientClosedRequest is the nginx convention for a request the client abandoned.
const statusClientClosedRequest = 499

// assessmentHandler handles HTTP requests related to risk assessments.
type assessmentHandler struct {
	assessmentService portssvc.AssessmentSvcFacade
}

// newAssessmentHandler creates a new assessmentHandler.
func newAssessmentHandler(as portssvc.AssessmentSvcFacade) *assessmentHandler {
	return &assessmentHandler{
		assessmentService: as,
	}
}

// RegisterAssessmentRoutes registers routes related to assessments, financial analysis and the catalog.
func RegisterAssessmentRoutes(rg *gin.RouterGroup, assessmentService portssvc.AssessmentSvcFacade) {
	h := newAssessmentHandler(assessmentService)

	assessments := rg.Group("/assessments")
	{
		assessments.POST("", h.createAssessment)
		assessments.POST("/batch", h.createAssessmentBatch)
	}
	rg.POST("/financials/analysis", h.analyzeFinancials)
	rg.GET("/catalog", h.getCatalog)
}

// createAssessment godoc
// @Summary Assess a bond application
// @Description Scores the 5C questionnaires and two years of financials, then decides approval and collateral
// @Tags assessments
// @Accept  json
// @Produce  json
// @Param   assessment body dto.AssessmentRequest true "Application inputs"
// @Success 200 {object} dto.AssessmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to assess application"
// @Security BearerAuth
// @Router /assessments [post]
func (h *assessmentHandler) createAssessment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAssessment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	input, err := mapping.ToDomainAssessmentInput(req)
	if err != nil {
		respondError(c, logger, err, "Failed to assess application")
		return
	}

	logger.Info("Received request to assess application", slog.String("bond_type", string(input.Profile.BondType)))

	assessment, err := h.assessmentService.Assess(c.Request.Context(), input)
	if err != nil {
		respondError(c, logger, err, "Failed to assess application")
		return
	}

	logger.Info("Application assessed successfully", slog.String("assessment_id", assessment.ID.String()))
	c.JSON(http.StatusOK, dto.ToAssessmentResponse(assessment))
}

// createAssessmentBatch godoc
// @Summary Assess several bond applications
// @Description Scores independent applications concurrently. Results keep the request order.
// @Tags assessments
// @Accept  json
// @Produce  json
// @Param   batch body dto.BatchAssessmentRequest true "Applications"
// @Success 200 {object} dto.BatchAssessmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input, empty batch or batch too large"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to assess batch"
// @Security BearerAuth
// @Router /assessments/batch [post]
func (h *assessmentHandler) createAssessmentBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BatchAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAssessmentBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	inputs, err := mapping.ToDomainAssessmentInputs(req.Items)
	if err != nil {
		respondError(c, logger, err, "Failed to assess batch")
		return
	}

	logger.Info("Received request to assess batch", slog.Int("batch_size", len(inputs)))

	assessments, err := h.assessmentService.AssessBatch(c.Request.Context(), inputs)
	if err != nil {
		respondError(c, logger, err, "Failed to assess batch")
		return
	}

	logger.Info("Batch assessed successfully", slog.Int("count", len(assessments)))
	c.JSON(http.StatusOK, dto.ToBatchAssessmentResponse(assessments))
}

// analyzeFinancials godoc
// @Summary Analyze two years of financial statements
// @Description Returns summaries, ratios, year-over-year changes and their grades without scoring the questionnaires
// @Tags financials
// @Accept  json
// @Produce  json
// @Param   statements body dto.FinancialAnalysisRequest true "Prior and current year statements"
// @Success 200 {object} dto.FinancialReviewResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or unknown line item"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to analyze financials"
// @Security BearerAuth
// @Router /financials/analysis [post]
func (h *assessmentHandler) analyzeFinancials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FinancialAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AnalyzeFinancials", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	prior, err := mapping.ToDomainStatement(req.PriorYear)
	if err != nil {
		respondError(c, logger, fmt.Errorf("priorYear: %w", err), "Failed to analyze financials")
		return
	}
	current, err := mapping.ToDomainStatement(req.CurrentYear)
	if err != nil {
		respondError(c, logger, fmt.Errorf("currentYear: %w", err), "Failed to analyze financials")
		return
	}

	review, err := h.assessmentService.ReviewFinancials(c.Request.Context(), prior, current)
	if err != nil {
		respondError(c, logger, err, "Failed to analyze financials")
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialReviewResponse(review))
}

// getCatalog godoc
// @Summary Get the input catalog
// @Description Lists questionnaire prompts and options, line-item groups, bond and employer types, and the policy version
// @Tags catalog
// @Produce  json
// @Success 200 {object} domain.Catalog
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /catalog [get]
func (h *assessmentHandler) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.assessmentService.Catalog(c.Request.Context()))
}

// respondError maps service and mapping errors to HTTP responses.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled):
		logger.Info("Request cancelled by client", slog.String("error", err.Error()))
		c.Status(statusClientClosedRequest)
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}
