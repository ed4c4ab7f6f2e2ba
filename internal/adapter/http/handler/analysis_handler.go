package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pretamane/bing-crawling-api/internal/infrastructure/metrics"
	"github.com/pretamane/bing-crawling-api/internal/usecase"
)

// AnalysisHandler handles text-analysis HTTP requests
type AnalysisHandler struct {
	analysisUC usecase.AnalysisUsecase
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisUC usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{analysisUC: analysisUC}
}

// AnalysisRequest is the request body for both analysis endpoints
type AnalysisRequest struct {
	Text string `json:"text"`
}

// ExtractEntities handles POST /api/v1/analysis/ner
func (h *AnalysisHandler) ExtractEntities(c *gin.Context) {
	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RequestsTotal.WithLabelValues("ner", "invalid").Inc()
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.analysisUC.ExtractEntities(c.Request.Context(), req.Text)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues("ner", outcomeLabel(err)).Inc()
		HandleUsecaseError(c, err)
		return
	}

	metrics.RequestsTotal.WithLabelValues("ner", "success").Inc()
	respondSuccess(c, http.StatusOK, result)
}

// ClassifyText handles POST /api/v1/analysis/classify
func (h *AnalysisHandler) ClassifyText(c *gin.Context) {
	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RequestsTotal.WithLabelValues("classify", "invalid").Inc()
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.analysisUC.ClassifyText(c.Request.Context(), req.Text)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues("classify", outcomeLabel(err)).Inc()
		HandleUsecaseError(c, err)
		return
	}

	metrics.RequestsTotal.WithLabelValues("classify", "success").Inc()
	respondSuccess(c, http.StatusOK, result)
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, usecase.ErrServiceUnavailable):
		return "unavailable"
	case errors.Is(err, usecase.ErrInvalidRequest):
		return "invalid"
	default:
		return "error"
	}
}
