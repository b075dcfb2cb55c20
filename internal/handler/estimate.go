package handler

import (
	"errors"
	"net/http"

	"github.com/cleberrangel/reader-calc/internal/logger"
	"github.com/cleberrangel/reader-calc/internal/metrics"
	"github.com/cleberrangel/reader-calc/internal/model"
	"github.com/cleberrangel/reader-calc/internal/service"
	"github.com/gin-gonic/gin"
)

// EstimateHandler handles the JSON estimate API
type EstimateHandler struct {
	calculator *service.CalculatorService
}

// NewEstimateHandler creates a new estimate API handler
func NewEstimateHandler(calculator *service.CalculatorService) *EstimateHandler {
	return &EstimateHandler{
		calculator: calculator,
	}
}

// Estimate computes a reading time estimate
// @Summary      Estimate reading time
// @Description  Multiplies the base rate by language, difficulty and focus multipliers
// @Tags         estimate
// @Accept       json
// @Produce      json
// @Param        request body model.EstimateRequest true "Estimate inputs"
// @Success      200 {object} model.Response
// @Failure      400 {object} model.ErrorResponse
// @Failure      429 {object} model.ErrorResponse
// @Router       /api/v1/estimate [post]
func (h *EstimateHandler) Estimate(c *gin.Context) {
	var req model.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.calculator.Reject(c.Request.Context(), err, metrics.SourceAPI)
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Success: false,
			Error:   "payload inválido",
			Details: err.Error(),
		})
		return
	}

	result, err := h.calculator.Estimate(c.Request.Context(), req, metrics.SourceAPI)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Data:    result,
	})
}

// Levels lists every selectable level
// @Summary      List levels
// @Tags         estimate
// @Produce      json
// @Success      200 {object} model.Response
// @Router       /api/v1/levels [get]
func (h *EstimateHandler) Levels(c *gin.Context) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Data:    service.Catalog(),
	})
}

// handleError maps service errors to HTTP responses
func (h *EstimateHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidPages):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Success: false,
			Error:   model.ErrInvalidPages.Error(),
			Details: err.Error(),
		})
	case errors.Is(err, model.ErrInvalidLevel):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Success: false,
			Error:   model.ErrInvalidLevel.Error(),
			Details: err.Error(),
		})
	default:
		logger.FromGin(c).Error().Err(err).Msg("Erro ao calcular estimativa")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Success: false,
			Error:   "erro interno",
			Details: err.Error(),
		})
	}
}
