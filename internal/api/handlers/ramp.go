package handlers

import (
	"errors"
	"net/http"

	"ramp-metrics/internal/api/models"
	"ramp-metrics/internal/model"
	"ramp-metrics/internal/ramp"

	"github.com/gin-gonic/gin"
)

// RampHandler handles ramp computation requests
type RampHandler struct{}

// NewRampHandler creates a new ramp handler
func NewRampHandler() *RampHandler {
	return &RampHandler{}
}

// ComputeRamp handles POST /api/v1/ramp
func (h *RampHandler) ComputeRamp(c *gin.Context) {
	var req models.RampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	step, err := model.ParseTimeStep(req.Options.TimeStep)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_TIME_STEP",
				Message: err.Error(),
			},
		})
		return
	}

	params := ramp.Params{
		TimeStep:      step,
		Synthesis:     req.Options.Synthesis,
		IgnoreMustRun: req.Options.IgnoreMustRun,
		Clusters:      req.Clusters,
	}

	result, err := ramp.ComputeCollection(req.Data, params)
	if err != nil {
		status, code := classifyError(err)
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, buildResponse(result))
}

// classifyError maps pipeline errors to HTTP status and error codes.
// Structural precondition failures are 422, bad input shapes 400.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrMissingColumn):
		return http.StatusUnprocessableEntity, "MISSING_COLUMN"
	case errors.Is(err, ramp.ErrEmptyCollection):
		return http.StatusBadRequest, "EMPTY_COLLECTION"
	case errors.Is(err, ramp.ErrUnknownKind):
		return http.StatusBadRequest, "UNKNOWN_KIND"
	default:
		return http.StatusInternalServerError, "COMPUTE_ERROR"
	}
}

func buildResponse(result *model.Collection) models.RampResponse {
	summary := models.RampSummary{
		TimeStep:  string(result.TimeStep),
		Synthesis: result.Synthesis,
	}
	if result.Areas != nil {
		summary.AreaRows = result.Areas.Len()
	}
	if result.Districts != nil {
		summary.DistrictRows = result.Districts.Len()
	}
	return models.RampResponse{
		Status:  "completed",
		Summary: summary,
		Result:  result,
	}
}
