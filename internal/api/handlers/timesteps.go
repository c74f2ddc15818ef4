package handlers

import (
	"net/http"

	"ramp-metrics/internal/api/models"
	"ramp-metrics/internal/model"

	"github.com/gin-gonic/gin"
)

// ListTimeSteps handles GET /api/v1/timesteps
func ListTimeSteps(c *gin.Context) {
	steps := model.TimeSteps()
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = string(s)
	}
	c.JSON(http.StatusOK, models.TimeStepsResponse{TimeSteps: names})
}
