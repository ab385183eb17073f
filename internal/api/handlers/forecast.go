package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"harvest-guard/internal/api/models"
	"harvest-guard/internal/pipeline"
)

// ForecastHandler serves simulated forecasts for display alongside batches.
type ForecastHandler struct {
	forecasts pipeline.ForecastProvider
}

func NewForecastHandler(forecasts pipeline.ForecastProvider) *ForecastHandler {
	return &ForecastHandler{forecasts: forecasts}
}

// GetForecast handles GET /api/v1/forecast?region=Dhaka.
// Unrecognized regions are served from the default climate profile, so this
// endpoint never 404s on region.
func (h *ForecastHandler) GetForecast(c *gin.Context) {
	region := c.Query("region")
	if region == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_REGION",
				Message: "query parameter \"region\" is required",
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.ForecastResponse{
		Region:   region,
		Forecast: h.forecasts.Forecast(region),
	})
}
