package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"harvest-guard/internal/advisory"
	"harvest-guard/internal/analysis"
	"harvest-guard/internal/api/models"
	"harvest-guard/internal/config"
	"harvest-guard/internal/notify"
	"harvest-guard/internal/pipeline"
)

// AssessHandler runs risk assessments over submitted batch records.
type AssessHandler struct {
	cfg       *config.Config
	forecasts pipeline.ForecastProvider
	composer  *advisory.Composer
	trigger   *notify.Trigger
}

func NewAssessHandler(cfg *config.Config, forecasts pipeline.ForecastProvider, composer *advisory.Composer, trigger *notify.Trigger) *AssessHandler {
	return &AssessHandler{
		cfg:       cfg,
		forecasts: forecasts,
		composer:  composer,
		trigger:   trigger,
	}
}

// RunAssessment handles POST /api/v1/assess.
func (h *AssessHandler) RunAssessment(c *gin.Context) {
	var req models.AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	lang := advisory.Lang(h.cfg.Language)
	switch advisory.Lang(req.Options.Language) {
	case advisory.LangBangla:
		lang = advisory.LangBangla
	case advisory.LangEnglish:
		lang = advisory.LangEnglish
	case "":
		// keep configured default
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_LANGUAGE",
				Message: "language must be \"bn\" or \"en\"",
			},
		})
		return
	}

	engine := pipeline.New(h.forecasts, h.composer, h.trigger, pipeline.Options{
		Language: lang,
		Workers:  h.cfg.Workers,
	})
	summaries := engine.Run(req.Records, req.Division, req.District)

	if !req.Options.IncludeForecast {
		for i := range summaries {
			summaries[i].Forecast = nil
		}
	}

	resp := models.AssessResponse{
		Status:    "completed",
		Summaries: summaries,
		Stats:     analysis.ComputeDistribution(summaries),
	}
	if req.Options.TopAtRisk > 0 {
		resp.TopAtRisk = analysis.TopAtRisk(summaries, req.Options.TopAtRisk)
	}

	c.JSON(http.StatusOK, resp)
}
