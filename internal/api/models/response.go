package models

import (
	"harvest-guard/internal/analysis"
	"harvest-guard/internal/model"
)

// AssessResponse represents the response from an assessment run.
type AssessResponse struct {
	Status    string                `json:"status"`
	Summaries []model.RiskSummary   `json:"summaries"`
	Stats     analysis.Distribution `json:"stats"`
	TopAtRisk []model.RiskSummary   `json:"top_at_risk,omitempty"`
}

// ForecastResponse wraps a simulated forecast for one region.
type ForecastResponse struct {
	Region   string               `json:"region"`
	Forecast model.ForecastSeries `json:"forecast"`
}

// RegionInfo describes one division with a dedicated climate profile.
type RegionInfo struct {
	Name string `json:"name"`
}

// CatalogEntry is one crop or storage-type option with its localized name.
type CatalogEntry struct {
	Code      string `json:"code"`
	LocalName string `json:"local_name"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
