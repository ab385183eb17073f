package models

import "harvest-guard/internal/model"

// AssessRequest represents the request body for running a risk assessment.
type AssessRequest struct {
	Records  []model.BatchRecord `json:"records" binding:"required"`
	Division string              `json:"division" binding:"required"`
	District string              `json:"district,omitempty"`
	Options  AssessOptions       `json:"options,omitempty"`
}

// AssessOptions contains optional assessment parameters.
type AssessOptions struct {
	Language        string `json:"language,omitempty"`         // "bn" (default) or "en"
	IncludeForecast bool   `json:"include_forecast,omitempty"` // default: false
	TopAtRisk       int    `json:"top_at_risk,omitempty"`      // 0 = no ranking section
}
