package model

// RiskSummary is the engine's per-batch output record. It is assembled once
// per pipeline invocation and never mutated; persistence is the caller's
// decision.
type RiskSummary struct {
	AssessmentID string `json:"assessment_id"`

	BatchID  string `json:"batch_id"`
	Division string `json:"division"`
	District string `json:"district"`

	CropType         string `json:"crop_type"`
	CropLocalName    string `json:"crop_local_name"`
	StorageType      string `json:"storage_type"`
	StorageLocalName string `json:"storage_local_name"`

	RiskLevel      RiskLevel `json:"risk_level"`
	RiskLocalLabel string    `json:"risk_local_label"`
	Icon           string    `json:"icon"`

	SpoilageEstimate

	Forecast ForecastSeries `json:"forecast,omitempty"`

	// Message is the fixed English advisory line for the risk level.
	// AdvisoryMessage is the localized, factor-specific sentence.
	Message         string `json:"message"`
	AdvisoryMessage string `json:"advisory_message"`
}

// NotificationPayload is emitted only for Critical summaries. It is handed to
// an external delivery channel and not retained by the engine.
type NotificationPayload struct {
	ID        string    `json:"id"`
	BatchID   string    `json:"batch_id"`
	Division  string    `json:"division"`
	District  string    `json:"district"`
	RiskLevel RiskLevel `json:"risk_level"`
	ETCLHours int       `json:"etcl_hours"`
	Advisory  string    `json:"advisory"`
}
