package model

import "math"

// RiskLevel is an ordered severity classification derived from ETCL.
// Keep these values stable; they are intended for JSON and CSV output.
type RiskLevel string

const (
	RiskCritical RiskLevel = "CRITICAL"
	RiskHigh     RiskLevel = "HIGH"
	RiskModerate RiskLevel = "MODERATE"
	RiskLow      RiskLevel = "LOW"
)

// ETCL bounds: the estimator clamps every result into this range, which
// guarantees both Critical and Low are reachable.
const (
	MinETCLHours = 12
	MaxETCLHours = 120
)

// ClassifyETCL maps an estimated time to critical loss (hours) into a risk
// level. Bounds are inclusive: 24h is Critical, 48h is High, 72h is Moderate.
func ClassifyETCL(etclHours int) RiskLevel {
	switch {
	case etclHours <= 24:
		return RiskCritical
	case etclHours <= 48:
		return RiskHigh
	case etclHours <= 72:
		return RiskModerate
	default:
		return RiskLow
	}
}

// EnglishAdvice returns the fixed English advisory line for the level.
func (r RiskLevel) EnglishAdvice() string {
	switch r {
	case RiskCritical:
		return "Immediate action required: dry indoors, aerate, and monitor closely."
	case RiskHigh:
		return "High risk: check storage conditions, consider aeration and moisture control."
	case RiskModerate:
		return "Moderate risk: monitor moisture and temperature regularly."
	default:
		return "Low risk: maintain standard storage procedures."
	}
}

// LabelBangla returns the fixed Bangla display label for the level.
func (r RiskLevel) LabelBangla() string {
	switch r {
	case RiskCritical:
		return "অতি ঝুঁকিপূর্ণ"
	case RiskHigh:
		return "উচ্চ ঝুঁকি"
	case RiskModerate:
		return "মাঝারি ঝুঁকি"
	default:
		return "কম ঝুঁকি"
	}
}

// Icon returns the severity marker the UI renders next to an advisory.
// Red for Critical and High, yellow for Moderate, green for Low. The mapping
// is part of the output contract; callers must not re-derive it.
func (r RiskLevel) Icon() string {
	switch r {
	case RiskCritical, RiskHigh:
		return "🔴"
	case RiskModerate:
		return "🟡"
	default:
		return "🟢"
	}
}

// SpoilageEstimate is the estimator's pure output: clamped ETCL plus the
// forecast-series averages it was derived from (one decimal, for display).
type SpoilageEstimate struct {
	ETCLHours                 int     `json:"etcl_hours"`
	AvgHumidityPercent        float64 `json:"avg_humidity_percent"`
	AvgRainProbabilityPercent float64 `json:"avg_rain_probability_percent"`
	AvgTemperatureC           float64 `json:"avg_temperature_c"`
}

// Round1 rounds to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
