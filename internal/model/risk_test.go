package model

import (
	"math"
	"testing"
)

func TestClassifyETCLThresholds(t *testing.T) {
	cases := []struct {
		hours int
		want  RiskLevel
	}{
		{12, RiskCritical},
		{23, RiskCritical},
		{24, RiskCritical}, // inclusive boundary
		{25, RiskHigh},
		{48, RiskHigh}, // inclusive boundary
		{49, RiskModerate},
		{72, RiskModerate}, // inclusive boundary
		{73, RiskLow},
		{120, RiskLow},
	}
	for _, tc := range cases {
		if got := ClassifyETCL(tc.hours); got != tc.want {
			t.Errorf("ClassifyETCL(%d) = %s, want %s", tc.hours, got, tc.want)
		}
	}
}

func TestRiskLevelIconMapping(t *testing.T) {
	if RiskCritical.Icon() != RiskHigh.Icon() {
		t.Errorf("Critical and High must share the red marker, got %q vs %q",
			RiskCritical.Icon(), RiskHigh.Icon())
	}
	if RiskModerate.Icon() == RiskCritical.Icon() {
		t.Error("Moderate must not reuse the red marker")
	}
	if RiskLow.Icon() == RiskModerate.Icon() {
		t.Error("Low must not reuse the caution marker")
	}
}

func TestRiskLevelAdviceNonEmpty(t *testing.T) {
	for _, level := range []RiskLevel{RiskCritical, RiskHigh, RiskModerate, RiskLow} {
		if level.EnglishAdvice() == "" {
			t.Errorf("%s: empty English advice", level)
		}
		if level.LabelBangla() == "" {
			t.Errorf("%s: empty Bangla label", level)
		}
	}
}

func TestBatchRecordSanitized(t *testing.T) {
	rec := BatchRecord{
		BatchID:         "B-1",
		MoisturePercent: math.NaN(),
		TemperatureC:    math.Inf(1),
	}
	got := rec.Sanitized()
	if got.MoisturePercent != 0 || got.TemperatureC != 0 {
		t.Errorf("Sanitized() = moisture %v temp %v, want 0/0",
			got.MoisturePercent, got.TemperatureC)
	}
	if got.BatchID != "B-1" {
		t.Errorf("Sanitized() must not touch identity fields, got %q", got.BatchID)
	}

	clean := BatchRecord{MoisturePercent: 18.5, TemperatureC: 30.2}.Sanitized()
	if clean.MoisturePercent != 18.5 || clean.TemperatureC != 30.2 {
		t.Errorf("Sanitized() altered finite values: %+v", clean)
	}
}

func TestForecastSeriesAverages(t *testing.T) {
	series := ForecastSeries{
		{HumidityPercent: 80, RainProbabilityPercent: 40, TemperatureC: 30},
		{HumidityPercent: 90, RainProbabilityPercent: 50, TemperatureC: 32},
	}
	h, r, temp := series.Averages()
	if h != 85 || r != 45 || temp != 31 {
		t.Errorf("Averages() = %v/%v/%v, want 85/45/31", h, r, temp)
	}

	h, r, temp = ForecastSeries{}.Averages()
	if h != 0 || r != 0 || temp != 0 {
		t.Errorf("empty series Averages() = %v/%v/%v, want zeros", h, r, temp)
	}
}
