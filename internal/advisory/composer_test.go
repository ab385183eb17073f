package advisory

import (
	"strings"
	"testing"

	"harvest-guard/internal/model"
)

func TestCriticalBranchOrder(t *testing.T) {
	c := New()
	cases := []struct {
		name   string
		ctx    Context
		wantBn string // substring that identifies the branch
		wantEn string
	}{
		{
			// Rain check precedes humidity and temperature even when
			// several factors are elevated.
			name:   "rain dominant",
			ctx:    Context{CropName: "ধান", StorageName: "গুদাম", AvgRain: 75, AvgHumidity: 50, AvgTemp: 30, ETCLHours: 20},
			wantBn: "বৃষ্টির সম্ভাবনা",
			wantEn: "Rain probability",
		},
		{
			name:   "humidity dominant when rain check fails",
			ctx:    Context{CropName: "ধান", StorageName: "গুদাম", AvgRain: 40, AvgHumidity: 85, AvgTemp: 30, ETCLHours: 12},
			wantBn: "আর্দ্রতা",
			wantEn: "Humidity",
		},
		{
			name:   "heat dominant when rain and humidity fail",
			ctx:    Context{CropName: "ধান", StorageName: "গুদাম", AvgRain: 40, AvgHumidity: 60, AvgTemp: 37, ETCLHours: 18},
			wantBn: "তাপমাত্রা",
			wantEn: "Temperatures",
		},
		{
			// Templates interpolate with %d, so the hour count stays in
			// ASCII digits in both languages.
			name:   "generic fallback names the hour count",
			ctx:    Context{CropName: "ধান", StorageName: "গুদাম", AvgRain: 40, AvgHumidity: 60, AvgTemp: 30, ETCLHours: 18},
			wantBn: "18",
			wantEn: "18 hours",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bn := c.Compose(LangBangla, model.RiskCritical, tc.ctx)
			en := c.Compose(LangEnglish, model.RiskCritical, tc.ctx)
			if !strings.Contains(bn.Text, tc.wantBn) {
				t.Errorf("bn = %q, want substring %q", bn.Text, tc.wantBn)
			}
			if !strings.Contains(en.Text, tc.wantEn) {
				t.Errorf("en = %q, want substring %q", en.Text, tc.wantEn)
			}
			if bn.Icon != model.RiskCritical.Icon() || en.Icon != model.RiskCritical.Icon() {
				t.Errorf("icon = %q/%q, want %q", bn.Icon, en.Icon, model.RiskCritical.Icon())
			}
		})
	}
}

func TestHighBranchOrder(t *testing.T) {
	c := New()

	rain := c.Compose(LangEnglish, model.RiskHigh, Context{CropName: "wheat", StorageName: "silo", AvgRain: 65, AvgHumidity: 80})
	if !strings.Contains(rain.Text, "rain probability") {
		t.Errorf("rain>60 must win over humidity, got %q", rain.Text)
	}

	humid := c.Compose(LangEnglish, model.RiskHigh, Context{CropName: "wheat", StorageName: "silo", AvgRain: 55, AvgHumidity: 80})
	if !strings.Contains(humid.Text, "humidity") {
		t.Errorf("humidity>75 branch expected, got %q", humid.Text)
	}

	generic := c.Compose(LangEnglish, model.RiskHigh, Context{CropName: "wheat", StorageName: "silo", AvgRain: 55, AvgHumidity: 70, ETCLHours: 40})
	if !strings.Contains(generic.Text, "40 hours") {
		t.Errorf("generic high branch must name ETCL, got %q", generic.Text)
	}
}

func TestModerateReportsFigures(t *testing.T) {
	c := New()
	adv := c.Compose(LangEnglish, model.RiskModerate, Context{CropName: "maize", StorageName: "warehouse", AvgHumidity: 68, AvgRain: 45})
	if !strings.Contains(adv.Text, "68") || !strings.Contains(adv.Text, "45") {
		t.Errorf("moderate advisory must report humidity and rain figures, got %q", adv.Text)
	}
	if adv.Icon != model.RiskModerate.Icon() {
		t.Errorf("icon = %q, want %q", adv.Icon, model.RiskModerate.Icon())
	}
}

func TestLowAdvisory(t *testing.T) {
	c := New()
	adv := c.Compose(LangEnglish, model.RiskLow, Context{CropName: "potato", StorageName: "cold storage"})
	if !strings.Contains(adv.Text, "good condition") {
		t.Errorf("low advisory = %q", adv.Text)
	}
	if adv.Icon != model.RiskLow.Icon() {
		t.Errorf("icon = %q, want %q", adv.Icon, model.RiskLow.Icon())
	}
}

func TestComposeDeterministic(t *testing.T) {
	c := New()
	ctx := Context{CropName: "ধান", StorageName: "গুদাম", AvgRain: 75, AvgHumidity: 85, AvgTemp: 36, ETCLHours: 14}
	a := c.Compose(LangBangla, model.RiskCritical, ctx)
	b := c.Compose(LangBangla, model.RiskCritical, ctx)
	if a != b {
		t.Errorf("same inputs produced different advisories: %+v vs %+v", a, b)
	}
}

func TestAdvisoryInterpolatesLocalizedNames(t *testing.T) {
	c := New()
	ctx := Context{CropName: c.CropName("paddy"), StorageName: c.StorageName("jute_sack"), AvgRain: 75}
	adv := c.Compose(LangBangla, model.RiskCritical, ctx)
	if !strings.Contains(adv.Text, "ধান") || !strings.Contains(adv.Text, "পাটের বস্তা") {
		t.Errorf("advisory must carry localized names, got %q", adv.Text)
	}
	if strings.Contains(adv.Text, "paddy") || strings.Contains(adv.Text, "jute_sack") {
		t.Errorf("advisory must not leak raw codes, got %q", adv.Text)
	}
}

func TestUnknownCodesFallBackToRaw(t *testing.T) {
	c := New()
	if got := c.CropName("dragonfruit"); got != "dragonfruit" {
		t.Errorf("CropName fallback = %q, want raw code", got)
	}
	if got := c.StorageName("orbital_silo"); got != "orbital_silo" {
		t.Errorf("StorageName fallback = %q, want raw code", got)
	}
}

func TestNameOverrides(t *testing.T) {
	c := NewWithNames(map[string]string{"paddy": "আমন ধান"}, nil)
	if got := c.CropName("paddy"); got != "আমন ধান" {
		t.Errorf("override not applied: %q", got)
	}
	if got := c.CropName("wheat"); got != "গম" {
		t.Errorf("defaults lost after override: %q", got)
	}
}
