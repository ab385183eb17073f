// Package pipeline composes the weather, spoilage, classification, advisory
// and notification stages into the per-batch risk assessment run.
package pipeline

import (
	"sync"

	"github.com/google/uuid"

	"harvest-guard/internal/advisory"
	"harvest-guard/internal/model"
	"harvest-guard/internal/notify"
	"harvest-guard/internal/spoilage"
)

// ForecastProvider supplies a 7-day series for a region. Production uses the
// weather simulator; tests substitute a fixed series.
type ForecastProvider interface {
	Forecast(region string) model.ForecastSeries
}

// Options tune a pipeline run.
type Options struct {
	// Language selects the advisory rendering; empty means Bangla.
	Language advisory.Lang
	// Workers bounds concurrent per-record processing. Records are
	// independent, so this is an optimization only; 0 or 1 runs
	// sequentially. Output order is the filtered input order either way.
	Workers int
}

// Engine orchestrates one assessment per batch record.
type Engine struct {
	forecasts ForecastProvider
	composer  *advisory.Composer
	trigger   *notify.Trigger
	opts      Options
}

// New builds an engine. A nil trigger disables notifications.
func New(forecasts ForecastProvider, composer *advisory.Composer, trigger *notify.Trigger, opts Options) *Engine {
	if opts.Language == "" {
		opts.Language = advisory.LangBangla
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Engine{
		forecasts: forecasts,
		composer:  composer,
		trigger:   trigger,
		opts:      opts,
	}
}

// Run filters records by exact division match (required) and district match
// (optional), assesses each survivor independently, and returns summaries in
// the filtered input order. An empty result is not an error.
//
// Notification delivery for Critical summaries happens as a side effect and
// never influences the returned value.
func (e *Engine) Run(records []model.BatchRecord, division, district string) []model.RiskSummary {
	filtered := Filter(records, division, district)
	if len(filtered) == 0 {
		return []model.RiskSummary{}
	}

	// Forecast draws happen up front on a single goroutine so seeded runs
	// consume the random source in input order and stay reproducible
	// regardless of worker count.
	forecasts := make([]model.ForecastSeries, len(filtered))
	for i, rec := range filtered {
		forecasts[i] = e.forecasts.Forecast(rec.Division)
	}

	summaries := make([]model.RiskSummary, len(filtered))
	if e.opts.Workers == 1 {
		for i, rec := range filtered {
			summaries[i] = e.Assess(rec, forecasts[i])
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan struct{}, e.opts.Workers)
		for i := range filtered {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				summaries[i] = e.Assess(filtered[i], forecasts[i])
			}(i)
		}
		wg.Wait()
	}

	if e.trigger != nil {
		for _, s := range summaries {
			if s.RiskLevel == model.RiskCritical {
				e.trigger.MaybeNotify(s)
			}
		}
	}
	return summaries
}

// Assess runs estimation, classification and advisory composition for one
// record against the given forecast. Pure apart from the uuid draw.
func (e *Engine) Assess(rec model.BatchRecord, forecast model.ForecastSeries) model.RiskSummary {
	rec = rec.Sanitized()

	est := spoilage.Estimate(rec.MoisturePercent, rec.TemperatureC, forecast)
	level := model.ClassifyETCL(est.ETCLHours)

	ctx := advisory.Context{
		CropName:    e.composer.CropName(rec.CropType),
		StorageName: e.composer.StorageName(rec.StorageType),
		ETCLHours:   est.ETCLHours,
		AvgHumidity: est.AvgHumidityPercent,
		AvgRain:     est.AvgRainProbabilityPercent,
		AvgTemp:     est.AvgTemperatureC,
	}
	adv := e.composer.Compose(e.opts.Language, level, ctx)

	return model.RiskSummary{
		AssessmentID: uuid.NewString(),

		BatchID:  rec.BatchID,
		Division: rec.Division,
		District: rec.District,

		CropType:         rec.CropType,
		CropLocalName:    ctx.CropName,
		StorageType:      rec.StorageType,
		StorageLocalName: ctx.StorageName,

		RiskLevel:      level,
		RiskLocalLabel: level.LabelBangla(),
		Icon:           adv.Icon,

		SpoilageEstimate: est,
		Forecast:         forecast,

		Message:         level.EnglishAdvice(),
		AdvisoryMessage: adv.Text,
	}
}

// Filter keeps records whose division matches exactly and, when district is
// non-empty, whose district matches exactly. Relative order is preserved.
func Filter(records []model.BatchRecord, division, district string) []model.BatchRecord {
	out := make([]model.BatchRecord, 0, len(records))
	for _, rec := range records {
		if rec.Division != division {
			continue
		}
		if district != "" && rec.District != district {
			continue
		}
		out = append(out, rec)
	}
	return out
}
