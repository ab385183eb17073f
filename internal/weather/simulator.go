package weather

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"harvest-guard/internal/model"
)

// Range is a [Min, Max] interval to draw from.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Profile is a coarse climate profile for one division.
// Units: TemperatureC in degrees Celsius, the others in percent.
type Profile struct {
	TemperatureC    Range `yaml:"temperature_c" json:"temperature_c"`
	HumidityPercent Range `yaml:"humidity_percent" json:"humidity_percent"`
	RainProbability Range `yaml:"rain_probability" json:"rain_probability"`
}

// DefaultProfileName keys the fallback profile used for any division that
// has no entry of its own. Unknown regions are not an error.
const DefaultProfileName = "default"

// DefaultProfiles covers the divisions the dashboard ships with. District
// level granularity was considered and left as a config decision; overriding
// or extending this map via config is supported.
func DefaultProfiles() map[string]Profile {
	return map[string]Profile{
		"Dhaka": {
			TemperatureC:    Range{Min: 26, Max: 35},
			HumidityPercent: Range{Min: 60, Max: 85},
			RainProbability: Range{Min: 30, Max: 70},
		},
		"Chattogram": {
			TemperatureC:    Range{Min: 25, Max: 33},
			HumidityPercent: Range{Min: 70, Max: 90},
			RainProbability: Range{Min: 40, Max: 80},
		},
		"Sylhet": {
			TemperatureC:    Range{Min: 24, Max: 32},
			HumidityPercent: Range{Min: 75, Max: 95},
			RainProbability: Range{Min: 50, Max: 90},
		},
		"Rajshahi": {
			TemperatureC:    Range{Min: 28, Max: 38},
			HumidityPercent: Range{Min: 50, Max: 75},
			RainProbability: Range{Min: 20, Max: 55},
		},
		DefaultProfileName: {
			TemperatureC:    Range{Min: 25, Max: 34},
			HumidityPercent: Range{Min: 60, Max: 85},
			RainProbability: Range{Min: 30, Max: 65},
		},
	}
}

// Simulator produces simulated 7-day forecasts. The random source is
// injected so tests can pin a seed and get deterministic output. Forecast is
// safe for concurrent use; the mutex serializes draws on the shared source.
type Simulator struct {
	profiles map[string]Profile

	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a simulator over the default profiles, seeded from the clock.
func New() *Simulator {
	return NewWithSource(DefaultProfiles(), rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource builds a simulator with explicit profiles and randomness.
// If profiles is nil or lacks a "default" entry, the built-in defaults fill
// the gaps.
func NewWithSource(profiles map[string]Profile, src rand.Source) *Simulator {
	merged := DefaultProfiles()
	for name, p := range profiles {
		merged[name] = p
	}
	return &Simulator{
		profiles: merged,
		rng:      rand.New(src),
	}
}

// Regions lists the division names with a dedicated profile, excluding the
// default fallback.
func (s *Simulator) Regions() []string {
	out := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		if name == DefaultProfileName {
			continue
		}
		out = append(out, name)
	}
	return out
}

// Forecast draws a fresh 7-day series for the region. Each quantity is drawn
// independently and uniformly from the region's range, rounded to one
// decimal. An unrecognized region silently uses the default profile.
func (s *Simulator) Forecast(region string) model.ForecastSeries {
	p, ok := s.profiles[region]
	if !ok {
		p = s.profiles[DefaultProfileName]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	series := make(model.ForecastSeries, 0, model.ForecastDays)
	for day := 1; day <= model.ForecastDays; day++ {
		series = append(series, model.ForecastDay{
			DayLabel:               fmt.Sprintf("Day %d", day),
			TemperatureC:           s.draw(p.TemperatureC),
			HumidityPercent:        s.draw(p.HumidityPercent),
			RainProbabilityPercent: s.draw(p.RainProbability),
		})
	}
	return series
}

func (s *Simulator) draw(r Range) float64 {
	return model.Round1(r.Min + s.rng.Float64()*(r.Max-r.Min))
}
