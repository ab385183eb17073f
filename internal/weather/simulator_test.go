package weather

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"harvest-guard/internal/model"
)

func TestForecastAlwaysSevenDays(t *testing.T) {
	sim := NewWithSource(nil, rand.NewSource(1))
	for _, region := range []string{"Dhaka", "Sylhet", "Rajshahi", "Atlantis", ""} {
		series := sim.Forecast(region)
		if len(series) != model.ForecastDays {
			t.Errorf("Forecast(%q) returned %d days, want %d", region, len(series), model.ForecastDays)
		}
	}
}

func TestForecastDayLabels(t *testing.T) {
	sim := NewWithSource(nil, rand.NewSource(1))
	series := sim.Forecast("Dhaka")
	for i, d := range series {
		want := fmt.Sprintf("Day %d", i+1)
		if d.DayLabel != want {
			t.Errorf("day %d label = %q, want %q", i, d.DayLabel, want)
		}
	}
}

func TestForecastValuesWithinProfileRange(t *testing.T) {
	sim := NewWithSource(nil, rand.NewSource(7))
	profile := DefaultProfiles()["Sylhet"]
	for i := 0; i < 50; i++ {
		for _, d := range sim.Forecast("Sylhet") {
			if d.TemperatureC < profile.TemperatureC.Min || d.TemperatureC > profile.TemperatureC.Max {
				t.Fatalf("temperature %v outside [%v, %v]", d.TemperatureC, profile.TemperatureC.Min, profile.TemperatureC.Max)
			}
			if d.HumidityPercent < profile.HumidityPercent.Min || d.HumidityPercent > profile.HumidityPercent.Max {
				t.Fatalf("humidity %v outside [%v, %v]", d.HumidityPercent, profile.HumidityPercent.Min, profile.HumidityPercent.Max)
			}
			if d.RainProbabilityPercent < profile.RainProbability.Min || d.RainProbabilityPercent > profile.RainProbability.Max {
				t.Fatalf("rain %v outside [%v, %v]", d.RainProbabilityPercent, profile.RainProbability.Min, profile.RainProbability.Max)
			}
		}
	}
}

func TestUnknownRegionUsesDefaultProfile(t *testing.T) {
	// Two simulators with the same seed must draw identical series for an
	// unknown region and for the default profile itself, proving the
	// fallback and that no error path exists.
	a := NewWithSource(nil, rand.NewSource(99))
	b := NewWithSource(nil, rand.NewSource(99))

	unknown := a.Forecast("Nowhere")
	def := b.Forecast(DefaultProfileName)
	for i := range unknown {
		if unknown[i] != def[i] {
			t.Fatalf("day %d: unknown-region draw %+v != default-profile draw %+v", i, unknown[i], def[i])
		}
	}
}

func TestSeededForecastDeterministic(t *testing.T) {
	a := NewWithSource(nil, rand.NewSource(42)).Forecast("Dhaka")
	b := NewWithSource(nil, rand.NewSource(42)).Forecast("Dhaka")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("day %d differs across identically seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestProfileOverride(t *testing.T) {
	custom := map[string]Profile{
		"Dhaka": {
			TemperatureC:    Range{Min: 10, Max: 10},
			HumidityPercent: Range{Min: 20, Max: 20},
			RainProbability: Range{Min: 30, Max: 30},
		},
	}
	sim := NewWithSource(custom, rand.NewSource(3))
	for _, d := range sim.Forecast("Dhaka") {
		if d.TemperatureC != 10 || d.HumidityPercent != 20 || d.RainProbabilityPercent != 30 {
			t.Fatalf("override profile not applied: %+v", d)
		}
	}
	// Non-overridden regions keep their built-in profile.
	if len(sim.Forecast("Sylhet")) != model.ForecastDays {
		t.Fatal("built-in profiles lost after override")
	}
}

func TestForecastConcurrentCallers(t *testing.T) {
	// The API serves handlers on concurrent goroutines against one shared
	// simulator, so Forecast must tolerate parallel callers. Run under the
	// race detector to catch unsynchronized draws.
	sim := NewWithSource(nil, rand.NewSource(5))
	profile := DefaultProfiles()["Dhaka"]

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				series := sim.Forecast("Dhaka")
				if len(series) != model.ForecastDays {
					t.Errorf("got %d days, want %d", len(series), model.ForecastDays)
					return
				}
				for _, d := range series {
					if d.TemperatureC < profile.TemperatureC.Min || d.TemperatureC > profile.TemperatureC.Max {
						t.Errorf("temperature %v outside [%v, %v]", d.TemperatureC, profile.TemperatureC.Min, profile.TemperatureC.Max)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestRegionsExcludesDefault(t *testing.T) {
	sim := NewWithSource(nil, rand.NewSource(1))
	for _, name := range sim.Regions() {
		if name == DefaultProfileName {
			t.Fatalf("Regions() must not expose the %q fallback", DefaultProfileName)
		}
	}
	if len(sim.Regions()) == 0 {
		t.Fatal("Regions() is empty")
	}
}
