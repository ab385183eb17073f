// Package spoilage estimates how long a stored batch has until critical
// loss, given its measured condition and a multi-day forecast.
package spoilage

import (
	"math"

	"harvest-guard/internal/model"
)

// Safe-storage baselines. Moisture and temperature above these push the risk
// factor up; below them they extend the estimate.
const (
	baselineMoisturePercent = 14.0
	baselineTemperatureC    = 28.0

	moistureWeight    = 2.0
	temperatureWeight = 1.5

	baseHours      = 120.0
	hoursPerFactor = 6.0
)

// Forecast penalty thresholds, all applied additively in this order.
const (
	humidityPenaltyAbove = 80.0
	rainPenaltyAbove     = 60.0
	tempPenaltyAbove     = 32.0

	humidityPenaltyHours = 12
	rainPenaltyHours     = 18
	tempPenaltyHours     = 6
)

// Estimate computes the estimated time to critical loss (ETCL) in hours.
//
// Out-of-range or non-finite moisture/temperature never fail: non-finite
// values are treated as 0 and the result is hard-clamped to
// [MinETCLHours, MaxETCLHours], which keeps dirty ingestion data harmless.
func Estimate(moisturePercent, temperatureC float64, forecast model.ForecastSeries) model.SpoilageEstimate {
	m := finiteOrZero(moisturePercent)
	t := finiteOrZero(temperatureC)

	riskFactor := (m-baselineMoisturePercent)*moistureWeight + (t-baselineTemperatureC)*temperatureWeight
	hours := clampHours(baseHours - riskFactor*hoursPerFactor)

	avgHumidity, avgRain, avgTemp := forecast.Averages()

	if avgHumidity > humidityPenaltyAbove {
		hours -= humidityPenaltyHours
	}
	if avgRain > rainPenaltyAbove {
		hours -= rainPenaltyHours
	}
	if avgTemp > tempPenaltyAbove {
		hours -= tempPenaltyHours
	}

	// Penalties only subtract, so only the floor needs re-applying.
	if hours < model.MinETCLHours {
		hours = model.MinETCLHours
	}

	return model.SpoilageEstimate{
		ETCLHours:                 int(math.Round(hours)),
		AvgHumidityPercent:        avgHumidity,
		AvgRainProbabilityPercent: avgRain,
		AvgTemperatureC:           avgTemp,
	}
}

func clampHours(h float64) float64 {
	if h < model.MinETCLHours {
		return model.MinETCLHours
	}
	if h > model.MaxETCLHours {
		return model.MaxETCLHours
	}
	return h
}

func finiteOrZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
