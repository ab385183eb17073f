package model

// ForecastDays is the fixed length of a simulated forecast series.
const ForecastDays = 7

// ForecastDay is one simulated day of weather.
type ForecastDay struct {
	DayLabel               string  `json:"day_label"` // "Day 1".."Day 7"
	TemperatureC           float64 `json:"temperature_c"`
	HumidityPercent        float64 `json:"humidity_percent"`
	RainProbabilityPercent float64 `json:"rain_probability_percent"`
}

// ForecastSeries is an ordered 7-day forecast. Order matters only for the
// day labels; the averaging below weights all days equally.
type ForecastSeries []ForecastDay

// Averages returns the arithmetic means of humidity, rain probability and
// temperature across the series, rounded to one decimal place.
func (fs ForecastSeries) Averages() (avgHumidity, avgRain, avgTemp float64) {
	if len(fs) == 0 {
		return 0, 0, 0
	}
	var h, r, t float64
	for _, d := range fs {
		h += d.HumidityPercent
		r += d.RainProbabilityPercent
		t += d.TemperatureC
	}
	n := float64(len(fs))
	return Round1(h / n), Round1(r / n), Round1(t / n)
}
