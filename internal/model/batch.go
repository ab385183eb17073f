package model

import "math"

// BatchRecord describes one stored crop lot at a point in time.
// Records come from an external ingestion source (typically a spreadsheet
// import) and are treated as immutable once handed to the engine.
//
// Units:
// - MoisturePercent: grain moisture content, % (physical range roughly 8-30)
// - TemperatureC: storage temperature, degrees Celsius (roughly 15-45)
type BatchRecord struct {
	BatchID     string `json:"batch_id"`
	Division    string `json:"division"`
	District    string `json:"district"`
	CropType    string `json:"crop_type"`
	StorageType string `json:"storage_type"`

	MoisturePercent float64 `json:"moisture_percent"`
	TemperatureC    float64 `json:"temperature_c"`
}

// Sanitized returns a copy with non-finite moisture/temperature coerced to 0.
// Spreadsheet imports produce blank or garbage cells; the engine's posture is
// to degrade to a defined default rather than drop or reject the record.
func (b BatchRecord) Sanitized() BatchRecord {
	out := b
	out.MoisturePercent = finiteOrZero(b.MoisturePercent)
	out.TemperatureC = finiteOrZero(b.TemperatureC)
	return out
}

func finiteOrZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
