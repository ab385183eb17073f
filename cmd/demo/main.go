package main

import (
	"fmt"
	"math/rand"

	"harvest-guard/internal/advisory"
	"harvest-guard/internal/model"
	"harvest-guard/internal/notify"
	"harvest-guard/internal/pipeline"
	"harvest-guard/internal/weather"
)

// Seeded end-to-end run over a handful of sample batches, covering the full
// severity range.
func main() {
	records := []model.BatchRecord{
		{BatchID: "B-1001", Division: "Dhaka", District: "Gazipur", CropType: "paddy", StorageType: "jute_sack", MoisturePercent: 22, TemperatureC: 34},
		{BatchID: "B-1002", Division: "Dhaka", District: "Tangail", CropType: "wheat", StorageType: "warehouse", MoisturePercent: 13, TemperatureC: 26},
		{BatchID: "B-1003", Division: "Dhaka", District: "Gazipur", CropType: "potato", StorageType: "cold_storage", MoisturePercent: 16, TemperatureC: 29},
		{BatchID: "B-2001", Division: "Sylhet", District: "Moulvibazar", CropType: "maize", StorageType: "open_air", MoisturePercent: 19, TemperatureC: 31},
	}

	sim := weather.NewWithSource(nil, rand.NewSource(42))
	engine := pipeline.New(sim, advisory.New(), notify.NewTrigger(notify.LogDeliverer{}), pipeline.Options{})

	for _, division := range []string{"Dhaka", "Sylhet"} {
		fmt.Printf("== %s ==\n", division)
		for _, s := range engine.Run(records, division, "") {
			fmt.Printf("%s %s [%s] etcl=%dh\n", s.Icon, s.BatchID, s.RiskLevel, s.ETCLHours)
			fmt.Printf("   %s\n", s.AdvisoryMessage)
		}
	}
}
