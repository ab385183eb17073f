package data

import (
	"encoding/csv"
	"os"
	"strconv"

	"harvest-guard/internal/model"
)

// WriteSummariesCSV writes one row per assessed batch. This is the artifact
// the dashboard offers for download after an assessment run.
func WriteSummariesCSV(path string, summaries []model.RiskSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"assessment_id",
		"batch_id",
		"division",
		"district",
		"crop_type",
		"crop_local_name",
		"storage_type",
		"storage_local_name",
		"risk_level",
		"risk_local_label",
		"etcl_hours",
		"avg_humidity_percent",
		"avg_rain_probability_percent",
		"avg_temperature_c",
		"message",
		"advisory_message",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range summaries {
		row := []string{
			s.AssessmentID,
			s.BatchID,
			s.Division,
			s.District,
			s.CropType,
			s.CropLocalName,
			s.StorageType,
			s.StorageLocalName,
			string(s.RiskLevel),
			s.RiskLocalLabel,
			strconv.Itoa(s.ETCLHours),
			fmtFloat(s.AvgHumidityPercent),
			fmtFloat(s.AvgRainProbabilityPercent),
			fmtFloat(s.AvgTemperatureC),
			s.Message,
			s.AdvisoryMessage,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 1, 64)
}
