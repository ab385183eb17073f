package data

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"harvest-guard/internal/model"
)

// LoadBatchJSON reads batch records from a JSON array on disk.
func LoadBatchJSON(path string) ([]model.BatchRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []model.BatchRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadBatchCSV reads batch records from a spreadsheet-style CSV export.
// The first row must be a header; columns are matched by name, so column
// order does not matter. Expected headers: batch_id, division, district,
// crop_type, storage_type, moisture_percent, temperature_c.
//
// Blank or non-numeric moisture/temperature cells are coerced to 0 rather
// than rejecting the row, matching the engine's defensive posture toward
// dirty ingestion data.
func LoadBatchCSV(path string) ([]model.BatchRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	// Spreadsheet exports often have ragged rows; missing cells read as "".
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"batch_id", "division"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%s: missing required column %q", path, required)
		}
	}

	records := make([]model.BatchRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, model.BatchRecord{
			BatchID:         cell(row, col, "batch_id"),
			Division:        cell(row, col, "division"),
			District:        cell(row, col, "district"),
			CropType:        cell(row, col, "crop_type"),
			StorageType:     cell(row, col, "storage_type"),
			MoisturePercent: numCell(row, col, "moisture_percent"),
			TemperatureC:    numCell(row, col, "temperature_c"),
		})
	}
	return records, nil
}

func cell(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func numCell(row []string, col map[string]int, name string) float64 {
	s := cell(row, col, name)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
