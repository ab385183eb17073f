package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"harvest-guard/internal/advisory"
	"harvest-guard/internal/analysis"
	"harvest-guard/internal/config"
	"harvest-guard/internal/data"
	"harvest-guard/internal/model"
	"harvest-guard/internal/notify"
	"harvest-guard/internal/pipeline"
	"harvest-guard/internal/weather"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "assess":
		cmdAssess(os.Args[2:])
	case "forecast":
		cmdForecast(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli assess --data batches.csv --division Dhaka [--district Gazipur] [--config config.yaml] [--out results/summaries.csv]")
	fmt.Println("  cli forecast --region Dhaka [--seed 42]")
	fmt.Println("  cli rank --data batches.csv --division Dhaka [--top 5]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - assess accepts .csv (header-mapped) or .json (array of records)")
	fmt.Println("  - rank orders assessed batches most-at-risk first (ascending ETCL)")
}

func cmdAssess(args []string) {
	fs := flag.NewFlagSet("assess", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to batch records (.csv or .json)")
	division := fs.String("division", "", "Division filter (required)")
	district := fs.String("district", "", "Optional district filter")
	cfgPath := fs.String("config", "", "Optional YAML config path")
	outPath := fs.String("out", "", "Optional output CSV path")
	seed := fs.Int64("seed", 0, "Optional forecast seed (0 = from clock)")
	_ = fs.Parse(args)

	if *dataPath == "" || *division == "" {
		fmt.Println("--data and --division are required")
		os.Exit(2)
	}

	records := loadRecords(*dataPath)
	cfg := loadConfig(*cfgPath)

	engine := buildEngine(cfg, *seed)
	summaries := engine.Run(records, *division, *district)

	dist := analysis.ComputeDistribution(summaries)
	fmt.Printf("Assessed %d batches: %d critical, %d high, %d moderate, %d low\n",
		dist.Total, dist.Critical, dist.High, dist.Moderate, dist.Low)

	for _, s := range summaries {
		fmt.Printf("%s %-12s %-10s etcl=%3dh %-8s %s\n",
			s.Icon, s.BatchID, s.District, s.ETCLHours, s.RiskLevel, s.AdvisoryMessage)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := data.WriteSummariesCSV(*outPath, summaries); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(summaries), *outPath)
	}
}

func cmdForecast(args []string) {
	fs := flag.NewFlagSet("forecast", flag.ExitOnError)
	region := fs.String("region", "", "Division name")
	seed := fs.Int64("seed", 0, "Optional seed (0 = from clock)")
	_ = fs.Parse(args)

	if *region == "" {
		fmt.Println("--region is required")
		os.Exit(2)
	}

	sim := weather.NewWithSource(nil, randSource(*seed))
	series := sim.Forecast(*region)

	fmt.Printf("%-8s %-8s %-10s %-8s\n", "day", "temp°C", "humidity%", "rain%")
	for _, d := range series {
		fmt.Printf("%-8s %-8.1f %-10.1f %-8.1f\n",
			d.DayLabel, d.TemperatureC, d.HumidityPercent, d.RainProbabilityPercent)
	}
	avgH, avgR, avgT := series.Averages()
	fmt.Printf("avg      %-8.1f %-10.1f %-8.1f\n", avgT, avgH, avgR)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to batch records (.csv or .json)")
	division := fs.String("division", "", "Division filter (required)")
	top := fs.Int("top", 0, "Optional: limit to N most urgent (0=all)")
	seed := fs.Int64("seed", 0, "Optional forecast seed (0 = from clock)")
	_ = fs.Parse(args)

	if *dataPath == "" || *division == "" {
		fmt.Println("--data and --division are required")
		os.Exit(2)
	}

	records := loadRecords(*dataPath)
	engine := buildEngine(config.Default(), *seed)
	summaries := engine.Run(records, *division, "")

	ranked := analysis.TopAtRisk(summaries, *top)
	fmt.Printf("%-4s %-12s %-10s %-8s %-10s\n", "rank", "batch", "district", "etcl(h)", "risk")
	for i, s := range ranked {
		fmt.Printf("%-4d %-12s %-10s %-8d %s %s\n",
			i+1, s.BatchID, s.District, s.ETCLHours, s.Icon, s.RiskLevel)
	}
}

func loadRecords(path string) []model.BatchRecord {
	var (
		records []model.BatchRecord
		err     error
	)
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		records, err = data.LoadBatchJSON(path)
	} else {
		records, err = data.LoadBatchCSV(path)
	}
	if err != nil {
		panic(err)
	}
	return records
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func buildEngine(cfg *config.Config, seed int64) *pipeline.Engine {
	sim := weather.NewWithSource(cfg.RegionProfiles, randSource(seed))
	composer := advisory.NewWithNames(cfg.CropNames, cfg.StorageNames)

	var deliverer notify.Deliverer
	if cfg.Notifications.Enabled {
		deliverer = notify.LogDeliverer{}
	}

	return pipeline.New(sim, composer, notify.NewTrigger(deliverer), pipeline.Options{
		Language: advisory.Lang(cfg.Language),
		Workers:  cfg.Workers,
	})
}

func randSource(seed int64) rand.Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.NewSource(seed)
}
