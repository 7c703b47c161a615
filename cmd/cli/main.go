package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"tou-pricegen/internal/analysis"
	"tou-pricegen/internal/config"
	"tou-pricegen/internal/export"
	"tou-pricegen/internal/model"
	"tou-pricegen/internal/recorder"
	"tou-pricegen/internal/tou"
)

func main() {
	if len(os.Args) < 2 {
		// Bare invocation runs the stock generation, like the original script.
		cmdGenerate(nil)
		return
	}

	switch os.Args[1] {
	case "generate":
		cmdGenerate(os.Args[2:])
	case "stats":
		cmdStats(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli generate [--config config.yaml] [--start '2025-01-06 00:00:00'] [--days 30] [--step 15] [--out tnb_tou_price.csv]")
	fmt.Println("  cli stats --in tnb_tou_price.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - generate writes the TOU price table as CSV and prints a preview")
	fmt.Println("  - stats summarizes an existing price CSV (rows per tier, mean price)")
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	start := fs.String("start", "", "Start timestamp, 'YYYY-MM-DD HH:MM:SS' (overrides config)")
	days := fs.Int("days", 0, "Number of days to generate (overrides config)")
	step := fs.Int("step", 0, "Time step in minutes (overrides config)")
	out := fs.String("out", "", "Output CSV path (overrides config)")
	_ = fs.Parse(args)

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}
	if *start != "" {
		cfg.Generation.StartDate = *start
	}
	if *days != 0 {
		cfg.Generation.NumDays = *days
	}
	if *step != 0 {
		cfg.Generation.TimeStepMinutes = *step
	}
	if *out != "" {
		cfg.Output.Path = *out
	}

	spec, err := cfg.GridSpec()
	if err != nil {
		fatal(err)
	}
	series, err := tou.Generate(spec, cfg.Tariff)
	if err != nil {
		fatal(err)
	}

	if dir := filepath.Dir(cfg.Output.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatal(err)
		}
	}
	if err := export.WriteSeriesCSV(cfg.Output.Path, series); err != nil {
		fatal(fmt.Errorf("write %s: %w", cfg.Output.Path, err))
	}

	rec := openRecorder(cfg)
	defer rec.Close()
	if err := rec.RecordRun(recorder.Run{
		StartDate:       cfg.Generation.StartDate,
		NumDays:         cfg.Generation.NumDays,
		TimeStepMinutes: cfg.Generation.TimeStepMinutes,
		TariffName:      cfg.Tariff.Name,
		Rows:            len(series.Records),
		OutputPath:      cfg.Output.Path,
		CreatedAt:       time.Now(),
	}); err != nil {
		log.Printf("record run: %v", err)
	}

	fmt.Printf("TOU price dataset generated and saved to: %s\n", cfg.Output.Path)
	fmt.Printf("Total data rows (%d-minute intervals): %d rows\n", cfg.Generation.TimeStepMinutes, len(series.Records))
	fmt.Printf("\nFirst %d rows of the dataset:\n", cfg.Output.PreviewRows)
	export.PrintPreview(os.Stdout, series.Records, cfg.Output.PreviewRows)
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	in := fs.String("in", config.DefaultOutputPath, "Path to a previously generated price CSV")
	cfgPath := fs.String("config", "", "Path to YAML config; without it the tariff is inferred from the data")
	_ = fs.Parse(args)

	records, err := export.ReadSeriesCSV(*in)
	if err != nil {
		fatal(err)
	}

	tariff := analysis.InferTariff(records)
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
		tariff = cfg.Tariff
	}
	st := analysis.Compute(records, tariff)

	fmt.Printf("%-14s %d\n", "rows", st.Rows)
	fmt.Printf("%-14s %d (%.1f%%)\n", "peak rows", st.PeakRows, st.PeakShare*100)
	fmt.Printf("%-14s %d\n", "off-peak rows", st.OffPeakRows)
	fmt.Printf("%-14s %.4f\n", "mean sen/kWh", st.MeanPrice)
	fmt.Printf("%-14s %.2f / %.2f\n", "min/max", st.MinPrice, st.MaxPrice)
	if st.Rows > 0 {
		fmt.Printf("%-14s %s .. %s\n", "span",
			st.First.Format(model.TimestampLayout),
			st.Last.Format(model.TimestampLayout))
	}
}

func openRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Recorder.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	r, err := recorder.NewSQLiteRecorder(cfg.Recorder.SQLitePath)
	if err != nil {
		log.Printf("recorder disabled: %v", err)
		return recorder.NewNoopRecorder()
	}
	return r
}

func fatal(err error) {
	if errors.Is(err, tou.ErrInvalidInput) {
		fmt.Fprintf(os.Stderr, "invalid input: %v\n", err)
		os.Exit(2)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
