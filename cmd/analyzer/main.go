package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"lottoscope/internal/analytics"
	"lottoscope/internal/config"
	"lottoscope/internal/exporter"
	"lottoscope/internal/files"
	"lottoscope/internal/infrastructure"
	"lottoscope/internal/services"
	"lottoscope/pkg/contracts/domain"
)

func main() {
	inDir := flag.String("in", "", "input directory with result files (positional file arguments override)")
	outDir := flag.String("out", "", "output directory for exports (defaults to configured exports dir)")
	preset := flag.String("profile", "", "named lottery preset (mega, quina, lotofacil)")
	total := flag.Int("total", 0, "total playable numbers (overrides configured profile)")
	draw := flag.Int("draw", 0, "numbers per draw")
	bet := flag.Int("bet", 0, "numbers per suggested ticket")
	hot := flag.Int("hot", 0, "hot pool size")
	cold := flag.Int("cold", 0, "cold pool size")
	from := flag.String("from", "", "only analyze draws on or after this date (YYYY-MM-DD)")
	to := flag.String("to", "", "only analyze draws on or before this date (YYYY-MM-DD)")
	seed := flag.Int64("seed", 0, "fixed random seed for reproducible suggestions")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	infrastructure.MustInitializeLogger(cfg.Logging)

	// One trace ID per run so the batch's log lines correlate.
	ctx := infrastructure.EnsureTraceID(context.Background())
	logger := infrastructure.LoggerWithContext(ctx)

	profile := cfg.Profile.ToProfile()
	if *preset != "" {
		named, ok := presetProfiles[*preset]
		if !ok {
			logger.Error("Unknown profile preset", "name", *preset)
			os.Exit(1)
		}
		profile = named
	}
	applyOverride(&profile.TotalNumbers, *total)
	applyOverride(&profile.DrawSize, *draw)
	applyOverride(&profile.BetSize, *bet)
	applyOverride(&profile.HotCount, *hot)
	applyOverride(&profile.ColdCount, *cold)

	inputs, err := collectInputs(flag.Args(), *inDir, cfg.Paths.DataDir)
	if err != nil {
		logger.Error("Failed to collect input files", "error", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		logger.Error("No input files found; pass files as arguments or use -in")
		os.Exit(1)
	}

	service := services.NewAnalysisService(logger)
	result, err := service.AnalyzeFiles(ctx, inputs, profile)
	if err != nil {
		logger.Error("Analysis failed", "error", err)
		os.Exit(1)
	}

	for _, report := range result.Files {
		if report.OK() {
			logger.Info("file ingested", "file", report.File, "draws", report.Draws)
		} else {
			logger.Warn("file skipped", "file", report.File, "error", report.Error)
		}
	}

	// Optional date-range second pass over the consolidated history.
	fromDate, toDate, err := parseRange(*from, *to)
	if err != nil {
		logger.Error("Invalid date range", "error", err)
		os.Exit(1)
	}
	if !fromDate.IsZero() || !toDate.IsZero() {
		result, err = service.Reanalyze(result.History, profile, fromDate, toDate)
		if err != nil {
			logger.Error("Date-range analysis failed", "error", err)
			os.Exit(1)
		}
	}

	if *seed != 0 {
		suggestions := analytics.NewSuggestionGenerator(rand.NewSource(*seed)).
			Generate(result.Statistics.Frequency, profile)
		result.Suggestions = &suggestions
	}

	exportDir := *outDir
	if exportDir == "" {
		exportDir = cfg.Paths.ExportsDir
	}
	if err := exporter.Snapshot(exportDir, result); err != nil {
		logger.Error("Export failed", "error", err)
		os.Exit(1)
	}

	printSummary(result)
	logger.Info("analysis exported", "dir", exportDir, "draws", len(result.History))
}

// presetProfiles covers the common Brazilian lottery formats; explicit flags
// still override individual fields.
var presetProfiles = map[string]domain.Profile{
	"mega":      {Name: "mega", TotalNumbers: 60, DrawSize: 6, BetSize: 6, HotCount: 10, ColdCount: 10},
	"quina":     {Name: "quina", TotalNumbers: 80, DrawSize: 5, BetSize: 5, HotCount: 8, ColdCount: 8},
	"lotofacil": {Name: "lotofacil", TotalNumbers: 25, DrawSize: 15, BetSize: 15, HotCount: 10, ColdCount: 10},
}

func applyOverride(target *int, value int) {
	if value > 0 {
		*target = value
	}
}

// collectInputs reads the positional file arguments, or discovers files in
// the -in directory (falling back to the configured data dir).
func collectInputs(args []string, inDir, dataDir string) ([]services.FileInput, error) {
	var paths []string
	if len(args) > 0 {
		paths = args
	} else {
		dir := inDir
		if dir == "" {
			dir = dataDir
		}
		found, err := files.FindInputFiles(dir)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			paths = append(paths, f.Path)
		}
	}

	var inputs []services.FileInput
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		inputs = append(inputs, services.FileInput{Name: filepath.Base(path), Data: data})
	}
	return inputs, nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	var fromDate, toDate time.Time
	var err error
	if from != "" {
		if fromDate, err = time.Parse("2006-01-02", from); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid -from: %w", err)
		}
	}
	if to != "" {
		if toDate, err = time.Parse("2006-01-02", to); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid -to: %w", err)
		}
	}
	return fromDate, toDate, nil
}

func printSummary(result *domain.AnalysisResult) {
	stats := result.Statistics
	fmt.Printf("Draws analyzed: %d\n", stats.TotalDraws)

	fmt.Print("Top numbers:  ")
	for i, entry := range stats.Frequency {
		if i == 10 {
			break
		}
		fmt.Printf("%d(%d) ", entry.Number, entry.Count)
	}
	fmt.Println()

	if len(stats.TopPairs) > 0 {
		top := stats.TopPairs[0]
		fmt.Printf("Top pair:     %d-%d (%d times)\n", top.A, top.B, top.Count)
	}
	if result.Suggestions != nil {
		fmt.Printf("Hot ticket:   %v\n", result.Suggestions.Hot)
		fmt.Printf("Cold ticket:  %v\n", result.Suggestions.Cold)
		fmt.Printf("Mixed ticket: %v\n", result.Suggestions.Mixed)
	}
}
