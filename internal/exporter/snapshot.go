package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lottoscope/pkg/contracts/domain"
)

// Snapshot writes an AnalysisResult to the export directory as a set of CSV
// files (one per aggregate, Excel-friendly) plus a single JSON bundle for
// web consumers.
//
// Files written: history.csv, frequency.csv, pairs.csv, parity.csv,
// intervals.csv, repeated.csv, analysis.json.
func Snapshot(dir string, result *domain.AnalysisResult) error {
	w := NewCSVWriter(dir)

	history := make([][]string, 0, len(result.History))
	for _, draw := range result.History {
		history = append(history, []string{
			draw.ContestID,
			draw.Date.Format("2006-01-02"),
			formatNumbers(draw.Numbers),
		})
	}
	if err := w.WriteSimpleCSV("history.csv", []string{"Contest", "Date", "Numbers"}, history); err != nil {
		return err
	}

	stats := result.Statistics

	freq := make([][]string, 0, len(stats.Frequency))
	for _, entry := range stats.Frequency {
		freq = append(freq, []string{formatInt(entry.Number), formatInt(entry.Count)})
	}
	if err := w.WriteSimpleCSV("frequency.csv", []string{"Number", "Count"}, freq); err != nil {
		return err
	}

	pairs := make([][]string, 0, len(stats.TopPairs))
	for _, pair := range stats.TopPairs {
		pairs = append(pairs, []string{formatInt(pair.A), formatInt(pair.B), formatInt(pair.Count)})
	}
	if err := w.WriteSimpleCSV("pairs.csv", []string{"NumberA", "NumberB", "Count"}, pairs); err != nil {
		return err
	}

	parity := make([][]string, 0, len(stats.Parity))
	for _, bucket := range stats.Parity {
		parity = append(parity, []string{bucket.Label(), formatInt(bucket.Count)})
	}
	if err := w.WriteSimpleCSV("parity.csv", []string{"Composition", "Count"}, parity); err != nil {
		return err
	}

	intervals := make([][]string, 0, len(stats.Intervals))
	for _, stat := range stats.Intervals {
		intervals = append(intervals, []string{
			formatInt(stat.Number),
			formatInt(stat.CurrentDelay),
			formatFloat(stat.AverageInterval),
			formatInt(stat.MaxDelay),
		})
	}
	if err := w.WriteSimpleCSV("intervals.csv", []string{"Number", "CurrentDelay", "AverageInterval", "MaxDelay"}, intervals); err != nil {
		return err
	}

	repeated := make([][]string, 0, len(stats.Repeated))
	for _, group := range stats.Repeated {
		repeated = append(repeated, []string{
			formatNumbers(group.Numbers),
			strings.Join(group.ContestIDs, " "),
		})
	}
	if err := w.WriteSimpleCSV("repeated.csv", []string{"Numbers", "Contests"}, repeated); err != nil {
		return err
	}

	return writeJSON(filepath.Join(dir, "analysis.json"), result)
}

func writeJSON(path string, result *domain.AnalysisResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
