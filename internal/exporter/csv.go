package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// CSVWriter provides CSV export functionality for statistics snapshots.
type CSVWriter struct {
	dir string
}

// NewCSVWriter creates a writer rooted at the given export directory.
func NewCSVWriter(dir string) *CSVWriter {
	return &CSVWriter{dir: dir}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file under the export directory.
func (w *CSVWriter) WriteCSV(name string, options WriteOptions) error {
	fullPath := filepath.Join(w.dir, name)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8.
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	slog.Debug("wrote CSV file",
		slog.String("path", fullPath),
		slog.Int("records", len(options.Records)))
	return writer.Error()
}

// WriteSimpleCSV writes a BOM-prefixed CSV file with headers and records.
func (w *CSVWriter) WriteSimpleCSV(name string, headers []string, records [][]string) error {
	return w.WriteCSV(name, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}
