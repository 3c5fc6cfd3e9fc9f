package dataprocessing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid is the untyped rectangular view of one source file: rows of trimmed
// cell strings. Rows may have different lengths; source data is untrusted.
type Grid [][]string

// utf8BOM is prepended by Excel and several publishers' CSV exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadGrid decodes a source file's bytes into a Grid. The container kind is
// inferred from the file extension first, then from the content itself
// (xlsx files are zip archives). Undecodable content yields a
// *MalformedFileError naming the file.
func ReadGrid(filename string, data []byte) (Grid, error) {
	if len(data) == 0 {
		return nil, &MalformedFileError{File: filename, Cause: fmt.Errorf("file is empty")}
	}

	if isSpreadsheet(filename, data) {
		return readWorkbook(filename, data)
	}
	return readDelimited(filename, data)
}

// isSpreadsheet checks the extension and falls back to the zip magic bytes,
// since uploads and exports frequently arrive with the wrong extension.
func isSpreadsheet(filename string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls", ".xlsm":
		return true
	case ".csv", ".txt", ".tsv":
		return false
	}
	return bytes.HasPrefix(data, []byte("PK\x03\x04"))
}

// readWorkbook decodes the first sheet of an Excel workbook.
func readWorkbook(filename string, data []byte) (Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &MalformedFileError{File: filename, Cause: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &MalformedFileError{File: filename, Cause: fmt.Errorf("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &MalformedFileError{File: filename, Cause: err}
	}

	grid := make(Grid, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = strings.TrimSpace(cell)
		}
		grid[i] = cells
	}

	slog.Debug("decoded workbook",
		slog.String("file", filename),
		slog.String("sheet", sheets[0]),
		slog.Int("rows", len(grid)))
	return grid, nil
}

// readDelimited decodes a delimited text file. The field delimiter is sniffed
// between comma and semicolon on the first line; semicolon-delimited exports
// are common where the decimal separator is a comma.
func readDelimited(filename string, data []byte) (Grid, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &MalformedFileError{File: filename, Cause: err}
	}

	grid := make(Grid, len(records))
	for i, record := range records {
		cells := make([]string, len(record))
		for j, cell := range record {
			cells[j] = strings.Trim(strings.TrimSpace(cell), `"`)
		}
		grid[i] = cells
	}

	slog.Debug("decoded delimited file",
		slog.String("file", filename),
		slog.Int("rows", len(grid)))
	return grid, nil
}

// sniffDelimiter picks the delimiter with more hits on the first line.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}
