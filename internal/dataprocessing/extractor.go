package dataprocessing

import (
	"log/slog"
	"sort"
	"strings"

	"lottoscope/pkg/contracts/domain"
)

// ExtractDraws applies a located column map to every row below the header
// and returns the rows that survive structural validation as Draws.
//
// A row is kept only when its contest cell is non-empty, its date cell
// parses, and the deduplicated number set has exactly drawSize members.
// Anything else is dropped without error: historical exports are full of
// subtotal rows, blank spacers and typos, and a miscounted draw would
// silently corrupt every downstream aggregate.
func ExtractDraws(filename string, grid Grid, cols ColumnMap, profile domain.Profile) []domain.Draw {
	var draws []domain.Draw
	dropped := 0

	for i := cols.HeaderRow + 1; i < len(grid); i++ {
		row := grid[i]

		draw, ok := extractRow(row, cols, profile)
		if !ok {
			if !rowIsBlank(row) {
				dropped++
				slog.Debug("dropped row",
					slog.String("file", filename),
					slog.Int("row", i))
			}
			continue
		}
		draws = append(draws, draw)
	}

	slog.Info("extracted draws",
		slog.String("file", filename),
		slog.Int("draws", len(draws)),
		slog.Int("dropped_rows", dropped))
	return draws
}

func extractRow(row []string, cols ColumnMap, profile domain.Profile) (domain.Draw, bool) {
	contest := cellAt(row, cols.Contest)
	if contest == "" {
		return domain.Draw{}, false
	}

	date, ok := ParseDrawDate(cellAt(row, cols.Date))
	if !ok {
		return domain.Draw{}, false
	}

	var numbers []int
	if cols.ScanRow {
		numbers = scanRowNumbers(row, cols, profile)
	} else {
		numbers = slotNumbers(row, cols.Slots, profile)
	}

	// Dedupe: a malformed source listing the same ball twice must not
	// inflate its frequency.
	numbers = uniqueSorted(numbers)
	if len(numbers) != profile.DrawSize {
		return domain.Draw{}, false
	}

	return domain.Draw{ContestID: contest, Numbers: numbers, Date: date}, true
}

// slotNumbers reads the resolved number-slot columns (strict mode).
func slotNumbers(row []string, slots []int, profile domain.Profile) []int {
	var numbers []int
	for _, col := range slots {
		if n, ok := parseGameNumber(cellAt(row, col), profile); ok {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// scanRowNumbers collects every in-range integer in the row (loose mode).
// The contest and date columns are excluded; any other numeric column that
// happens to fall in range is taken - an accepted heuristic risk of the
// loose layout.
func scanRowNumbers(row []string, cols ColumnMap, profile domain.Profile) []int {
	var numbers []int
	for j, cell := range row {
		if j == cols.Contest || j == cols.Date {
			continue
		}
		if n, ok := parseGameNumber(cell, profile); ok {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func uniqueSorted(numbers []int) []int {
	if len(numbers) == 0 {
		return numbers
	}
	sort.Ints(numbers)
	out := numbers[:1]
	for _, n := range numbers[1:] {
		if n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return out
}
