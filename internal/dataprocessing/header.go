package dataprocessing

import (
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"lottoscope/pkg/contracts/domain"
)

// maxHeaderScanRows bounds how deep into a grid the locator looks for a
// header row. Publisher exports put titles and legal boilerplate above the
// header, never more than a handful of rows of it.
const maxHeaderScanRows = 10

// ColumnMap is the result of a successful header scan: where the header row
// sits and which columns carry each semantic field.
//
// In strict mode Slots holds one column index per drawn-number position.
// In loose mode Slots is empty and ScanRow is set - the extractor scans
// whole rows for in-range numbers instead.
type ColumnMap struct {
	HeaderRow int
	Contest   int
	Date      int
	Slots     []int
	ScanRow   bool
}

var slotLabelPattern = regexp.MustCompile(`(?i)(?:bola|dezena|ball|number|num)\s*_?\s*(\d+)`)

func isContestLabel(cell string) bool {
	lower := strings.ToLower(cell)
	return strings.Contains(lower, "concurso") || strings.Contains(lower, "contest")
}

func isDateLabel(cell string) bool {
	lower := strings.ToLower(cell)
	return strings.Contains(lower, "data") || strings.Contains(lower, "date")
}

// headerStrategy probes a grid for a usable column layout. Strategies return
// a definite match or nothing; there are no sentinel indices to interpret.
type headerStrategy func(grid Grid, profile domain.Profile) (ColumnMap, bool)

// headerStrategies are tried in order of decreasing strictness; the first
// match wins.
var headerStrategies = []headerStrategy{
	locateStrict,
	locateLoose,
}

// LocateHeader scans the first rows of a grid for the contest, date and
// number-slot columns. When no strategy matches it returns a
// *HeaderNotFoundError naming the column kinds that were never found.
func LocateHeader(filename string, grid Grid, profile domain.Profile) (ColumnMap, error) {
	for _, strategy := range headerStrategies {
		if cols, ok := strategy(grid, profile); ok {
			slog.Debug("header located",
				slog.String("file", filename),
				slog.Int("header_row", cols.HeaderRow),
				slog.Bool("scan_mode", cols.ScanRow))
			return cols, nil
		}
	}
	return ColumnMap{}, &HeaderNotFoundError{File: filename, Missing: missingColumns(grid)}
}

// locateStrict requires contest, date and at least drawSize number-slot
// labels in a single row. Slot columns are taken in label order (Bola 1,
// Bola 2, ...), not sheet order.
func locateStrict(grid Grid, profile domain.Profile) (ColumnMap, bool) {
	for i, row := range grid {
		if i >= maxHeaderScanRows {
			break
		}

		contest, date := -1, -1
		type slot struct{ label, col int }
		var slots []slot

		for j, cell := range row {
			switch {
			case isContestLabel(cell) && contest == -1:
				contest = j
			case slotLabelPattern.MatchString(cell):
				m := slotLabelPattern.FindStringSubmatch(cell)
				n, _ := strconv.Atoi(m[1])
				slots = append(slots, slot{label: n, col: j})
			case isDateLabel(cell) && date == -1:
				date = j
			}
		}

		if contest == -1 || date == -1 || len(slots) < profile.DrawSize {
			continue
		}

		sort.SliceStable(slots, func(a, b int) bool { return slots[a].label < slots[b].label })
		cols := ColumnMap{HeaderRow: i, Contest: contest, Date: date}
		for _, s := range slots[:profile.DrawSize] {
			cols.Slots = append(cols.Slots, s.col)
		}
		return cols, true
	}
	return ColumnMap{}, false
}

// locateLoose requires only contest and date labels, then probes the row
// immediately below the candidate header: if it carries at least drawSize
// in-range numbers the number columns are left unresolved and the extractor
// falls back to scanning whole rows.
func locateLoose(grid Grid, profile domain.Profile) (ColumnMap, bool) {
	for i, row := range grid {
		if i >= maxHeaderScanRows {
			break
		}

		contest, date := -1, -1
		for j, cell := range row {
			switch {
			case isContestLabel(cell) && contest == -1:
				contest = j
			case isDateLabel(cell) && date == -1:
				date = j
			}
		}
		if contest == -1 || date == -1 || i+1 >= len(grid) {
			continue
		}

		if countInRange(grid[i+1], profile) < profile.DrawSize {
			continue
		}
		return ColumnMap{HeaderRow: i, Contest: contest, Date: date, ScanRow: true}, true
	}
	return ColumnMap{}, false
}

// countInRange counts the cells of a row that parse as playable numbers.
func countInRange(row []string, profile domain.Profile) int {
	count := 0
	for _, cell := range row {
		if n, ok := parseGameNumber(cell, profile); ok && n > 0 {
			count++
		}
	}
	return count
}

// parseGameNumber interprets a cell as a drawn number. Cells holding date
// separators never parse, so date columns cannot leak into a row scan.
func parseGameNumber(cell string, profile domain.Profile) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil || !profile.InRange(n) {
		return 0, false
	}
	return n, true
}

// missingColumns reports which label kinds never appeared in the scanned
// rows, for the HeaderNotFoundError message.
func missingColumns(grid Grid) []string {
	foundContest, foundDate, foundSlot := false, false, false
	for i, row := range grid {
		if i >= maxHeaderScanRows {
			break
		}
		for _, cell := range row {
			switch {
			case isContestLabel(cell):
				foundContest = true
			case slotLabelPattern.MatchString(cell):
				foundSlot = true
			case isDateLabel(cell):
				foundDate = true
			}
		}
	}

	var missing []string
	if !foundContest {
		missing = append(missing, "contest")
	}
	if !foundDate {
		missing = append(missing, "date")
	}
	if !foundSlot {
		missing = append(missing, "number")
	}
	return missing
}
