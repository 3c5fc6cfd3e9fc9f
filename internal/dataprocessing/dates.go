package dataprocessing

import (
	"regexp"
	"strconv"
	"time"
)

// drawDatePattern matches the first day/month/year group in a cell, with
// 1-2 digit day and month, 2 or 4 digit year, and "/", "-" or "." separators.
var drawDatePattern = regexp.MustCompile(`(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})`)

// ParseDrawDate extracts a calendar date from a cell value. It returns
// ok=false when no date pattern is present or the pattern names an impossible
// date (e.g. 31/02/2024) - callers treat that as a row-level validation
// failure, never a file-level one.
//
// Two-digit years follow the historical exports' convention: >50 maps to the
// 1900s, otherwise the 2000s. The rule is ambiguous on purpose; the existing
// data was normalized with it and compatibility wins over plausibility.
func ParseDrawDate(cell string) (time.Time, bool) {
	m := drawDatePattern.FindStringSubmatch(cell)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if len(m[3]) == 2 {
		if year > 50 {
			year += 1900
		} else {
			year += 2000
		}
	}

	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes overflow (Feb 31 becomes Mar 2/3); require an
	// exact round-trip to reject impossible dates.
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return time.Time{}, false
	}

	return d, true
}
