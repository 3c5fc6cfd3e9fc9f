package domain

import (
	"strconv"
	"strings"
)

// NumberFrequency is one entry of the frequency table: how many times a
// number appeared across the analyzed history. The table covers every number
// in [1, TotalNumbers], zero-filled for numbers never drawn.
type NumberFrequency struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// PairFrequency counts the co-occurrence of an unordered pair of numbers.
// A < B always holds.
type PairFrequency struct {
	A     int `json:"a"`
	B     int `json:"b"`
	Count int `json:"count"`
}

// ParityBucket counts the draws with a given even/odd composition.
type ParityBucket struct {
	Even  int `json:"even"`
	Odd   int `json:"odd"`
	Count int `json:"count"`
}

// Label renders the bucket the way the frontends display it, e.g. "3E-3O".
func (b ParityBucket) Label() string {
	return strconv.Itoa(b.Even) + "E-" + strconv.Itoa(b.Odd) + "O"
}

// IntervalStat describes the recurrence behavior of one number.
//
// CurrentDelay is the count of draws since the number last appeared, with the
// most recent draw at delay 0, or the history length if it never appeared.
// AverageInterval is the mean gap between consecutive occurrences (0 with
// fewer than two occurrences). MaxDelay is the largest observed gap.
type IntervalStat struct {
	Number          int     `json:"number"`
	CurrentDelay    int     `json:"current_delay"`
	AverageInterval float64 `json:"average_interval"`
	MaxDelay        int     `json:"max_delay"`
}

// RepeatedDraw is a numbers combination that was drawn under more than one
// contest identifier.
type RepeatedDraw struct {
	Numbers    []int    `json:"numbers"`
	ContestIDs []string `json:"contest_ids"`
}

// Statistics is the full descriptive bundle computed over one DrawHistory.
// It is a read-only snapshot; re-running the analysis produces a new one.
type Statistics struct {
	TotalDraws int               `json:"total_draws"`
	Frequency  []NumberFrequency `json:"frequency"`
	TopPairs   []PairFrequency   `json:"top_pairs"`
	Parity     []ParityBucket    `json:"parity"`
	Intervals  []IntervalStat    `json:"intervals"`
	Repeated   []RepeatedDraw    `json:"repeated"`
}

// Suggestions holds the three generated ticket candidates. Each list has
// exactly BetSize unique numbers in ascending order.
type Suggestions struct {
	Hot   []int `json:"hot"`
	Cold  []int `json:"cold"`
	Mixed []int `json:"mixed"`
}

// AnalysisResult is the engine's complete output contract: the normalized
// history, its statistics, generated suggestions and per-file reports.
// Presentation layers render charts, CSV exports and narrative prompts from
// this object alone, without re-touching the raw files.
type AnalysisResult struct {
	ID          string       `json:"id"`
	Profile     Profile      `json:"profile"`
	History     []Draw       `json:"history"`
	Statistics  *Statistics  `json:"statistics"`
	Suggestions *Suggestions `json:"suggestions,omitempty"`
	Files       []FileReport `json:"files"`
}

// NumbersKey canonicalizes a sorted numbers slice into a map key.
func NumbersKey(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}
