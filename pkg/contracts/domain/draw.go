package domain

import (
	"time"
)

// Draw is one realized lottery outcome: the drawn numbers and the draw date,
// keyed by the publisher's contest identifier.
//
// Numbers are always unique and sorted ascending; a row that cannot satisfy
// that is dropped at extraction time, so a Draw that exists is valid.
type Draw struct {
	ContestID string    `json:"contest_id"`
	Numbers   []int     `json:"numbers"`
	Date      time.Time `json:"date"`
}

// Key returns the canonical identity of the numbers combination, independent
// of contest and date. Two draws with the same Key are the same outcome.
func (d Draw) Key() string {
	return NumbersKey(d.Numbers)
}

// FileReport records the per-file outcome of a batch ingestion. A failed file
// carries its error message; a parsed file carries its draw count.
type FileReport struct {
	File  string `json:"file"`
	Draws int    `json:"draws"`
	Error string `json:"error,omitempty"`
}

// OK reports whether the file was ingested without a file-level error.
func (r FileReport) OK() bool {
	return r.Error == ""
}
