package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottoscope/pkg/contracts/domain"
)

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		ID: "test-run",
		Profile: domain.Profile{
			Name: "test", TotalNumbers: 10, DrawSize: 3, BetSize: 3, HotCount: 3, ColdCount: 3,
		},
		History: []domain.Draw{
			{ContestID: "2", Numbers: []int{2, 4, 6}, Date: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)},
			{ContestID: "1", Numbers: []int{1, 2, 3}, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
		Statistics: &domain.Statistics{
			TotalDraws: 2,
			Frequency:  []domain.NumberFrequency{{Number: 2, Count: 2}, {Number: 1, Count: 1}},
			TopPairs:   []domain.PairFrequency{{A: 2, B: 4, Count: 1}},
			Parity:     []domain.ParityBucket{{Even: 3, Odd: 0, Count: 1}, {Even: 1, Odd: 2, Count: 1}},
			Intervals:  []domain.IntervalStat{{Number: 2, CurrentDelay: 0, AverageInterval: 1, MaxDelay: 1}},
			Repeated:   []domain.RepeatedDraw{{Numbers: []int{1, 2, 3}, ContestIDs: []string{"1", "9"}}},
		},
		Files: []domain.FileReport{{File: "a.csv", Draws: 2}},
	}
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Snapshot(dir, sampleResult()))

	for _, name := range []string{
		"history.csv", "frequency.csv", "pairs.csv", "parity.csv",
		"intervals.csv", "repeated.csv", "analysis.json",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestSnapshotCSVContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Snapshot(dir, sampleResult()))

	data, err := os.ReadFile(filepath.Join(dir, "history.csv"))
	require.NoError(t, err)

	// BOM prefix for Excel, then header and newest-first rows.
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	content := string(data[3:])
	assert.Contains(t, content, "Contest,Date,Numbers\n")
	assert.Contains(t, content, "2,2024-03-08,2 4 6\n")

	intervals, err := os.ReadFile(filepath.Join(dir, "intervals.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(intervals), "2,0,1.00,1")
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	result := sampleResult()
	require.NoError(t, Snapshot(dir, result))

	data, err := os.ReadFile(filepath.Join(dir, "analysis.json"))
	require.NoError(t, err)

	var decoded domain.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, result.ID, decoded.ID)
	assert.Len(t, decoded.History, 2)
	assert.Equal(t, result.Statistics.TotalDraws, decoded.Statistics.TotalDraws)
}
