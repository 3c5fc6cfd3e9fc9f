package services

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottoscope/internal/dataprocessing"
	"lottoscope/pkg/contracts/domain"
)

func testProfile() domain.Profile {
	return domain.Profile{
		Name:         "test",
		TotalNumbers: 25,
		DrawSize:     5,
		BetSize:      5,
		HotCount:     5,
		ColdCount:    5,
	}
}

func testService() *AnalysisService {
	svc := NewAnalysisService(slog.Default())
	svc.randSource = func() rand.Source { return rand.NewSource(1) }
	return svc
}

const goodCSV = `Concurso,Data,Bola 1,Bola 2,Bola 3,Bola 4,Bola 5
101,01/03/2024,1,2,3,4,5
102,08/03/2024,1,2,3,4,6
103,15/03/2024,1,2,3,4,5
`

func TestAnalyzeFiles(t *testing.T) {
	svc := testService()

	result, err := svc.AnalyzeFiles(context.Background(), []FileInput{
		{Name: "results.csv", Data: []byte(goodCSV)},
	}, testProfile())
	require.NoError(t, err)

	require.Len(t, result.History, 3)
	assert.Equal(t, "103", result.History[0].ContestID, "newest first")
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, 3, result.Statistics.TotalDraws)
	require.NotNil(t, result.Suggestions)
	assert.Len(t, result.Suggestions.Mixed, 5)

	require.Len(t, result.Files, 1)
	assert.True(t, result.Files[0].OK())
	assert.Equal(t, 3, result.Files[0].Draws)
}

func TestAnalyzeFilesIsolatesPerFileFailures(t *testing.T) {
	svc := testService()

	result, err := svc.AnalyzeFiles(context.Background(), []FileInput{
		{Name: "broken.xlsx", Data: []byte("not a workbook")},
		{Name: "results.csv", Data: []byte(goodCSV)},
	}, testProfile())
	require.NoError(t, err, "one bad file must not fail the batch")

	require.Len(t, result.Files, 2)
	assert.False(t, result.Files[0].OK())
	assert.Contains(t, result.Files[0].Error, "broken.xlsx")
	assert.True(t, result.Files[1].OK())
	assert.Len(t, result.History, 3)
}

func TestAnalyzeFilesLaterFileWins(t *testing.T) {
	svc := testService()
	first := "Concurso,Data,Bola 1,Bola 2,Bola 3,Bola 4,Bola 5\n500,01/03/2024,1,2,3,4,5\n"
	second := "Concurso,Data,Bola 1,Bola 2,Bola 3,Bola 4,Bola 5\n500,01/03/2024,6,7,8,9,10\n"

	result, err := svc.AnalyzeFiles(context.Background(), []FileInput{
		{Name: "a.csv", Data: []byte(first)},
		{Name: "b.csv", Data: []byte(second)},
	}, testProfile())
	require.NoError(t, err)

	require.Len(t, result.History, 1)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, result.History[0].Numbers)
}

func TestAnalyzeFilesAllBad(t *testing.T) {
	svc := testService()

	_, err := svc.AnalyzeFiles(context.Background(), []FileInput{
		{Name: "noise.csv", Data: []byte("Nome,Valor\nx,1\n")},
	}, testProfile())

	var noDraws *dataprocessing.NoValidDrawsError
	require.True(t, errors.As(err, &noDraws))
}

func TestAnalyzeFilesNoInput(t *testing.T) {
	svc := testService()
	_, err := svc.AnalyzeFiles(context.Background(), nil, testProfile())
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestAnalyzeFilesInvalidProfile(t *testing.T) {
	svc := testService()
	profile := testProfile()
	profile.DrawSize = 30 // exceeds TotalNumbers

	_, err := svc.AnalyzeFiles(context.Background(), []FileInput{
		{Name: "results.csv", Data: []byte(goodCSV)},
	}, profile)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestReanalyzeDateRange(t *testing.T) {
	svc := testService()
	full, err := svc.AnalyzeFiles(context.Background(), []FileInput{
		{Name: "results.csv", Data: []byte(goodCSV)},
	}, testProfile())
	require.NoError(t, err)

	from := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	filtered, err := svc.Reanalyze(full.History, testProfile(), from, to)
	require.NoError(t, err)

	require.Len(t, filtered.History, 1)
	assert.Equal(t, "102", filtered.History[0].ContestID)
	assert.Equal(t, 1, filtered.Statistics.TotalDraws)
}

func TestReanalyzeEmptyRange(t *testing.T) {
	svc := testService()
	full, err := svc.AnalyzeFiles(context.Background(), []FileInput{
		{Name: "results.csv", Data: []byte(goodCSV)},
	}, testProfile())
	require.NoError(t, err)

	from := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Reanalyze(full.History, testProfile(), from, time.Time{})
	assert.ErrorIs(t, err, ErrEmptyRange)
}

func TestSuggestDeterministicWithFixedSource(t *testing.T) {
	svc := testService()
	result, err := svc.AnalyzeFiles(context.Background(), []FileInput{
		{Name: "results.csv", Data: []byte(goodCSV)},
	}, testProfile())
	require.NoError(t, err)

	first, err := svc.Suggest(result.Statistics, testProfile())
	require.NoError(t, err)
	second, err := svc.Suggest(result.Statistics, testProfile())
	require.NoError(t, err)
	assert.Equal(t, first, second, "fixed source yields reproducible picks")
}

func TestSuggestRejectsInvalidProfile(t *testing.T) {
	svc := testService()
	result, err := svc.AnalyzeFiles(context.Background(), []FileInput{
		{Name: "results.csv", Data: []byte(goodCSV)},
	}, testProfile())
	require.NoError(t, err)

	bad := testProfile()
	bad.BetSize = -1
	_, err = svc.Suggest(result.Statistics, bad)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestSuggestWithoutStatistics(t *testing.T) {
	svc := testService()

	_, err := svc.Suggest(nil, testProfile())
	assert.ErrorIs(t, err, ErrNoStatistics)

	_, err = svc.Suggest(&domain.Statistics{}, testProfile())
	assert.ErrorIs(t, err, ErrNoStatistics)
}
