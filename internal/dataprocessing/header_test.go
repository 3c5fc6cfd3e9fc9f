package dataprocessing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestLocateHeaderStrict(t *testing.T) {
	grid := Grid{
		{"Resultados históricos"},
		{},
		{"Concurso", "Data Sorteio", "Bola 1", "Bola 2", "Bola 3", "Bola 4", "Bola 5"},
		{"101", "01/03/2024", "1", "2", "3", "4", "5"},
	}

	cols, err := LocateHeader("results.csv", grid, testProfile())
	require.NoError(t, err)

	assert.Equal(t, 2, cols.HeaderRow)
	assert.Equal(t, 0, cols.Contest)
	assert.Equal(t, 1, cols.Date)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, cols.Slots)
	assert.False(t, cols.ScanRow)
}

func TestLocateHeaderStrictSlotsInLabelOrder(t *testing.T) {
	// Slot columns out of sheet order: label numbers decide.
	grid := Grid{
		{"Contest", "Ball 3", "Ball 1", "Ball 2", "Date"},
		{"9", "3", "1", "2", "05/05/2024"},
	}

	profile := testProfile()
	profile.DrawSize = 3
	cols, err := LocateHeader("f.csv", grid, profile)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, cols.Slots)
}

func TestLocateHeaderLooseFallback(t *testing.T) {
	// No labeled number slots, but the first data row carries enough
	// in-range values to trust a row scan.
	grid := Grid{
		{"Concurso", "Data", "Dezenas sorteadas", "Prêmio"},
		{"101", "01/03/2024", "1", "2", "3", "4", "5"},
	}

	cols, err := LocateHeader("f.csv", grid, testProfile())
	require.NoError(t, err)
	assert.True(t, cols.ScanRow)
	assert.Empty(t, cols.Slots)
	assert.Equal(t, 0, cols.HeaderRow)
}

func TestLocateHeaderLooseRejectsSparseProbeRow(t *testing.T) {
	grid := Grid{
		{"Concurso", "Data"},
		{"101", "01/03/2024", "1", "2"},
	}

	_, err := LocateHeader("f.csv", grid, testProfile())
	var notFound *HeaderNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestLocateHeaderNotFound(t *testing.T) {
	grid := Grid{
		{"Nome", "Valor", "Observação"},
		{"x", "1", "y"},
	}

	_, err := LocateHeader("noise.csv", grid, testProfile())
	var notFound *HeaderNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "noise.csv", notFound.File)
	assert.Contains(t, notFound.Missing, "contest")
	assert.Contains(t, notFound.Missing, "number")
	assert.Contains(t, notFound.Error(), "noise.csv")
}

func TestLocateHeaderIgnoresRowsBeyondScanWindow(t *testing.T) {
	grid := make(Grid, 0, 15)
	for i := 0; i < 12; i++ {
		grid = append(grid, []string{"filler"})
	}
	grid = append(grid, []string{"Concurso", "Data", "Bola 1", "Bola 2", "Bola 3", "Bola 4", "Bola 5"})

	_, err := LocateHeader("deep.csv", grid, testProfile())
	var notFound *HeaderNotFoundError
	assert.True(t, errors.As(err, &notFound))
}
