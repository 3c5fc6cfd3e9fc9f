package dataprocessing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadGridCSV(t *testing.T) {
	data := []byte("Concurso,Data,Bola 1,Bola 2\n\"101\", 01/03/2024 ,1,2\n")

	grid, err := ReadGrid("results.csv", data)
	require.NoError(t, err)

	require.Len(t, grid, 2)
	assert.Equal(t, []string{"Concurso", "Data", "Bola 1", "Bola 2"}, grid[0])
	assert.Equal(t, []string{"101", "01/03/2024", "1", "2"}, grid[1])
}

func TestReadGridCSVStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Concurso,Data\n101,01/03/2024\n")...)

	grid, err := ReadGrid("bom.csv", data)
	require.NoError(t, err)
	assert.Equal(t, "Concurso", grid[0][0])
}

func TestReadGridCSVSemicolonDelimiter(t *testing.T) {
	data := []byte("Concurso;Data;Bola 1\n101;01/03/2024;7\n")

	grid, err := ReadGrid("semi.csv", data)
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "01/03/2024", "7"}, grid[1])
}

func TestReadGridWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Concurso", "Data", "Bola 1"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{101, "01/03/2024", 7}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	grid, err := ReadGrid("results.xlsx", buf.Bytes())
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(grid), 2)
	assert.Equal(t, "Concurso", grid[0][0])
	assert.Equal(t, "101", grid[1][0])
	assert.Equal(t, "7", grid[1][2])
}

func TestReadGridSniffsWorkbookWithoutExtension(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue(f.GetSheetName(0), "A1", "Concurso"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	grid, err := ReadGrid("upload.tmp", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Concurso", grid[0][0])
}

func TestReadGridMalformedWorkbook(t *testing.T) {
	_, err := ReadGrid("broken.xlsx", []byte("this is not a zip archive"))

	var malformed *MalformedFileError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "broken.xlsx", malformed.File)
	assert.Contains(t, malformed.Error(), "broken.xlsx")
}

func TestReadGridEmptyFile(t *testing.T) {
	_, err := ReadGrid("empty.csv", nil)

	var malformed *MalformedFileError
	assert.True(t, errors.As(err, &malformed))
}
