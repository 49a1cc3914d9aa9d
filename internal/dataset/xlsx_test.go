package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadPartsFileXLSX(t *testing.T) {
	path := writeTempXLSX(t, [][]interface{}{
		{"PartNum", "Description", "OnHandQty", "UnitCost", "LeadTimeDays"},
		{"SP-1", "Widget", 10, 25.5, 30},
		{"SP-2", "Gadget", 0, 3.99, 7},
	})

	parts, err := LoadPartsFile(path)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, "SP-1", parts[0].PartNum)
	assert.Equal(t, 10, parts[0].OnHandQty)
	assert.InDelta(t, 25.5, parts[0].UnitCost, 1e-9)
}

func TestLoadDemandHistoryFileXLSX(t *testing.T) {
	path := writeTempXLSX(t, [][]interface{}{
		{"PartNum", "Date", "TotalDemand", "UnitPrice"},
		{"SP-1", "2025-01-31", 4, 12.5},
	})

	observations, err := LoadDemandHistoryFile(path)
	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Equal(t, 4, observations[0].TotalDemand)
	assert.InDelta(t, 50.0, observations[0].TotalValue, 1e-9)
}

func TestLoadPartsFileDispatchesOnExtension(t *testing.T) {
	csvPath := writeTempCSV(t, "PartNum,UnitCost\nSP-1,10\n")

	parts, err := LoadPartsFile(csvPath)
	require.NoError(t, err)
	require.Len(t, parts, 1)

	_, err = LoadPartsFile("parts.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")

	_, err = LoadDemandHistoryFile("sales.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}
