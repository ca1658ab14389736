package ingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dlautopecas/adpulse/internal/common"
)

// writeWorkbook creates a temp xlsx with the given sheet and rows.
func writeWorkbook(t *testing.T, sheetName string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	_, err := f.NewSheet(sheetName)
	require.NoError(t, err)
	require.NoError(t, f.DeleteSheet("Sheet1"))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheetName, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadWorkbook(t *testing.T) {
	rows := [][]string{
		{"Relatório de campanha"},
		headerRow(),
		dataRow("Anuncio A", "100"),
	}

	t.Run("reads the named sheet", func(t *testing.T) {
		path := writeWorkbook(t, DefaultSheetName, rows)

		got, err := LoadWorkbook(path, DefaultSheetName)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(got), 3)
		assert.Equal(t, "Nome", got[1][0])
	})

	t.Run("falls back to the first sheet for the default name", func(t *testing.T) {
		path := writeWorkbook(t, "Planilha Qualquer", rows)

		got, err := LoadWorkbook(path, DefaultSheetName)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(got), 3)
	})

	t.Run("explicitly requested sheet must exist", func(t *testing.T) {
		path := writeWorkbook(t, DefaultSheetName, rows)

		_, err := LoadWorkbook(path, "Relatório de produto")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrSheetNotFound)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LoadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"), "")
		assert.Error(t, err)
	})

	t.Run("loaded workbook normalizes end to end", func(t *testing.T) {
		path := writeWorkbook(t, DefaultSheetName, rows)

		got, err := LoadWorkbook(path, DefaultSheetName)
		require.NoError(t, err)

		ads, err := Normalize(got)
		require.NoError(t, err)
		require.Len(t, ads, 1)
		assert.Equal(t, "Anuncio A", ads[0].Name)
	})
}
