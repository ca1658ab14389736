// Package ingest normalizes vendor campaign spreadsheet exports into
// canonical ad rows. It locates the header row inside a semi-structured
// sheet, maps vendor column labels onto canonical fields and coerces
// locale-formatted numeric text into numbers.
package ingest

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/dlautopecas/adpulse/internal/common"
)

// DefaultSheetName is the sheet the Mercado Livre Ads export uses for
// campaign data.
const DefaultSheetName = "Relatório de campanha"

// LoadWorkbook opens the spreadsheet at path and returns the raw cell grid
// of the named sheet. When the default sheet is absent the first sheet in
// the workbook is used instead; an explicitly requested sheet that does not
// exist is an error.
func LoadWorkbook(path, sheetName string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	found := false
	for _, name := range f.GetSheetList() {
		if name == sheetName {
			found = true
			break
		}
	}
	if !found {
		if sheetName != DefaultSheetName {
			return nil, common.NewUserError(
				fmt.Sprintf("sheet %q does not exist in the workbook", sheetName),
				common.ErrSheetNotFound,
			)
		}
		fallback := f.GetSheetName(0)
		slog.Warn("sheet not found, using first sheet",
			"requested", sheetName,
			"using", fallback)
		sheetName = fallback
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	return rows, nil
}
