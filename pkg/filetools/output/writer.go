// Package output serializes decoded rows to workbooks, JSON and terminal previews.
package output

import (
	"io"

	"github.com/ukaji3/filetools-go/pkg/filetools/models"
	"github.com/xuri/excelize/v2"
	"gitlab.com/tozd/go/errors"
)

const defaultSheetName = "Sheet1"

// EncodeRows writes rows as a single-sheet workbook named sheetName.
// The header row is the union of row keys in first-seen order.
func EncodeRows(w io.Writer, rows []models.Row, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "" && sheetName != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, sheetName); err != nil {
			return errors.Errorf("rename sheet: %w", err)
		}
	} else {
		sheetName = defaultSheetName
	}

	headers := Headers(rows)
	if len(headers) > 0 {
		headerCells := make([]interface{}, len(headers))
		for i, h := range headers {
			headerCells[i] = h
		}
		if err := f.SetSheetRow(sheetName, "A1", &headerCells); err != nil {
			return errors.Errorf("write header row: %w", err)
		}
	}

	for i, row := range rows {
		cells := make([]interface{}, len(headers))
		for j, h := range headers {
			if v, ok := row.Get(h); ok {
				cells[j] = v
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return errors.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Errorf("write workbook: %w", err)
	}

	return nil
}

// Headers returns the union of keys across rows, in first-seen order.
func Headers(rows []models.Row) []string {
	seen := make(map[string]struct{})
	var headers []string
	for _, row := range rows {
		for _, key := range row.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			headers = append(headers, key)
		}
	}
	return headers
}
