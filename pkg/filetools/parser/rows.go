// Package parser provides spreadsheet decoding utilities.
package parser

import (
	"math"
	"strconv"

	"github.com/ukaji3/filetools-go/pkg/filetools/models"
	"github.com/xuri/excelize/v2"
)

// maxExactInt is the largest magnitude a float64 holds without losing integer precision.
const maxExactInt = 1 << 53

// ExtractRows reads a sheet as header-keyed rows.
// Row 1 supplies the headers and every later row becomes one models.Row.
// Empty header cells are skipped; missing data cells decode as "".
func ExtractRows(f *excelize.File, sheetName string) ([]models.Row, []string, error) {
	text, values, err := readGrid(f, sheetName)
	if err != nil {
		return nil, nil, err
	}
	if len(text) == 0 {
		return nil, nil, nil
	}

	return rowsFromGrid(text[0], values[1:]), distinctHeaders(text[0]), nil
}

// readGrid returns the displayed text of every cell and, in the same shape,
// its value typed after the cell's stored type.
func readGrid(f *excelize.File, sheetName string) ([][]string, [][]interface{}, error) {
	text, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, err
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}

	values := make([][]interface{}, len(text))
	for r, cells := range text {
		values[r] = make([]interface{}, len(cells))
		for c, display := range cells {
			if display == "" {
				values[r][c] = ""
				continue
			}

			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, nil, err
			}

			stored := display
			if r < len(raw) && c < len(raw[r]) {
				stored = raw[r][c]
			}
			values[r][c] = cellValue(cellType, display, stored)
		}
	}

	return text, values, nil
}

// cellValue types a non-empty cell. Numeric cells become int64 when they
// hold a whole number and float64 otherwise, boolean cells become bool, and
// everything else keeps its displayed text.
func cellValue(cellType excelize.CellType, display, stored string) interface{} {
	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		n, err := strconv.ParseFloat(stored, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return display
		}
		if n == math.Trunc(n) && math.Abs(n) <= maxExactInt {
			return int64(n)
		}
		return n
	case excelize.CellTypeBool:
		return stored == "1" || stored == "TRUE" || stored == "true"
	default:
		return display
	}
}

// rowsFromGrid keys each data row by headers. A repeated header keeps its
// first position and takes the later value.
func rowsFromGrid(headers []string, data [][]interface{}) []models.Row {
	result := make([]models.Row, 0, len(data))

	for _, cells := range data {
		row := models.NewRow()
		for colIdx, header := range headers {
			if header == "" {
				continue
			}

			var value interface{} = ""
			if colIdx < len(cells) {
				value = cells[colIdx]
			}
			row.Set(header, value)
		}
		result = append(result, row)
	}

	return result
}

// distinctHeaders returns non-empty headers in column order without repeats.
func distinctHeaders(headerRow []string) []string {
	seen := make(map[string]struct{}, len(headerRow))
	var headers []string
	for _, h := range headerRow {
		if h == "" {
			continue
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		headers = append(headers, h)
	}
	return headers
}
