package parser

import (
	"io"

	"github.com/ukaji3/filetools-go/pkg/filetools/models"
	"github.com/xuri/excelize/v2"
	"gitlab.com/tozd/go/errors"
)

// ErrNoSheets indicates the workbook contains no worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// DecodeRows reads a workbook from r and decodes its first sheet.
func DecodeRows(r io.Reader) (*models.Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, errors.WithStack(ErrNoSheets)
	}
	sheetName := sheetList[0]

	text, values, err := readGrid(f, sheetName)
	if err != nil {
		return nil, errors.Errorf("read sheet %q: %w", sheetName, err)
	}

	sheet := &models.Sheet{
		Name:  sheetName,
		Range: DataRange(text),
	}
	if len(text) > 0 {
		sheet.Headers = distinctHeaders(text[0])
		sheet.Rows = rowsFromGrid(text[0], values[1:])
	}

	return sheet, nil
}
