package parser

import (
	"github.com/xuri/excelize/v2"
)

// DataRange returns the used cell range of a grid in Excel notation
// (e.g. "A1:E10"), or "" when every cell is empty.
func DataRange(rows [][]string) string {
	top, bottom, left, right := -1, -1, -1, -1
	for r, cells := range rows {
		first, last := usedSpan(cells)
		if first < 0 {
			continue
		}
		if top < 0 {
			top = r
		}
		bottom = r
		if left < 0 || first < left {
			left = first
		}
		if last > right {
			right = last
		}
	}
	if top < 0 {
		return ""
	}

	start, err := excelize.CoordinatesToCellName(left+1, top+1)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(right+1, bottom+1)
	if err != nil {
		return ""
	}
	return start + ":" + end
}

// usedSpan returns the first and last non-empty column of a row, or -1, -1.
func usedSpan(cells []string) (first, last int) {
	first, last = -1, -1
	for c, v := range cells {
		if v == "" {
			continue
		}
		if first < 0 {
			first = c
		}
		last = c
	}
	return first, last
}
