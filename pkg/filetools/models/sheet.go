package models

// Sheet represents the decoded first sheet of a workbook.
type Sheet struct {
	// Name is the sheet name in the source workbook.
	Name string `json:"name"`
	// Headers lists the distinct non-empty headers of row 1, in column order.
	Headers []string `json:"headers"`
	// Rows contains one entry per data row (row 2 onward).
	Rows []Row `json:"rows"`
	// Range is the used cell range (e.g. "A1:E42"), empty for a blank sheet.
	Range string `json:"range,omitempty"`
}
