package output

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/ukaji3/filetools-go/pkg/filetools/models"
)

// PreviewTable renders the first limit rows as a terminal table.
// Columns are the union of the shown rows' keys; missing values render empty.
func PreviewTable(w io.Writer, rows []models.Row, limit int) error {
	if len(rows) == 0 || limit <= 0 {
		return nil
	}
	if limit > len(rows) {
		limit = len(rows)
	}

	shown := rows[:limit]
	headers := Headers(shown)
	data := pterm.TableData{headers}
	for _, row := range shown {
		line := make([]string, len(headers))
		for i, h := range headers {
			if v, ok := row.Get(h); ok {
				line[i] = fmt.Sprint(v)
			}
		}
		data = append(data, line)
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, rendered)
	return err
}
