package output

import (
	"encoding/json"

	"github.com/ukaji3/filetools-go/pkg/filetools/models"
)

// RowsToJSON serializes rows to a JSON array, keeping each row's key order.
func RowsToJSON(rows []models.Row, pretty bool) ([]byte, error) {
	if rows == nil {
		rows = []models.Row{}
	}
	if pretty {
		return json.MarshalIndent(rows, "", "  ")
	}
	return json.Marshal(rows)
}
