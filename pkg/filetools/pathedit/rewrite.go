// Package pathedit remaps path-listing spreadsheets into the fixed
// NAME, LAST_MOD_DATE, PATH, VALUE layout while rewriting the PATH column.
package pathedit

import (
	"strings"

	"github.com/ukaji3/filetools-go/pkg/filetools/models"
)

// Output column names.
const (
	KeyName        = "NAME"
	KeyLastModDate = "LAST_MOD_DATE"
	KeyPath        = "PATH"
	KeyValue       = "VALUE"
)

// Input columns are addressed by position, never by header text.
const (
	colName = iota
	colLastModDate
	colPath
	colValue
	colValueOverride
)

// CanonicalKeys lists the output columns in order.
var CanonicalKeys = []string{KeyName, KeyLastModDate, KeyPath, KeyValue}

// Rewrite applies RewriteRow to every row. The result has the same length
// and order as rows; rows itself is not modified.
func Rewrite(rows []models.Row, rule models.PathRewriteRule) []models.Row {
	out := make([]models.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, RewriteRow(row, rule))
	}
	return out
}

// RewriteRow maps one input row to the canonical output layout.
//
// Columns A and B become NAME and LAST_MOD_DATE. Column C becomes PATH with
// the first occurrence of rule.From replaced by rule.To when it holds a
// string. VALUE comes from column E when present, otherwise from column D.
// Columns the row does not have are omitted from the result.
func RewriteRow(row models.Row, rule models.PathRewriteRule) models.Row {
	out := models.NewRow()

	if v, ok := row.ValueAt(colName); ok {
		out.Set(KeyName, v)
	}
	if v, ok := row.ValueAt(colLastModDate); ok {
		out.Set(KeyLastModDate, v)
	}
	if v, ok := row.ValueAt(colPath); ok {
		if s, isString := v.(string); isString {
			v = strings.Replace(s, rule.From, rule.To, 1)
		}
		out.Set(KeyPath, v)
	}
	if v, ok := row.ValueAt(colValueOverride); ok {
		out.Set(KeyValue, v)
	} else if v, ok := row.ValueAt(colValue); ok {
		out.Set(KeyValue, v)
	}

	return out
}
