package app

import (
	"context"
	"fmt"
	"io"

	"github.com/ukaji3/filetools-go/internal/logger"
	"github.com/ukaji3/filetools-go/pkg/filetools/models"
	"github.com/ukaji3/filetools-go/pkg/filetools/output"
	"github.com/ukaji3/filetools-go/pkg/filetools/pathedit"
)

// PathEditRequest describes one path-edit run.
type PathEditRequest struct {
	// Input is the spreadsheet to load.
	Input string
	// Rule is the path substitution to apply.
	Rule models.PathRewriteRule
	// JSON prints the preview as JSON instead of a table.
	JSON bool
}

// ExecutePathEdit loads a spreadsheet, rewrites its paths, previews the
// first rows and saves the result as a new workbook.
func ExecutePathEdit(ctx context.Context, env *Env, req PathEditRequest) (string, error) {
	cfg := env.Config
	session := pathedit.NewSession(cfg.PathEditOptions())

	if err := session.Load(req.Input); err != nil {
		return "", err
	}

	sheet := session.Sheet()
	logger.InfoKV(ctx, "Spreadsheet loaded",
		"file", req.Input, "sheet", sheet.Name, "range", sheet.Range, "rows", len(sheet.Rows))
	env.Notifier.Success(ctx, "File loaded!",
		fmt.Sprintf("%d rows loaded from the Excel file.", len(sheet.Rows)))

	if err := session.Process(req.Rule); err != nil {
		return "", err
	}

	logger.DebugKV(ctx, "Paths rewritten", "from", req.Rule.From, "to", req.Rule.To)
	env.Notifier.Success(ctx, "Processing complete!", "Paths were modified and columns reorganized.")

	if err := writePreview(env.Out, session.Rows(), cfg.PathEdit.PreviewRows, req.JSON); err != nil {
		return "", err
	}

	dir := outputDir(cfg.OutputDir, req.Input)
	if err := ensureDir(dir); err != nil {
		return "", err
	}

	target, err := session.Save(dir)
	if err != nil {
		return "", err
	}

	logger.InfoKV(ctx, "Spreadsheet saved", "file", target, "rows", len(session.Rows()))
	env.Notifier.Success(ctx, "Download complete!", fmt.Sprintf("Modified file saved to %s.", target))

	return target, nil
}

func writePreview(w io.Writer, rows []models.Row, limit int, asJSON bool) error {
	if limit <= 0 {
		return nil
	}

	if !asJSON {
		return output.PreviewTable(w, rows, limit)
	}

	if limit < len(rows) {
		rows = rows[:limit]
	}

	data, err := output.RowsToJSON(rows, true)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
