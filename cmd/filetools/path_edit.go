package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ukaji3/filetools-go/internal/app"
	"github.com/ukaji3/filetools-go/internal/config"
	"github.com/ukaji3/filetools-go/pkg/filetools/models"
)

func (c *cli) newPathEditCmd() *cobra.Command {
	var (
		rule   models.PathRewriteRule
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "path-edit INPUT.xlsx --from PATH --to PATH",
		Short: "Rewrite the PATH column of a spreadsheet",
		Long: `path-edit loads the first sheet of a workbook (row 1 holds the headers),
replaces the first occurrence of --from with --to in the third column and writes
a new workbook with the columns NAME, LAST_MOD_DATE, PATH and VALUE.
VALUE is taken from the fifth column, or from the fourth when there is no fifth.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindPathEditFlags(cmd.Flags(), c.cfg)

			if err := c.finishConfig(cmd); err != nil {
				return err
			}

			_, err := app.ExecutePathEdit(cmd.Context(), c.env, app.PathEditRequest{
				Input: args[0],
				Rule:  rule,
				JSON:  asJSON,
			})

			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&rule.From, "from", "", "path prefix to replace (e.g. /global/en)")
	flags.StringVar(&rule.To, "to", "", "replacement path (e.g. /it/it)")
	flags.StringP("output", "o", "", "directory for the modified file (default: next to the input)")
	flags.Int("preview", config.DefaultPreviewRows, "number of processed rows to preview (0 disables)")
	flags.BoolVar(&asJSON, "json", false, "print the preview as JSON instead of a table")
	flags.String("sheet-name", "", "name of the output sheet")

	return cmd
}

func bindPathEditFlags(flags *pflag.FlagSet, cfg *config.Config) {
	bindOutputFlag(flags, cfg)

	if flag := flags.Lookup("preview"); flag != nil && flag.Changed {
		cfg.PathEdit.PreviewRows, _ = flags.GetInt("preview")
	}

	if flag := flags.Lookup("sheet-name"); flag != nil && flag.Changed {
		cfg.PathEdit.SheetName, _ = flags.GetString("sheet-name")
	}
}
