package main

import (
	"github.com/spf13/cobra"

	"github.com/ukaji3/filetools-go/internal/app"
)

func (c *cli) newCaseCmd() *cobra.Command {
	var req app.CaseRequest

	cmd := &cobra.Command{
		Use:   "case [TEXT]",
		Short: "Strip formatting from text and change its casing",
		Long: `case removes tags, collapses whitespace and converts the text to
sentence case, upper case or lower case. The text is read from the argument,
from --file, or from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flag := cmd.Flags().Lookup("mode"); flag != nil && flag.Changed {
				c.cfg.Case.Mode, _ = cmd.Flags().GetString("mode")
			}

			if err := c.finishConfig(cmd); err != nil {
				return err
			}

			if len(args) == 1 {
				req.Text = args[0]
			} else if req.File == "" {
				req.Stdin = cmd.InOrStdin()
			}

			_, err := app.ExecuteCase(cmd.Context(), c.env, req)

			return err
		},
	}

	cmd.Flags().StringP("mode", "m", "", "conversion mode: sentence, upper, lower (default from configuration)")
	cmd.Flags().StringVarP(&req.File, "file", "f", "", "read the text from a file")

	return cmd
}
