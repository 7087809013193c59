package main

import (
	"github.com/spf13/cobra"

	"github.com/ukaji3/filetools-go/internal/config"
	"github.com/ukaji3/filetools-go/internal/notify"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// The configuration file is the subject here, not an input.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	var force bool

	initCmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigFilename
			if len(args) == 1 {
				path = args[0]
			}

			if err := config.SaveDefault(path, force); err != nil {
				return err
			}

			notify.New(cmd.ErrOrStderr()).Success(cmd.Context(), "Configuration created!", path)

			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.WriteDefault(cmd.OutOrStdout())
		},
	}

	configCmd.AddCommand(initCmd, showCmd)

	return configCmd
}
