package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gitlab.com/tozd/go/errors"

	"github.com/ukaji3/filetools-go/internal/app"
	"github.com/ukaji3/filetools-go/internal/config"
	"github.com/ukaji3/filetools-go/internal/logger"
)

// cli carries the state shared by the subcommands of one invocation.
type cli struct {
	configFilename string
	logLevel       string

	cfg *config.Config
	env *app.Env
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "filetools",
		Short: "Small file utilities: spreadsheet path editor, image converter, text case converter",
		Long: `filetools bundles three file utilities:
- path-edit rewrites the PATH column of a spreadsheet and reorganizes its columns
- image resizes an image and converts it to JPEG, PNG or WebP
- case strips formatting from text and changes its casing`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	rootCmd.PersistentFlags().StringVarP(
		&c.configFilename,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s' if present)", config.DefaultConfigFilename))

	rootCmd.PersistentFlags().StringVar(
		&c.logLevel,
		"log-level",
		"",
		"log level: debug, info, warn, error (overrides the configuration file)")

	rootCmd.AddCommand(
		c.newPathEditCmd(),
		c.newImageCmd(),
		c.newCaseCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

func (c *cli) loadConfig(*cobra.Command, []string) error {
	cfg, err := config.LoadConfig(c.configFilename)
	if err != nil {
		return errors.Errorf("failed to load configuration: %w", err)
	}

	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}

	c.cfg = cfg

	return nil
}

// finishConfig validates the configuration once subcommand flags are bound
// and prepares the command environment.
func (c *cli) finishConfig(cmd *cobra.Command) error {
	if err := config.ValidateConfig(c.cfg); err != nil {
		return errors.Errorf("invalid configuration: %w", err)
	}

	logger.SetLevel(c.cfg.ParsedLogLevel)

	c.env = app.NewEnv(c.cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())

	return nil
}

func bindOutputFlag(flags *pflag.FlagSet, cfg *config.Config) {
	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputDir, _ = flags.GetString("output")
	}
}
