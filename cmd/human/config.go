package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"human/internal/config"
)

var (
	configShowFormat string
	configInitForce  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage human configuration",
	Long: heredoc.Doc(`
		View and manage the configuration stored in $HUMAN_HOME/config.toml
		(~/.human/config.toml by default).

		Every key can be overridden with an environment variable named after
		it: size.units becomes HUMAN_SIZE_UNITS.
	`),
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: heredoc.Doc(`
		Display the configuration after defaults, the config file and
		environment overrides are merged.

		Examples:
		  human config show
		  human config show --format json
	`),
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), app.configPath)
		return err
	},
}

func init() {
	configShowCmd.Flags().StringVar(&configShowFormat, "format", "toml", "Output format (toml, json)")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := app.cfg.Marshal(configShowFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// writeDefaultConfig saves defaults to path unless a file exists and force is unset
func writeDefaultConfig(fs afero.Fs, path string, force bool) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return config.DefaultConfig().Save(fs, path)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := writeDefaultConfig(app.fs, app.configPath, configInitForce); err != nil {
		return err
	}
	app.logger.Info("Wrote config file", map[string]interface{}{
		"path": app.configPath,
	})
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", app.configPath)
	return err
}
