package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"human/internal/config"
	"human/internal/logging"
	"human/internal/output"
	"human/internal/parsers"
	"human/internal/paths"
	"human/internal/version"
)

var (
	intoMachine  bool
	showAll      bool
	outputFlag   string
	verbosity    int
	quiet        bool
	configFlag   string
	logFormatArg string
)

// appContext is the state shared by every command after flags are parsed
type appContext struct {
	fs         afero.Fs
	cfg        *config.Config
	configPath string
	logger     *logging.Logger
}

var app = &appContext{
	fs:     afero.NewOsFs(),
	cfg:    config.DefaultConfig(),
	logger: logging.NewDiscardLogger(),
}

var rootCmd = &cobra.Command{
	Use:   "human [input]",
	Short: "Convert values between machine form and human form",
	Long: heredoc.Doc(`
		human turns machine friendly values into something people read at a
		glance, and back again.

		With an argument the value is converted and printed without a trailing
		newline. Without arguments values are read from stdin, one per line.
		Input that no format recognises produces no output.

		Examples:
		  human 1000000            # 1,000,000
		  human -i 1,000,000       # 1000000
		  human -a 1500000         # every format that accepts the value
		  human -o json 1024
		  echo 20000 | human
	`),
	Version:           version.Version,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupApp,
	RunE:              runConvert,
}

func init() {
	rootCmd.SetVersionTemplate("human version {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&intoMachine, "into-machine", "i", false, "Convert from human form back into machine form")
	flags.BoolVarP(&showAll, "all", "a", false, "Print the result of every format that accepts the input")
	flags.StringVarP(&outputFlag, "output", "o", "", "Output format: text, json or yaml (default from config)")
	flags.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress all logging")
	flags.StringVar(&configFlag, "config", "", "Config file (default $HUMAN_HOME/config.toml)")
	flags.StringVar(&logFormatArg, "log-format", "", "Log format: human or json (default from config)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// setupApp loads configuration and builds the logger. Commands under
// "human config" fall back to defaults when the file is invalid.
func setupApp(cmd *cobra.Command, _ []string) error {
	path := configFlag
	if path == "" {
		p, err := paths.GetConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	app.configPath = path

	cfg, cfgErr := config.LoadConfig(app.fs, path)
	if cfgErr != nil {
		if !isConfigCommand(cmd) {
			return cfgErr
		}
		cfg = config.DefaultConfig()
	}
	app.cfg = cfg

	app.logger = logging.NewLogger(logging.Config{
		Format: resolveLogFormat(cfg),
		Level:  resolveLogLevel(cfg),
		Output: cmd.ErrOrStderr(),
	})

	if cfgErr != nil {
		app.logger.Warn("Ignoring invalid configuration", map[string]interface{}{
			"path":  path,
			"error": cfgErr.Error(),
		})
	}
	app.logger.Debug("Configuration loaded", map[string]interface{}{
		"path":    path,
		"command": cmd.CommandPath(),
	})
	return nil
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

// resolveLogLevel gives -v/-q precedence over logging.level
func resolveLogLevel(cfg *config.Config) logging.LogLevel {
	if verbosity > 0 || quiet {
		return logging.LevelFromVerbosity(verbosity, quiet)
	}
	return logging.ParseLevel(cfg.Logging.Level)
}

func resolveLogFormat(cfg *config.Config) logging.Format {
	f := cfg.Logging.Format
	if logFormatArg != "" {
		f = logFormatArg
	}
	if f == string(logging.JSONFormat) {
		return logging.JSONFormat
	}
	return logging.HumanFormat
}

// resolveOutputFormat gives --output precedence over output.format
func resolveOutputFormat(cfg *config.Config) (output.Format, error) {
	if outputFlag != "" {
		return output.ParseFormat(outputFlag)
	}
	return output.ParseFormat(cfg.Output.Format)
}

func resolveDirection() parsers.Direction {
	if intoMachine {
		return parsers.FromHuman
	}
	return parsers.IntoHuman
}

// newRegistry returns the default handlers with size units taken from config
func newRegistry(cfg *config.Config) *parsers.Registry {
	r := parsers.DefaultRegistry()
	r.Register(parsers.NewSize(parsers.ParseUnits(cfg.Size.Units)))
	return r
}
