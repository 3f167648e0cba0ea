package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"human/internal/errors"
	"human/internal/history"
	"human/internal/logging"
	"human/internal/output"
	"human/internal/parsers"
	"human/internal/paths"
)

// converter runs inputs through either the registry or one forced handler
// and writes the results.
type converter struct {
	registry  *parsers.Registry
	forced    parsers.Parser // set by the number and size subcommands
	direction parsers.Direction
	all       bool
	format    output.Format
	logger    *logging.Logger
	history   *history.Store // nil when recording is off
}

// convert returns the results for one input. A NO_MATCH outcome yields no
// results and no error.
func (c *converter) convert(input string) ([]parsers.Result, error) {
	if c.forced != nil {
		res, err := parsers.Run(c.forced, c.direction, input)
		if err != nil {
			return nil, err
		}
		return []parsers.Result{res}, nil
	}

	if c.all {
		return c.registry.ConvertAll(c.direction, input), nil
	}

	res, err := c.registry.Convert(c.direction, input)
	if errors.HasCode(err, errors.NoMatch) {
		c.logger.Info("No format accepts input", map[string]interface{}{
			"input":     input,
			"direction": string(c.direction),
		})
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []parsers.Result{res}, nil
}

// run converts every input. With single set, text output carries no
// trailing newline. Failures on individual inputs are reported on errw and
// summarised in the returned error so the exit status is non-zero.
func (c *converter) run(w, errw io.Writer, inputs []string, single bool) error {
	var collected []parsers.Result
	failed := 0

	for _, in := range inputs {
		results, err := c.convert(in)
		if err != nil {
			if single {
				return err
			}
			failed++
			printError(errw, err)
			continue
		}

		c.logger.Debug("Converted input", map[string]interface{}{
			"input":   in,
			"results": len(results),
		})
		c.record(results)

		if c.format == output.TextFormat {
			if err := c.writeText(w, results, single); err != nil {
				return err
			}
			continue
		}
		collected = append(collected, results...)
	}

	if c.format != output.TextFormat {
		if collected == nil {
			collected = []parsers.Result{}
		}
		if err := output.Encode(w, collected, c.format); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be converted", failed, len(inputs))
	}
	return nil
}

func (c *converter) writeText(w io.Writer, results []parsers.Result, single bool) error {
	for _, res := range results {
		var err error
		switch {
		case c.all && res.Error != "":
			_, err = fmt.Fprintf(w, "%s: error: %s\n", res.Format, res.Error)
		case c.all:
			_, err = fmt.Fprintf(w, "%s: %s\n", res.Format, res.Output)
		case single:
			_, err = fmt.Fprint(w, res.Output)
		default:
			_, err = fmt.Fprintln(w, res.Output)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *converter) record(results []parsers.Result) {
	if c.history == nil {
		return
	}
	for _, res := range results {
		if res.Error != "" {
			continue
		}
		entry := history.NewEntry(res.Format, string(res.Direction), res.Input, res.Output)
		if err := c.history.Record(entry); err != nil {
			c.logger.Warn("Failed to record history", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

// newConverter builds a converter from the shared flags and config. The
// caller must call the returned cleanup function.
func newConverter(forced parsers.Parser) (*converter, func(), error) {
	format, err := resolveOutputFormat(app.cfg)
	if err != nil {
		return nil, nil, err
	}

	c := &converter{
		registry:  newRegistry(app.cfg),
		forced:    forced,
		direction: resolveDirection(),
		all:       showAll && forced == nil,
		format:    format,
		logger:    app.logger,
	}

	cleanup := func() {}
	if app.cfg.History.Enabled {
		store, err := openHistory()
		if err != nil {
			app.logger.Warn("History disabled for this run", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			c.history = store
			cleanup = func() { _ = store.Close() }
		}
	}
	return c, cleanup, nil
}

func openHistory() (*history.Store, error) {
	path := app.cfg.History.Path
	if path == "" {
		p, err := paths.GetHistoryDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return history.OpenStore(path, app.logger)
}

// readInputs returns the non-blank lines of r, trimmed
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return inputs, nil
}

// stdinIsTerminal reports whether cmd would read from an interactive terminal
func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// convertArgs is shared by the root command and the format subcommands
func convertArgs(cmd *cobra.Command, args []string, forced parsers.Parser) error {
	if len(args) == 0 && stdinIsTerminal(cmd) {
		return cmd.Help()
	}

	c, cleanup, err := newConverter(forced)
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) > 0 {
		return c.run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, true)
	}

	inputs, err := readInputs(cmd.InOrStdin())
	if err != nil {
		return err
	}
	return c.run(cmd.OutOrStdout(), cmd.ErrOrStderr(), inputs, false)
}

func runConvert(cmd *cobra.Command, args []string) error {
	return convertArgs(cmd, args, nil)
}
