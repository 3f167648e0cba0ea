package main

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"human/internal/history"
	"human/internal/output"
)

var (
	historyLimit        int
	historyExportFormat string
	historyExportOut    string
	historyExportGzip   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded conversions",
	Long: heredoc.Doc(`
		List, export and clear the conversions human has recorded.

		Recording is off by default. Enable it with:
		  history.enabled = true
		in the config file, or HUMAN_HISTORY_ENABLED=true.
	`),
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent conversions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every recorded conversion",
	Long: heredoc.Doc(`
		Write the full history as JSON or YAML, optionally gzip compressed.

		Examples:
		  human history export
		  human history export --format yaml --out history.yaml
		  human history export --gzip --out history.json.gz
	`),
	Args: cobra.NoArgs,
	RunE: runHistoryExport,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded conversion",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum entries to show (0 for all)")

	historyExportCmd.Flags().StringVar(&historyExportFormat, "format", "json", "Export format (json, yaml)")
	historyExportCmd.Flags().StringVar(&historyExportOut, "out", "", "Write to file instead of stdout")
	historyExportCmd.Flags().BoolVar(&historyExportGzip, "gzip", false, "Compress the export with gzip")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(historyLimit)
	if err != nil {
		return err
	}

	format, err := resolveOutputFormat(app.cfg)
	if err != nil {
		return err
	}
	if format != output.TextFormat {
		if entries == nil {
			entries = []*history.Entry{}
		}
		return output.Encode(cmd.OutOrStdout(), entries, format)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded.")
		return err
	}
	return renderTable(cmd.OutOrStdout(), []string{"WHEN", "FORMAT", "DIRECTION", "INPUT", "OUTPUT"}, historyRows(entries))
}

func historyRows(entries []*history.Entry) [][]string {
	return lo.Map(entries, func(e *history.Entry, _ int) []string {
		return []string{
			e.CreatedAt.Local().Format(time.DateTime),
			e.Format,
			e.Direction,
			e.Input,
			e.Output,
		}
	})
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(historyExportFormat)
	if err != nil {
		return err
	}

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	opts := history.ExportOptions{Format: format, Gzip: historyExportGzip}
	var n int
	if historyExportOut != "" {
		n, err = exportToFile(app.fs, historyExportOut, store, opts)
	} else {
		n, err = store.Export(cmd.OutOrStdout(), opts)
	}
	if err != nil {
		return err
	}

	app.logger.Info("Exported history", map[string]interface{}{
		"entries": n,
		"format":  string(format),
		"gzip":    historyExportGzip,
	})
	if historyExportOut != "" {
		_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries to %s\n", n, historyExportOut)
	}
	return err
}

// exportToFile writes the export to path. The file is closed before
// returning so a failed flush is reported.
func exportToFile(fs afero.Fs, path string, store *history.Store, opts history.ExportOptions) (int, error) {
	f, err := fs.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	n, err := store.Export(f, opts)
	if cerr := f.Close(); err == nil && cerr != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, cerr)
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Clear()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", n)
	return err
}
