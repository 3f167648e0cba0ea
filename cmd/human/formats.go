package main

import (
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"human/internal/output"
	"human/internal/parsers"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the formats human understands",
	Long: `List the registered formats in the order they are tried.

The first format that accepts an input wins; use --all to see every match.`,
	Args: cobra.NoArgs,
	RunE: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

// formatInfo describes one registered handler
type formatInfo struct {
	Priority    int    `json:"priority" yaml:"priority"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

func describeFormats(r *parsers.Registry) []formatInfo {
	return lo.Map(r.Parsers(), func(p parsers.Parser, i int) formatInfo {
		return formatInfo{Priority: i + 1, Name: p.Name(), Description: p.Description()}
	})
}

func runFormats(cmd *cobra.Command, args []string) error {
	format, err := resolveOutputFormat(app.cfg)
	if err != nil {
		return err
	}

	infos := describeFormats(newRegistry(app.cfg))
	if format != output.TextFormat {
		return output.Encode(cmd.OutOrStdout(), infos, format)
	}

	rows := lo.Map(infos, func(f formatInfo, _ int) []string {
		return []string{strconv.Itoa(f.Priority), f.Name, f.Description}
	})
	return renderTable(cmd.OutOrStdout(), []string{"#", "NAME", "DESCRIPTION"}, rows)
}
