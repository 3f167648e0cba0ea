package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"human/internal/parsers"
)

var (
	numberGroup bool
	numberWords bool
)

var numberCmd = &cobra.Command{
	Use:   "number [input]",
	Short: "Convert using the number formats only",
	Long: heredoc.Doc(`
		Convert a whole number without asking the other formats.

		Grouping by thousands is the default; --words spells out the scale
		instead. The default can be changed with the number.mode config key.

		Examples:
		  human number 1000000        # 1,000,000
		  human number -w 1500000     # 1.5 million
		  human number -i 1,000,000   # 1000000
		  human number -w -i "2.5 billion"
	`),
	Args: cobra.MaximumNArgs(1),
	RunE: runNumber,
}

func init() {
	numberCmd.Flags().BoolVarP(&numberGroup, "group", "g", false, "Group digits by thousands")
	numberCmd.Flags().BoolVarP(&numberWords, "words", "w", false, "Use scale words (thousand, million, ...)")
	numberCmd.MarkFlagsMutuallyExclusive("group", "words")
	rootCmd.AddCommand(numberCmd)
}

// numberParser picks the handler from the flags, falling back to config
func numberParser(mode string) (parsers.Parser, error) {
	switch {
	case numberWords:
		mode = "word"
	case numberGroup:
		mode = "group"
	}

	switch mode {
	case "group", "":
		return parsers.NewNumberGroup(), nil
	case "word":
		return parsers.NewNumberWord(), nil
	default:
		return nil, fmt.Errorf("unknown number mode %q", mode)
	}
}

func runNumber(cmd *cobra.Command, args []string) error {
	p, err := numberParser(app.cfg.Number.Mode)
	if err != nil {
		return err
	}
	return convertArgs(cmd, args, p)
}
