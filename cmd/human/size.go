package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"human/internal/parsers"
)

var sizeUnits string

var sizeCmd = &cobra.Command{
	Use:   "size [input]",
	Short: "Convert byte counts",
	Long: heredoc.Doc(`
		Convert between a byte count and a size with units.

		IEC units (KiB, MiB, powers of 1024) are the default; --units si uses
		kB, MB and powers of 1000. The default comes from the size.units
		config key.

		Examples:
		  human size 1048576          # 1.0 MiB
		  human size --units si 1000  # 1.0 kB
		  human size -i "1.5 KiB"     # 1536
	`),
	Args: cobra.MaximumNArgs(1),
	RunE: runSize,
}

func init() {
	sizeCmd.Flags().StringVar(&sizeUnits, "units", "", "Unit system: iec or si (default from config)")
	rootCmd.AddCommand(sizeCmd)
}

func sizeParser(configured string) (*parsers.Size, error) {
	units := configured
	if sizeUnits != "" {
		units = sizeUnits
	}
	switch parsers.Units(units) {
	case parsers.UnitsIEC, parsers.UnitsSI, "":
		return parsers.NewSize(parsers.Units(units)), nil
	default:
		return nil, fmt.Errorf("unknown units %q (want iec or si)", units)
	}
}

func runSize(cmd *cobra.Command, args []string) error {
	p, err := sizeParser(app.cfg.Size.Units)
	if err != nil {
		return err
	}
	return convertArgs(cmd, args, p)
}
