package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"human/internal/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionShort {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		return err
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version and short commit")
	rootCmd.AddCommand(versionCmd)
}
