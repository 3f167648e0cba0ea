package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"human/internal/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err to w in red, followed by any suggested fixes
func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprint(w, "error: ")
	_, _ = fmt.Fprintln(w, err.Error())

	he, ok := errors.AsHumanError(err)
	if !ok {
		return
	}
	hint := color.New(color.FgYellow)
	for _, fix := range he.SuggestedFixes {
		_, _ = hint.Fprintf(w, "  try: %s", fix.Command)
		if fix.Description != "" {
			_, _ = fmt.Fprintf(w, " (%s)", fix.Description)
		}
		_, _ = fmt.Fprintln(w)
	}
}
