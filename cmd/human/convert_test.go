package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"human/internal/errors"
	"human/internal/logging"
	"human/internal/output"
	"human/internal/parsers"
)

func TestRoot_SingleArgument(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"thousand", []string{"1000"}, "1,000"},
		{"ten thousand", []string{"10000"}, "10,000"},
		{"hundred thousand", []string{"100000"}, "100,000"},
		{"billion", []string{"1000000000"}, "1,000,000,000"},
		{"hundred billion", []string{"100000000000"}, "100,000,000,000"},
		{"short number unchanged", []string{"999"}, "999"},
		{"zero prints nothing", []string{"0"}, ""},
		{"leading zeros print nothing", []string{"0123"}, ""},
		{"zero with all prints nothing", []string{"-a", "0"}, ""},
		{"leading zeros with all print nothing", []string{"-a", "007"}, ""},
		{"text prints nothing", []string{"hello"}, ""},
		{"back to machine form", []string{"-i", "1,000,000"}, "1000000"},
		{"words back to machine form", []string{"-i", "1.5 million"}, "1500000"},
		{"size back to machine form", []string{"--into-machine", "2 KiB"}, "2048"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHome(t)
			stdout, _, err := executeCommand(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute(%v) error = %v", tt.args, err)
			}
			if stdout != tt.want {
				t.Errorf("Execute(%v) stdout = %q, want %q", tt.args, stdout, tt.want)
			}
		})
	}
}

func TestRoot_InvalidInputFails(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand(t, "", "12af")
	if !errors.HasCode(err, errors.InvalidInput) {
		t.Fatalf("Execute(12af) error = %v, want INVALID_INPUT", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing", stdout)
	}
}

func TestRoot_All(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand(t, "", "-a", "1500000")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "number: 1,500,000\nnumword: 1.5 million\nsize: 1.4 MiB\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRoot_Stdin(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand(t, "1000\n\n  0\n007\n20000\nhello\n")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "1,000\n20,000\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRoot_StdinReportsFailures(t *testing.T) {
	setupHome(t)

	stdout, stderr, err := executeCommand(t, "1000\n12af\n30000\n")
	if err == nil {
		t.Fatal("Execute() should fail when an input is invalid")
	}
	if !strings.Contains(err.Error(), "1 of 3") {
		t.Errorf("error = %v, want a 1 of 3 summary", err)
	}
	if want := "1,000\n30,000\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if !strings.Contains(stderr, "INVALID_INPUT") {
		t.Errorf("stderr = %q, want it to mention INVALID_INPUT", stderr)
	}
}

func TestRoot_JSONOutput(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand(t, "", "-o", "json", "1000")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got []parsers.Result
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	want := []parsers.Result{{Format: "number", Direction: parsers.IntoHuman, Input: "1000", Output: "1,000"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestRoot_JSONOutputNoMatch(t *testing.T) {
	setupHome(t)

	for _, args := range [][]string{{"-o", "json", "0"}, {"-o", "json", "-a", "0"}} {
		stdout, _, err := executeCommand(t, "", args...)
		if err != nil {
			t.Fatalf("Execute(%v) error = %v", args, err)
		}
		if strings.TrimSpace(stdout) != "[]" {
			t.Errorf("Execute(%v) stdout = %q, want an empty array", args, stdout)
		}
	}
}

func TestRoot_UnknownOutputFormat(t *testing.T) {
	setupHome(t)

	if _, _, err := executeCommand(t, "", "-o", "xml", "1000"); err == nil {
		t.Error("Execute() with -o xml should fail")
	}
}

func TestRoot_VerboseAndQuietConflict(t *testing.T) {
	setupHome(t)

	if _, _, err := executeCommand(t, "", "-v", "-q", "1000"); err == nil {
		t.Error("Execute() with -v and -q should fail")
	}
}

func TestRoot_EnvSelectsSIUnits(t *testing.T) {
	setupHome(t)
	t.Setenv("HUMAN_SIZE_UNITS", "si")

	stdout, _, err := executeCommand(t, "", "-i", "1 kB")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "1000" {
		t.Errorf("stdout = %q, want %q", stdout, "1000")
	}

	stdout, _, err = executeCommand(t, "", "-a", "1000")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "size: 1.0 kB\n") {
		t.Errorf("stdout = %q, want an SI size line", stdout)
	}
}

func TestReadInputs(t *testing.T) {
	got, err := readInputs(strings.NewReader("  1000 \n\n\t2000\n3000"))
	if err != nil {
		t.Fatalf("readInputs() error = %v", err)
	}
	want := []string{"1000", "2000", "3000"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readInputs() mismatch (-want +got):\n%s", diff)
	}
}

func TestConverter_WriteText(t *testing.T) {
	results := []parsers.Result{
		{Format: "number", Output: "1,000"},
		{Format: "size", Error: "boom"},
	}

	tests := []struct {
		name   string
		all    bool
		single bool
		in     []parsers.Result
		want   string
	}{
		{"single has no newline", false, true, results[:1], "1,000"},
		{"stream has newline", false, false, results[:1], "1,000\n"},
		{"all prefixes names", true, false, results, "number: 1,000\nsize: error: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &converter{all: tt.all, format: output.TextFormat, logger: logging.NewDiscardLogger()}
			var buf bytes.Buffer
			if err := c.writeText(&buf, tt.in, tt.single); err != nil {
				t.Fatalf("writeText() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("writeText() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestConverter_ForcedParserReportsMismatch(t *testing.T) {
	c := &converter{
		registry:  parsers.DefaultRegistry(),
		forced:    parsers.NewNumberGroup(),
		direction: parsers.IntoHuman,
		format:    output.TextFormat,
		logger:    logging.NewDiscardLogger(),
	}

	_, err := c.convert("0")
	if !errors.HasCode(err, errors.InvalidInput) {
		t.Errorf("convert(0) error = %v, want INVALID_INPUT", err)
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, fmt.Errorf("wrapped: %w", errors.NewHumanError(errors.NoMatch, "nothing", nil)))

	out := buf.String()
	if !strings.Contains(out, "error: ") || !strings.Contains(out, "NO_MATCH") {
		t.Errorf("printError() = %q, want the error line", out)
	}
	if !strings.Contains(out, "try: human formats") {
		t.Errorf("printError() = %q, want the suggested fix", out)
	}
}
