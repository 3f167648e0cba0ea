package parsers

import (
	"testing"

	"human/internal/errors"
)

func TestParseUnits(t *testing.T) {
	tests := []struct {
		in   string
		want Units
	}{
		{"si", UnitsSI},
		{"iec", UnitsIEC},
		{"", UnitsIEC},
		{"notit", UnitsIEC},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseUnits(tt.in); got != tt.want {
				t.Errorf("ParseUnits(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSize_CanParse(t *testing.T) {
	sz := NewSize(UnitsIEC)

	into := []struct {
		in   string
		want bool
	}{
		{"0", false},
		{"0123", false},
		{"007", false},
		{"1", true},
		{"1024", true},
		{"18446744073709551615", true},
		{"18446744073709551616", false},
		{"20M", false},
		{"afsdafa", false},
		{"", false},
	}
	for _, tt := range into {
		if got := sz.CanParseIntoHuman(tt.in); got != tt.want {
			t.Errorf("CanParseIntoHuman(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	from := []struct {
		in   string
		want bool
	}{
		{"10MB", true},
		{"1.5 KiB", true},
		{"2 gib", true},
		{"1k", true},
		{"1024", false},
		{"1.5 million", false},
		{"xafadfa", false},
		{"", false},
	}
	for _, tt := range from {
		if got := sz.CanParseFromHuman(tt.in); got != tt.want {
			t.Errorf("CanParseFromHuman(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSize_DoIntoHuman(t *testing.T) {
	tests := []struct {
		units Units
		in    string
		want  string
	}{
		{UnitsSI, "5", "5 B"},
		{UnitsSI, "1000", "1.0 kB"},
		{UnitsSI, "1500000", "1.5 MB"},
		{UnitsIEC, "1024", "1.0 KiB"},
		{UnitsIEC, "1048576", "1.0 MiB"},
		{UnitsIEC, "1536", "1.5 KiB"},
	}

	for _, tt := range tests {
		t.Run(string(tt.units)+"/"+tt.in, func(t *testing.T) {
			got, err := NewSize(tt.units).DoIntoHuman(tt.in)
			if err != nil {
				t.Fatalf("DoIntoHuman(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("DoIntoHuman(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSize_DoFromHuman(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"10MB", "10000000", false},
		{"1.5 KiB", "1536", false},
		{"2 GiB", "2147483648", false},
		{"1024", "", true},
		{"12 parsecs", "", true},
	}

	sz := NewSize(UnitsIEC)
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := sz.DoFromHuman(tt.in)
			if tt.wantErr {
				if !errors.HasCode(err, errors.InvalidInput) {
					t.Errorf("DoFromHuman(%q) error = %v, want INVALID_INPUT", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DoFromHuman(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("DoFromHuman(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewSize_DefaultsToIEC(t *testing.T) {
	if got := NewSize("bogus").Units(); got != UnitsIEC {
		t.Errorf("NewSize(bogus).Units() = %q, want %q", got, UnitsIEC)
	}
}
