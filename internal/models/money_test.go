package models

import (
	"errors"
	"testing"
)

func TestParseAmountCents(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"12.34", 1234},
		{"12,34", 1234},
		{"12.344", 1234},
		{"12.345", 1235},
		{"12.346", 1235},
		{"0.01", 1},
		{"7", 700},
		{" 99,9 ", 9990},
	}
	for _, tc := range cases {
		got, err := ParseAmountCents(tc.input)
		if err != nil {
			t.Fatalf("ParseAmountCents(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseAmountCents(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseAmountCentsRejectsInvalid(t *testing.T) {
	for _, input := range []string{"", "0", "0.00", "-5", "+5", "abc", "1.2.3", "12zł"} {
		if _, err := ParseAmountCents(input); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmountCents(%q): expected ErrInvalidAmount, got %v", input, err)
		}
	}
}

func TestFormatCents(t *testing.T) {
	if got := FormatCents(1234); got != "12.34" {
		t.Fatalf("FormatCents(1234) = %q, want \"12.34\"", got)
	}
	if got := FormatCents(-5); got != "-0.05" {
		t.Fatalf("FormatCents(-5) = %q, want \"-0.05\"", got)
	}
}
