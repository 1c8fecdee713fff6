package services

import (
	"errors"
	"testing"
	"time"
)

func TestParseMinuteOfDay(t *testing.T) {
	valid := map[string]int{
		"00:00":  0,
		"08:30":  510,
		"22:00":  1320,
		"23:59":  1439,
		" 9:15 ": 555,
	}
	for input, want := range valid {
		got, err := ParseMinuteOfDay(input)
		if err != nil {
			t.Errorf("ParseMinuteOfDay(%q): %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseMinuteOfDay(%q) = %d, want %d", input, got, want)
		}
	}

	invalid := []string{"", "24:00", "12:60", "12", "ab:cd", "12:34:56"}
	for _, input := range invalid {
		if _, err := ParseMinuteOfDay(input); !errors.Is(err, ErrInvalidTimeOfDay) {
			t.Errorf("ParseMinuteOfDay(%q): err = %v, want ErrInvalidTimeOfDay", input, err)
		}
	}
}

func TestFormatMinuteOfDayRoundTrips(t *testing.T) {
	for _, minute := range []int{0, 510, 1320, 1439} {
		parsed, err := ParseMinuteOfDay(FormatMinuteOfDay(minute))
		if err != nil || parsed != minute {
			t.Errorf("round trip of %d gave %d, %v", minute, parsed, err)
		}
	}
}

func TestMonthStart(t *testing.T) {
	got := MonthStart(time.Date(2026, 9, 17, 13, 45, 0, 0, time.UTC))
	want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MonthStart = %v, want %v", got, want)
	}
}
