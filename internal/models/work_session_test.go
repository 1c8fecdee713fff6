package models

import (
	"testing"
	"time"
)

func minutePtr(minute int) *int {
	return &minute
}

func TestDurationMinutesSameDay(t *testing.T) {
	session := WorkSession{
		Date:        time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		StartMinute: 9 * 60,
		EndMinute:   minutePtr(17*60 + 30),
	}
	if got := session.DurationMinutes(); got != 8*60+30 {
		t.Fatalf("DurationMinutes() = %d, want %d", got, 8*60+30)
	}
}

func TestDurationMinutesAcrossMidnight(t *testing.T) {
	session := WorkSession{
		StartMinute: 22 * 60,
		EndMinute:   minutePtr(2 * 60),
	}
	if got := session.DurationMinutes(); got != 4*60 {
		t.Fatalf("DurationMinutes() = %d, want %d", got, 4*60)
	}
	if hours := session.DurationHours(); hours != 4 {
		t.Fatalf("DurationHours() = %v, want 4", hours)
	}
}

func TestDurationMinutesOpenSession(t *testing.T) {
	session := WorkSession{StartMinute: 8 * 60}
	if got := session.DurationMinutes(); got != 0 {
		t.Fatalf("DurationMinutes() = %d, want 0 for open session", got)
	}
}
