package api

import (
	"errors"
	"fmt"
	"testing"

	"renotrack/internal/models"
	"renotrack/internal/services"
)

func TestSessionErrorKeyMatchesWrappedSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{services.ErrInvalidSessionDate, "flash.invalid_date"},
		{fmt.Errorf("parse start time: %w", services.ErrInvalidTimeOfDay), "flash.invalid_time"},
		{services.ErrInvalidTimeOfDay, "flash.invalid_time"},
		{errors.New("database gone"), "flash.invalid_input"},
	}
	for _, tc := range cases {
		if got := sessionErrorKey(tc.err); got != tc.want {
			t.Errorf("sessionErrorKey(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestPurchaseErrorKeyMatchesWrappedSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("parse amount: %w", models.ErrInvalidAmount), "flash.invalid_amount"},
		{services.ErrInvalidPurchaseDate, "flash.invalid_date"},
		{services.ErrMissingVendor, "flash.invalid_input"},
		{errors.New("database gone"), "flash.invalid_input"},
	}
	for _, tc := range cases {
		if got := purchaseErrorKey(tc.err); got != tc.want {
			t.Errorf("purchaseErrorKey(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
