package timezone_test

import (
	"testing"
	"time"

	"frontdesk/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("expected converted time to have a location")
	}

	if !appTime.Equal(utcTime) {
		t.Error("expected converted time to represent the same instant")
	}
}

func TestParseAndFormat(t *testing.T) {
	testTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")
	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2026-03-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed.IsZero() {
		t.Error("Parse() returned a zero time")
	}

	if parsed.Year() != 2026 || parsed.Month() != time.March || parsed.Day() != 1 {
		t.Errorf("Parse() returned wrong date: %v", parsed)
	}
}

func TestParseInvalidDate(t *testing.T) {
	if _, err := timezone.Parse("2006-01-02", "01/03/2026"); err == nil {
		t.Error("expected error for mismatched layout")
	}
}
