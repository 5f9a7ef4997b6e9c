package utils

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0:00", "12:00 AM"},
		{"13:05", "1:05 PM"},
		{"23:59", "11:59 PM"},
		{"12:00", "12:00 PM"},
		{"09:30", "9:30 AM"},
	}
	for _, tc := range cases {
		if got := FormatTime(tc.in); got != tc.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTimeContractViolations(t *testing.T) {
	for _, in := range []string{"", "noon", "10", "10:20:30", "ab:cd"} {
		if got := FormatTime(in); got != in {
			t.Errorf("FormatTime(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{120, "₹120.00"},
		{2000, "₹2,000.00"},
		{1920, "₹1,920.00"},
		{0, "₹0.00"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	// 2025-12-22 is a Monday.
	if got := FormatDate("2025-12-22"); got != "Mon, Dec 22, 2025" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDateShort("2025-12-22"); got != "Mon, Dec 22" {
		t.Errorf("FormatDateShort = %q", got)
	}
	if got := DayName("2025-12-22"); got != "Monday" {
		t.Errorf("DayName = %q", got)
	}
	if got := FormatDate("garbage"); got != "garbage" {
		t.Errorf("FormatDate on bad input = %q, want input unchanged", got)
	}
}

func TestCalendarDayChecks(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	if !IsToday(today) {
		t.Errorf("IsToday(%q) = false", today)
	}
	if IsPastDate(today) {
		t.Error("IsPastDate(today) = true, want false: time-of-day must be ignored")
	}
	if !IsPastDate("2000-01-01") {
		t.Error("IsPastDate(2000-01-01) = false")
	}
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	if IsToday(tomorrow) || IsPastDate(tomorrow) {
		t.Error("tomorrow must be neither today nor past")
	}
}
