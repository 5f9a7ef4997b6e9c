package utils

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// All customer-facing amounts are Indian Rupee; en-IN gives the 2,2,3 digit grouping.
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency renders an amount as an INR display string, e.g. "₹2,000.00".
func FormatCurrency(amount float64) string {
	return inrPrinter.Sprintf("₹%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// parseDay accepts "YYYY-MM-DD" or an RFC 3339 timestamp.
func parseDay(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatDate renders a date string as e.g. "Mon, Dec 25, 2025".
// Unparseable input is returned unchanged.
func FormatDate(dateString string) string {
	t, ok := parseDay(dateString)
	if !ok {
		return dateString
	}
	return t.Format("Mon, Jan 2, 2006")
}

// FormatDateShort renders a date string as e.g. "Mon, Dec 25".
func FormatDateShort(dateString string) string {
	t, ok := parseDay(dateString)
	if !ok {
		return dateString
	}
	return t.Format("Mon, Jan 2")
}

// FormatDateForInput renders a time as "YYYY-MM-DD".
func FormatDateForInput(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayName returns the full weekday name for a date string.
func DayName(dateString string) string {
	t, ok := parseDay(dateString)
	if !ok {
		return dateString
	}
	return t.Format("Monday")
}

// FormatTime converts a 24-hour "HH:MM" string to 12-hour "H:MM AM/PM".
// Hour 0 maps to 12 AM and hour 12 to 12 PM. Input that does not split into
// two numeric components is returned unchanged.
func FormatTime(timeString string) string {
	parts := strings.Split(timeString, ":")
	if len(parts) != 2 {
		return timeString
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return timeString
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return timeString
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return strconv.Itoa(displayHour) + ":" + parts[1] + " " + ampm
}

// IsToday reports whether the date string falls on the current calendar day.
func IsToday(dateString string) bool {
	t, ok := parseDay(dateString)
	if !ok {
		return false
	}
	now := time.Now()
	return t.Day() == now.Day() && t.Month() == now.Month() && t.Year() == now.Year()
}

// IsPastDate reports whether the date string falls before the current calendar
// day. Time-of-day is ignored.
func IsPastDate(dateString string) bool {
	t, ok := parseDay(dateString)
	if !ok {
		return false
	}
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, t.Location())
	return t.Before(midnight)
}
