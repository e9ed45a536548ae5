package utils

import (
	"math"
	"os"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// Today returns the current calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(dateLayout)
}

// MonthOf returns the YYYY-MM prefix of a date string. Inputs shorter than
// seven characters come back unchanged; malformed dates are an upstream
// data-quality problem, not an error here.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// DatePart extracts the calendar date from a full ISO timestamp
// ("2024-01-22T14:30:00Z" -> "2024-01-22").
func DatePart(timestamp string) string {
	if idx := strings.Index(timestamp, "T"); idx >= 0 {
		return timestamp[:idx]
	}
	return timestamp
}

// IsValidDate reports whether s parses as YYYY-MM-DD.
func IsValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// Nights counts billable nights between two dates, rounding partial days up.
// Returns 0 when either date is malformed or checkOut is not after checkIn.
func Nights(checkIn, checkOut string) int {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0
	}
	diff := out.Sub(in).Hours() / 24
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff))
}

// PtrTime returns pointer to time.Time
func PtrTime(t time.Time) *time.Time { return &t }
