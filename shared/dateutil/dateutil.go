// Package dateutil handles the calendar arithmetic behind stays: strict
// ISO date parsing, half-open interval overlap and night counting.
//
// Dates travel through the system as "YYYY-MM-DD" strings and are anchored
// at 12:00 when materialized, so daylight-saving transitions at midnight
// never shift a night into the wrong day. Every function degrades to a safe
// zero value on malformed input instead of returning an error; the engine
// built on top is defensive, not authoritative.
package dateutil

import (
	"fmt"
	"math"
	"time"

	"pousada/shared/constant"
	"pousada/shared/timezone"
)

// ParseLocalDate parses a strict "YYYY-MM-DD" string into a time anchored
// at midday in the application timezone. The second return value is false
// on empty or malformed input.
func ParseLocalDate(isoDate string) (time.Time, bool) {
	if isoDate == "" {
		return time.Time{}, false
	}

	parsed, err := time.ParseInLocation(constant.ISODateFormat, isoDate, timezone.GetLocation())
	if err != nil {
		return time.Time{}, false
	}

	year, month, day := parsed.Date()

	return time.Date(year, month, day, 12, 0, 0, 0, timezone.GetLocation()), true
}

// FormatISO formats a time as zero-padded "YYYY-MM-DD".
func FormatISO(date time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year(), int(date.Month()), date.Day())
}

// IntervalsOverlap reports whether the half-open intervals [startA, endA)
// and [startB, endB) intersect. A check-out equal to another stay's
// check-in does not overlap. False when any bound fails to parse.
func IntervalsOverlap(startA, endA, startB, endB string) bool {
	aStart, okA := ParseLocalDate(startA)
	aEnd, okB := ParseLocalDate(endA)
	bStart, okC := ParseLocalDate(startB)
	bEnd, okD := ParseLocalDate(endB)

	if !okA || !okB || !okC || !okD {
		return false
	}

	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Nights returns the whole-day difference checkOut - checkIn, 0 on bad input.
func Nights(checkIn, checkOut string) int {
	in, okIn := ParseLocalDate(checkIn)
	out, okOut := ParseLocalDate(checkOut)

	if !okIn || !okOut {
		return 0
	}

	return int(math.Round(out.Sub(in).Hours() / 24))
}

// MonthOf extracts the month component (1-12) of an ISO date, 0 when the
// date does not parse.
func MonthOf(isoDate string) int {
	date, ok := ParseLocalDate(isoDate)
	if !ok {
		return 0
	}

	return int(date.Month())
}

// DaysInMonth returns how many days the given month of the given year has.
func DaysInMonth(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month+1), 0, 12, 0, 0, 0, timezone.GetLocation()).Day()
}

// WithinYear reports whether both dates fall inside the given calendar year.
func WithinYear(checkIn, checkOut string, year int) bool {
	in, okIn := ParseLocalDate(checkIn)
	out, okOut := ParseLocalDate(checkOut)

	if !okIn || !okOut {
		return false
	}

	return in.Year() == year && out.Year() == year
}

// TodayISO returns the current date formatted as "YYYY-MM-DD".
func TodayISO() string {
	return FormatISO(timezone.Now())
}
