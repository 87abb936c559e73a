// Package format provides the display helpers shared by the normalisers:
// relative and absolute timestamps, repository sizes and action title casing.
//
// Every function is pure. TimeFormatter depends on wall-clock time only
// through the clock it is constructed with.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// AbsoluteLayout renders dates as "MMM DD, YYYY".
	AbsoluteLayout = "Jan 02, 2006"

	// RelativeWindowDays is the widest calendar-day gap rendered as a phrase.
	RelativeWindowDays = 30

	secondsPerDay = 86400

	minutesInDay           = 1440
	minutesInAlmostTwoDays = 2520
	minutesInMonth         = 43200
	minutesInTwoMonths     = 86400
)

// TimeFormatter renders timestamps relative to an injected clock.
type TimeFormatter struct {
	now func() time.Time
}

// NewTimeFormatter creates a formatter. A nil clock uses time.Now.
func NewTimeFormatter(now func() time.Time) *TimeFormatter {
	if now == nil {
		now = time.Now
	}
	return &TimeFormatter{now: now}
}

// Format returns a relative phrase for timestamps within RelativeWindowDays
// calendar days of now and an absolute date otherwise. Phrases counted in
// days get an " ago" suffix. The zero time formats to the empty string.
func (f *TimeFormatter) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	now := f.now()
	days := CalendarDays(now, t)
	if days < 0 {
		days = -days
	}

	if days <= RelativeWindowDays {
		words := DistanceInWords(t, now)
		if strings.Contains(words, "day") {
			return words + " ago"
		}
		return words
	}

	return t.In(now.Location()).Format(AbsoluteLayout)
}

// CalendarDays returns the number of calendar days from earlier to later,
// counted in later's location. The result is negative when earlier falls
// on a later day.
func CalendarDays(later, earlier time.Time) int {
	loc := later.Location()
	e := earlier.In(loc)

	a := time.Date(later.Year(), later.Month(), later.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)

	return int((a.Unix() - b.Unix()) / secondsPerDay)
}

// DistanceInWords describes the gap between two instants in words, e.g.
// "less than a minute", "about 3 hours", "5 days", "about 1 month" or
// "over 2 years". The order of the arguments does not matter.
func DistanceInWords(a, b time.Time) string {
	left, right := a, b
	if left.After(right) {
		left, right = right, left
	}

	loc := b.Location()
	_, leftZone := left.In(loc).Zone()
	_, rightZone := right.In(loc).Zone()
	offset := (leftZone - rightZone) / 60

	seconds := right.Unix() - left.Unix()
	minutes := int(math.Round(float64(seconds)/60)) - offset

	switch {
	case minutes < 2:
		if minutes <= 0 {
			return "less than a minute"
		}
		return "1 minute"
	case minutes < 45:
		return fmt.Sprintf("%d minutes", minutes)
	case minutes < 90:
		return "about 1 hour"
	case minutes < minutesInDay:
		hours := roundDiv(minutes, 60)
		return fmt.Sprintf("about %d hours", hours)
	case minutes < minutesInAlmostTwoDays:
		return "1 day"
	case minutes < minutesInMonth:
		days := roundDiv(minutes, minutesInDay)
		return fmt.Sprintf("%d days", days)
	case minutes < minutesInTwoMonths:
		months := roundDiv(minutes, minutesInMonth)
		return plural("about", months, "month")
	}

	months := monthsBetween(left.In(loc), right.In(loc))
	if months < 12 {
		return fmt.Sprintf("%d months", roundDiv(minutes, minutesInMonth))
	}

	years := months / 12
	switch rem := months % 12; {
	case rem < 3:
		return plural("about", years, "year")
	case rem < 9:
		return plural("over", years, "year")
	default:
		return fmt.Sprintf("almost %d years", years+1)
	}
}

// monthsBetween counts full months from left to right (left <= right).
func monthsBetween(left, right time.Time) int {
	months := (right.Year()-left.Year())*12 + int(right.Month()) - int(left.Month())
	if left.AddDate(0, months, 0).After(right) {
		months--
	}
	return months
}

func roundDiv(n, d int) int {
	return int(math.Round(float64(n) / float64(d)))
}

func plural(prefix string, n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%s 1 %s", prefix, unit)
	}
	return fmt.Sprintf("%s %d %ss", prefix, n, unit)
}
