package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2021, time.June, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestNewTimeFormatter_NilClockUsesWallClock(t *testing.T) {
	f := NewTimeFormatter(nil)

	got := f.Format(time.Now().Add(-3 * time.Hour))

	assert.Equal(t, "about 3 hours", got)
}

func TestTimeFormatter_Format(t *testing.T) {
	f := NewTimeFormatter(fixedClock)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"seconds ago", fixedNow.Add(-20 * time.Second), "less than a minute"},
		{"one minute", fixedNow.Add(-70 * time.Second), "1 minute"},
		{"minutes", fixedNow.Add(-10 * time.Minute), "10 minutes"},
		{"about an hour", fixedNow.Add(-time.Hour), "about 1 hour"},
		{"hours", fixedNow.Add(-3 * time.Hour), "about 3 hours"},
		{"one day gets ago", fixedNow.Add(-24 * time.Hour), "1 day ago"},
		{"days get ago", fixedNow.AddDate(0, 0, -5), "5 days ago"},
		{"thirty days is about a month", fixedNow.AddDate(0, 0, -30), "about 1 month"},
		{"thirty one days is absolute", fixedNow.AddDate(0, 0, -31), "May 15, 2021"},
		{"old date is absolute", time.Date(2021, time.January, 5, 8, 0, 0, 0, time.UTC), "Jan 05, 2021"},
		{"far future is absolute", time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC), "Mar 01, 2022"},
		{"zero time is empty", time.Time{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.in))
		})
	}
}

func TestTimeFormatter_FormatIsIdempotent(t *testing.T) {
	f := NewTimeFormatter(fixedClock)
	inputs := []time.Time{
		fixedNow.Add(-5 * time.Minute),
		fixedNow.AddDate(0, 0, -12),
		fixedNow.AddDate(-3, 0, 0),
	}

	for _, in := range inputs {
		assert.Equal(t, f.Format(in), f.Format(in))
	}
}

func TestTimeFormatter_AbsoluteUsesClockLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	f := NewTimeFormatter(func() time.Time { return fixedNow.In(tokyo) })

	// 2021-01-04 20:00 UTC is already Jan 05 in Tokyo.
	got := f.Format(time.Date(2021, time.January, 4, 20, 0, 0, 0, time.UTC))

	assert.Equal(t, "Jan 05, 2021", got)
}

func TestCalendarDays(t *testing.T) {
	t.Run("crossing midnight counts one day", func(t *testing.T) {
		later := time.Date(2021, time.June, 15, 0, 30, 0, 0, time.UTC)
		earlier := time.Date(2021, time.June, 14, 23, 50, 0, 0, time.UTC)

		assert.Equal(t, 1, CalendarDays(later, earlier))
	})

	t.Run("same day is zero", func(t *testing.T) {
		later := time.Date(2021, time.June, 15, 23, 0, 0, 0, time.UTC)
		earlier := time.Date(2021, time.June, 15, 1, 0, 0, 0, time.UTC)

		assert.Equal(t, 0, CalendarDays(later, earlier))
	})

	t.Run("future is negative", func(t *testing.T) {
		assert.Equal(t, -3, CalendarDays(fixedNow, fixedNow.AddDate(0, 0, 3)))
	})
}

func TestDistanceInWords(t *testing.T) {
	tests := []struct {
		name string
		then time.Time
		want string
	}{
		{"about two months", fixedNow.AddDate(0, 0, -45), "about 2 months"},
		{"several months", fixedNow.AddDate(0, 0, -90), "3 months"},
		{"about a year", fixedNow.AddDate(0, 0, -400), "about 1 year"},
		{"over two years", fixedNow.AddDate(-2, -6, 0), "over 2 years"},
		{"almost three years", fixedNow.AddDate(-2, -10, 0), "almost 3 years"},
		{"about five years", fixedNow.AddDate(-5, 0, 0), "about 5 years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DistanceInWords(tt.then, fixedNow))
		})
	}
}

func TestDistanceInWords_Symmetric(t *testing.T) {
	then := fixedNow.AddDate(0, 0, -7)

	assert.Equal(t, DistanceInWords(then, fixedNow), DistanceInWords(fixedNow, then))
}
