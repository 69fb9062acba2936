package daycount_test

import (
	"math"
	"testing"
	"time"

	"github.com/meenmo/fundperf/daycount"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween_SameDayIsZero(t *testing.T) {
	d := date(2019, time.June, 15)
	if got := daycount.DaysBetween(d, d); got != 0 {
		t.Fatalf("DaysBetween(d, d) = %d, want 0", got)
	}
}

func TestDaysBetween_WholeDayOffsets(t *testing.T) {
	// Offsets of the demo schedule relative to its first date; the first
	// two spans cross the 2020 and 2024 leap days.
	epoch := date(2019, time.June, 15)
	cases := []struct {
		end  time.Time
		days int
	}{
		{date(2020, time.August, 1), 413},
		{date(2021, time.February, 14), 610},
		{date(2022, time.December, 11), 1275},
		{date(2023, time.January, 4), 1299},
		{date(2024, time.December, 21), 2016},
	}
	for _, c := range cases {
		if got := daycount.DaysBetween(epoch, c.end); got != c.days {
			t.Errorf("DaysBetween(epoch, %s) = %d, want %d",
				c.end.Format("2006-01-02"), got, c.days)
		}
	}
}

func TestDaysBetween_SignedWhenReversed(t *testing.T) {
	start := date(2019, time.June, 15)
	end := date(2020, time.August, 1)
	if got := daycount.DaysBetween(end, start); got != -413 {
		t.Fatalf("DaysBetween(end, start) = %d, want -413", got)
	}
}

func TestYearFraction_Fixed365Convention(t *testing.T) {
	start := date(2019, time.June, 15)

	// 365 actual days is exactly one year under ACT/365, even across a
	// leap year boundary.
	if got := daycount.YearFraction(start, start.AddDate(0, 0, 365)); got != 1.0 {
		t.Fatalf("YearFraction over 365 days = %v, want exactly 1", got)
	}

	got := daycount.YearFraction(start, date(2020, time.August, 1))
	want := 413.0 / 365.0
	if math.Abs(got-want) > 1e-15 {
		t.Fatalf("YearFraction = %v, want %v", got, want)
	}
}
