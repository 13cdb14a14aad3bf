package analytics

import "time"

// Bucket is a labeled calendar sub-interval. Start and End are the
// first and last day of the interval at local midnight; both bounds are
// inclusive.
type Bucket struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains reports whether the given day falls inside the bucket.
func (b Bucket) Contains(day time.Time) bool {
	return !day.Before(b.Start) && !day.After(b.End)
}

// Day truncates a time to its local calendar day at midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Buckets produces the range's bucket sequence, oldest first. The
// caller supplies today; no live clock is read so results are
// deterministic and testable.
func Buckets(r Range, today time.Time) []Bucket {
	rs := rangeSpecs[r]
	base := unitStart(today, rs.unit)

	count := r.BucketCount()
	buckets := make([]Bucket, count)
	for i := range buckets {
		start := shiftUnits(base, rs.unit, -(rs.lookback - 1 - i*rs.stride))
		buckets[i] = Bucket{
			Label: start.Format(rs.label),
			Start: start,
			End:   unitEnd(start, rs.unit),
		}
	}
	return buckets
}

// CurrentPeriod returns the inclusive day bounds of the calendar period
// containing today under the given range: the day itself, the ISO week,
// the month, or the year. This is independent of the historical bucket
// sequence.
func CurrentPeriod(r Range, today time.Time) (time.Time, time.Time) {
	day := Day(today)
	switch r {
	case RangeDaily:
		return day, day
	case RangeWeekly:
		start := unitStart(today, unitWeek)
		return start, start.AddDate(0, 0, 6)
	case RangeMonthly:
		start := unitStart(today, unitMonth)
		return start, unitEnd(start, unitMonth)
	default: // RangeYearly
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return start, time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location())
	}
}

// unitStart returns the first day of the calendar unit containing t.
// Weeks are ISO weeks: they start on Monday.
func unitStart(t time.Time, u unit) time.Time {
	day := Day(t)
	switch u {
	case unitDay:
		return day
	case unitWeek:
		offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
		return day.AddDate(0, 0, -offset)
	default: // unitMonth
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	}
}

// shiftUnits moves a unit start by n whole units. start is always the
// first day of its unit, so month arithmetic never overflows into the
// wrong month.
func shiftUnits(start time.Time, u unit, n int) time.Time {
	switch u {
	case unitDay:
		return start.AddDate(0, 0, n)
	case unitWeek:
		return start.AddDate(0, 0, 7*n)
	default:
		return start.AddDate(0, n, 0)
	}
}

// unitEnd returns the last day of the unit beginning at start.
func unitEnd(start time.Time, u unit) time.Time {
	switch u {
	case unitDay:
		return start
	case unitWeek:
		return start.AddDate(0, 0, 6)
	default:
		return start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	}
}
