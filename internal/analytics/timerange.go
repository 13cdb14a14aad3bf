package analytics

import "fmt"

// Range selects the lookback window and granularity for chart series.
type Range string

const (
	RangeDaily   Range = "daily"
	RangeWeekly  Range = "weekly"
	RangeMonthly Range = "monthly"
	RangeYearly  Range = "yearly"
)

// Ranges returns all ranges in display order.
func Ranges() []Range {
	return []Range{RangeDaily, RangeWeekly, RangeMonthly, RangeYearly}
}

// ParseRange converts a user-supplied string into a Range.
func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case RangeDaily, RangeWeekly, RangeMonthly, RangeYearly:
		return Range(s), nil
	default:
		return "", fmt.Errorf("invalid range %q, use daily|weekly|monthly|yearly", s)
	}
}

type unit int

const (
	unitDay unit = iota
	unitWeek
	unitMonth
)

// rangeSpec describes a range as data so the bucketer, aggregator and
// stat derivation all run through one code path instead of parallel
// per-mode switches.
//
// lookback is the total number of calendar units covered; stride is how
// many units separate consecutive bucket starts. A stride above 1
// downsamples the window: yearly keeps every 3rd month of a 36-month
// lookback, aligned to the lookback start rather than to calendar
// quarters. That alignment is intentional, so the newest yearly bucket
// is the month two months before the current one.
type rangeSpec struct {
	unit     unit
	lookback int
	stride   int
	label    string
}

var rangeSpecs = map[Range]rangeSpec{
	RangeDaily:   {unit: unitDay, lookback: 7, stride: 1, label: "Mon"},
	RangeWeekly:  {unit: unitWeek, lookback: 8, stride: 1, label: "Jan 2"},
	RangeMonthly: {unit: unitMonth, lookback: 12, stride: 1, label: "Jan"},
	RangeYearly:  {unit: unitMonth, lookback: 36, stride: 3, label: "Jan 06"},
}

// BucketCount returns how many buckets the range produces.
func (r Range) BucketCount() int {
	rs := rangeSpecs[r]
	return (rs.lookback + rs.stride - 1) / rs.stride
}
