package services

import "time"

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Touching intervals (aEnd == bStart) do not overlap. The single strict
// comparison covers identical, partial and containment shapes uniformly.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// DayWindow normalizes a calendar day to the half-open instant range
// [midnight, next midnight). Comparison is naive local wall-clock: the
// window is anchored in the value's own location, not a fixed zone.
func DayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}
