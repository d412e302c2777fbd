package booking

import "iter"

// Business hours for both arenas. Start times run on a half-hour grid from
// 08:00 to 18:00 inclusive; no booking may end after 18:00.
const (
	OpeningTime TimeOfDay = 8 * 60
	ClosingTime TimeOfDay = 18 * 60
	SlotStep    TimeOfDay = 30
)

// WithinHours reports whether a slot starts on the grid inside business
// hours and ends no later than closing.
func WithinHours(start TimeOfDay, duration Duration) bool {
	if start < OpeningTime || start > ClosingTime {
		return false
	}
	if start%SlotStep != 0 {
		return false
	}
	return start.Add(duration) <= ClosingTime
}

// HasConflict reports whether the candidate interval overlaps any of the
// existing intervals. Callers must pre-filter existing to the same
// (arena, date) and to statuses that count against the schedule.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, iv := range existing {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

// ActiveIntervals extracts the intervals of bookings that block the schedule.
// Denied bookings do not count.
func ActiveIntervals(bookings []*Booking) []Interval {
	intervals := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		if b.Status() == StatusDenied {
			continue
		}
		intervals = append(intervals, b.Interval())
	}
	return intervals
}

// StartTimes yields the grid of start times for which a booking of the given
// duration still ends inside business hours, in ascending order.
func StartTimes(duration Duration) iter.Seq[TimeOfDay] {
	return func(yield func(TimeOfDay) bool) {
		for start := OpeningTime; start <= ClosingTime; start += SlotStep {
			if start.Add(duration) > ClosingTime {
				return
			}
			if !yield(start) {
				return
			}
		}
	}
}

// AvailableStarts yields the start times of the given duration that do not
// conflict with any booked interval. The sequence is restartable and
// recomputed on each iteration; with at most 21 grid slots a day there is
// nothing worth caching.
func AvailableStarts(duration Duration, booked []Interval) iter.Seq[TimeOfDay] {
	return func(yield func(TimeOfDay) bool) {
		for start := range StartTimes(duration) {
			if HasConflict(NewInterval(start, duration), booked) {
				continue
			}
			if !yield(start) {
				return
			}
		}
	}
}

// CollectAvailableStarts materialises AvailableStarts into a slice.
func CollectAvailableStarts(duration Duration, booked []Interval) []TimeOfDay {
	var starts []TimeOfDay
	for start := range AvailableStarts(duration, booked) {
		starts = append(starts, start)
	}
	return starts
}
