package health

import "time"

// stripTime drops the time-of-day component; all date arithmetic in this
// package runs on UTC midnights so DST never skews day counts.
func stripTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(later, earlier time.Time) int {
	return int(stripTime(later).Sub(stripTime(earlier)).Hours() / 24)
}

// addMonthsClamped advances by whole calendar months, clamping the day to
// the end of the target month (Jan 31 + 1 month = Feb 28/29, not Mar 2/3).
func addMonthsClamped(t time.Time, months int) time.Time {
	t = stripTime(t)
	y := t.Year()
	m := int(t.Month()) - 1 + months
	y += m / 12
	m = m % 12
	if m < 0 {
		m += 12
		y--
	}
	day := t.Day()
	if last := daysInMonth(y, time.Month(m+1)); day > last {
		day = last
	}
	return time.Date(y, time.Month(m+1), day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// wholeMonthsBetween counts full calendar months elapsed from earlier to
// later, honoring end-of-month clamping.
func wholeMonthsBetween(later, earlier time.Time) int {
	later, earlier = stripTime(later), stripTime(earlier)
	months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	if addMonthsClamped(earlier, months).After(later) {
		months--
	}
	return months
}
