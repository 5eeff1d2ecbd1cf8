package types

import "time"

// AddClampedDate adds the given years, months and days to t, clamping the
// day of month to the last valid day of the target month. Unlike
// time.AddDate, adding one month to Jan 31 lands on Feb 28/29 rather than
// overflowing into March.
func AddClampedDate(t time.Time, years, months, days int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()

	newY := y + years
	newM := time.Month(int(m) + months)

	for newM > 12 {
		newM -= 12
		newY++
	}
	for newM < 1 {
		newM += 12
		newY--
	}

	// Find the last valid day of the new month
	firstOfNextMonth := time.Date(newY, newM+1, 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfNextMonth.Add(-24 * time.Hour).Day()

	newD := d + days
	if newD > lastDay {
		newD = lastDay
	}

	return time.Date(newY, newM, newD, h, min, sec, t.Nanosecond(), t.Location())
}

// ElapsedCalendarDays returns the number of whole days between from and to.
func ElapsedCalendarDays(from, to time.Time) int {
	if to.Before(from) {
		from, to = to, from
	}
	return int(to.Sub(from).Hours() / 24)
}

// ElapsedCalendarMonths returns the number of whole calendar months between
// from and to, counting a month only once the same day of month is reached
// again.
func ElapsedCalendarMonths(from, to time.Time) int {
	if to.Before(from) {
		from, to = to, from
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months <= 0 {
		return 0
	}
	// Not a full month yet if the anchor day has not come around again.
	if AddClampedDate(from, 0, months, 0).After(to) {
		months--
	}
	return months
}

// ElapsedCalendarYears returns the number of whole calendar years between
// from and to.
func ElapsedCalendarYears(from, to time.Time) int {
	return ElapsedCalendarMonths(from, to) / 12
}
