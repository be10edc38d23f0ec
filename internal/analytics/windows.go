package analytics

import "time"

// WeekBounds holds the two rolling 7-day comparison windows: the current week
// ending today and the week immediately before it. Both windows span exactly
// seven calendar days and are inclusive on both ends.
type WeekBounds struct {
	CurrentStart  time.Time
	CurrentEnd    time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
}

// MonthBounds holds the calendar-month comparison windows: the current month
// up to now, and the whole previous calendar month.
type MonthBounds struct {
	ThisMonthStart time.Time
	ThisMonthEnd   time.Time
	LastMonthStart time.Time
	LastMonthEnd   time.Time
}

// WeekWindows computes the rolling week pair anchored at now. The current
// window runs from the start of the day six days ago through the end of today;
// the previous window is the seven days immediately before that. Day
// arithmetic is calendar based, so DST transitions do not shift the window by
// an hour.
func WeekWindows(now time.Time) WeekBounds {
	currentEnd := endOfDay(now)
	currentStart := startOfDay(currentEnd.AddDate(0, 0, -6))
	previousEnd := currentStart.Add(-time.Nanosecond)
	previousStart := startOfDay(previousEnd.AddDate(0, 0, -6))

	return WeekBounds{
		CurrentStart:  currentStart,
		CurrentEnd:    currentEnd,
		PreviousStart: previousStart,
		PreviousEnd:   previousEnd,
	}
}

// MonthWindows computes the calendar-month pair anchored at now. AddDate
// handles year rollover, so January's previous month is December of the prior
// year, and February's length follows the actual calendar.
func MonthWindows(now time.Time) MonthBounds {
	thisStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastStart := thisStart.AddDate(0, -1, 0)
	lastEnd := thisStart.Add(-time.Nanosecond)

	return MonthBounds{
		ThisMonthStart: thisStart,
		ThisMonthEnd:   now,
		LastMonthStart: lastStart,
		LastMonthEnd:   lastEnd,
	}
}

// InCurrent reports whether t falls inside the current week window.
func (w WeekBounds) InCurrent(t time.Time) bool {
	return within(t, w.CurrentStart, w.CurrentEnd)
}

// InPrevious reports whether t falls inside the previous week window.
func (w WeekBounds) InPrevious(t time.Time) bool {
	return within(t, w.PreviousStart, w.PreviousEnd)
}

// InThisMonth reports whether t falls inside the current month window.
func (m MonthBounds) InThisMonth(t time.Time) bool {
	return within(t, m.ThisMonthStart, m.ThisMonthEnd)
}

// InLastMonth reports whether t falls inside the previous month window.
func (m MonthBounds) InLastMonth(t time.Time) bool {
	return within(t, m.LastMonthStart, m.LastMonthEnd)
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
