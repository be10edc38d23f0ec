package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekWindows(t *testing.T) {
	w := WeekWindows(anchor)

	assert.True(t, w.CurrentStart.Equal(time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 23, w.CurrentEnd.Hour())
	assert.Equal(t, 26, w.CurrentEnd.Day())
	assert.True(t, w.PreviousStart.Equal(time.Date(2025, time.November, 13, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.PreviousEnd.Before(w.CurrentStart))

	// Both windows span seven calendar days, inclusive.
	assert.True(t, w.InCurrent(time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.InCurrent(time.Date(2025, time.November, 26, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.InCurrent(time.Date(2025, time.November, 19, 23, 59, 59, 0, time.UTC)))
	assert.True(t, w.InPrevious(time.Date(2025, time.November, 13, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.InPrevious(time.Date(2025, time.November, 19, 12, 0, 0, 0, time.UTC)))
	assert.False(t, w.InPrevious(time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.InPrevious(time.Date(2025, time.November, 12, 23, 0, 0, 0, time.UTC)))
}

func TestWeekWindows_YearRollover(t *testing.T) {
	january := time.Date(2026, time.January, 2, 9, 0, 0, 0, time.UTC)
	w := WeekWindows(january)

	assert.True(t, w.CurrentStart.Equal(time.Date(2025, time.December, 27, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.PreviousStart.Equal(time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.InCurrent(time.Date(2025, time.December, 30, 15, 0, 0, 0, time.UTC)))
	assert.True(t, w.InPrevious(time.Date(2025, time.December, 24, 15, 0, 0, 0, time.UTC)))
}

func TestMonthWindows(t *testing.T) {
	m := MonthWindows(anchor)

	assert.True(t, m.ThisMonthStart.Equal(time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.ThisMonthEnd.Equal(anchor))
	assert.True(t, m.LastMonthStart.Equal(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, m.LastMonthEnd.Day())

	assert.True(t, m.InThisMonth(time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)))
	assert.False(t, m.InThisMonth(time.Date(2025, time.November, 27, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.InLastMonth(time.Date(2025, time.October, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, m.InLastMonth(time.Date(2025, time.September, 30, 23, 0, 0, 0, time.UTC)))
}

func TestMonthWindows_YearRollover(t *testing.T) {
	m := MonthWindows(time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC))

	assert.True(t, m.LastMonthStart.Equal(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.December, m.LastMonthEnd.Month())
	assert.Equal(t, 2025, m.LastMonthEnd.Year())
}

func TestMonthWindows_LeapFebruary(t *testing.T) {
	m := MonthWindows(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 29, m.LastMonthEnd.Day())
	assert.True(t, m.InLastMonth(time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)))
}
