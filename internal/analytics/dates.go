// Package analytics is the expense analytics engine: deterministic, pure
// functions that turn a snapshot of expenses (plus an explicit "now") into the
// insight of the week, recurring spending patterns, unlocked achievements and
// normalized chart data. The package holds no state between calls and performs
// no I/O; callers own persistence and caching.
package analytics

import (
	"strconv"
	"strings"
	"time"

	"spender/internal/models"
)

// SentinelDate marks an unparsable expense date. Every windowed computation
// treats a sentinel-dated record as outside every window.
var SentinelDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

var shortMonths = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// ResolveDate normalizes an expense's date fields into a calendar date.
// Priority: ISO date, then the short "Mon D" textual form, then the creation
// timestamp as an ordering-only last resort. Anything unparsable degrades to
// SentinelDate; this never fails.
func ResolveDate(exp models.Expense, now time.Time) time.Time {
	if exp.DateISO != "" {
		if t, err := time.Parse(time.RFC3339, exp.DateISO); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02", exp.DateISO); err == nil {
			return t
		}
	}

	if exp.DateText != "" {
		if t, ok := parseShortDate(exp.DateText, now); ok {
			return t
		}
		return SentinelDate
	}

	if !exp.CreatedAt.IsZero() {
		return exp.CreatedAt
	}

	return SentinelDate
}

// IsSentinel reports whether a resolved date is the unparsable-date sentinel.
func IsSentinel(t time.Time) bool {
	return t.Year() == 1970
}

// parseShortDate parses the year-less "Mon D" form. The year is assumed to be
// now's year, unless the named month is after now's month, in which case the
// previous year is assumed so that late-December entries still resolve
// correctly when browsed in January. Known limitation: an expense genuinely
// dated in a future month of the same year is mis-attributed to last year.
func parseShortDate(s string, now time.Time) (time.Time, bool) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return time.Time{}, false
	}

	month, ok := shortMonths[parts[0]]
	if !ok {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}

	year := now.Year()
	if now.Month() < month {
		year--
	}

	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), true
}
