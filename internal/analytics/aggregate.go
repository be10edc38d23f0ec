package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"spender/internal/models"
)

// DayStat is one calendar day's classified activity.
type DayStat struct {
	Day              string // "2006-01-02"
	NecessaryCount   int
	UnnecessaryCount int
	Total            decimal.Decimal
}

// CategoryMonths is one category's spend in the current and previous calendar
// month.
type CategoryMonths struct {
	ThisMonth decimal.Decimal
	LastMonth decimal.Decimal
}

// WeekdayCount is one weekday's classified record count and how many of those
// were waste.
type WeekdayCount struct {
	Total int
	Waste int
}

// Stats is the aggregate substrate shared by the insight selector, the
// pattern detector and the achievement evaluator, so each expense list is
// walked once per evaluation. Only classified expenses contribute;
// sentinel-dated records are excluded from every windowed sum, and
// non-positive amounts count as zero.
type Stats struct {
	Week  WeekBounds
	Month MonthBounds

	// Days holds per-day activity in chronological order.
	Days       []DayStat
	DaysLogged int

	WeekTotalCurrent  decimal.Decimal
	WeekTotalPrevious decimal.Decimal
	WeekWorthCurrent  decimal.Decimal
	WeekWasteCurrent  decimal.Decimal
	WeekWorthPrevious decimal.Decimal
	WeekWastePrevious decimal.Decimal

	WeekCategoriesCurrent  map[string]decimal.Decimal
	WeekCategoriesPrevious map[string]decimal.Decimal

	MonthTotalCurrent  decimal.Decimal
	MonthTotalPrevious decimal.Decimal
	Categories         map[string]*CategoryMonths

	// Pattern-detection counters. Weekday grouping only covers records whose
	// date resolved; the waste category tally covers every waste record.
	Weekdays          map[time.Weekday]*WeekdayCount
	WasteByCategory   map[string]int
	WasteCount        int
	DatedWasteCount   int
	WeekendWasteCount int
}

// Aggregate folds an expense snapshot into Stats relative to now.
func Aggregate(expenses []models.Expense, now time.Time) *Stats {
	s := &Stats{
		Week:  WeekWindows(now),
		Month: MonthWindows(now),

		WeekCategoriesCurrent:  make(map[string]decimal.Decimal),
		WeekCategoriesPrevious: make(map[string]decimal.Decimal),
		Categories:             make(map[string]*CategoryMonths),
		Weekdays:               make(map[time.Weekday]*WeekdayCount),
		WasteByCategory:        make(map[string]int),
	}

	daily := make(map[string]*DayStat)

	for i := range expenses {
		exp := &expenses[i]
		if !exp.IsClassified() {
			continue
		}

		if exp.IsWaste() {
			s.WasteCount++
			s.WasteByCategory[exp.Category]++
		}

		resolved := ResolveDate(*exp, now)
		if IsSentinel(resolved) {
			continue
		}

		amount := exp.Amount
		if amount.Sign() < 0 {
			amount = decimal.Zero
		}

		day := resolved.Format("2006-01-02")
		ds, ok := daily[day]
		if !ok {
			ds = &DayStat{Day: day}
			daily[day] = ds
		}
		if exp.IsWorth() {
			ds.NecessaryCount++
		} else {
			ds.UnnecessaryCount++
		}
		ds.Total = ds.Total.Add(amount)

		weekday := resolved.Weekday()
		wc, ok := s.Weekdays[weekday]
		if !ok {
			wc = &WeekdayCount{}
			s.Weekdays[weekday] = wc
		}
		wc.Total++
		if exp.IsWaste() {
			wc.Waste++
			s.DatedWasteCount++
			if weekday == time.Saturday || weekday == time.Sunday {
				s.WeekendWasteCount++
			}
		}

		if amount.Sign() <= 0 {
			continue
		}

		if s.Week.InCurrent(resolved) {
			s.WeekTotalCurrent = s.WeekTotalCurrent.Add(amount)
			s.WeekCategoriesCurrent[exp.Category] = s.WeekCategoriesCurrent[exp.Category].Add(amount)
			if exp.IsWaste() {
				s.WeekWasteCurrent = s.WeekWasteCurrent.Add(amount)
			} else {
				s.WeekWorthCurrent = s.WeekWorthCurrent.Add(amount)
			}
		}

		if s.Week.InPrevious(resolved) {
			s.WeekTotalPrevious = s.WeekTotalPrevious.Add(amount)
			s.WeekCategoriesPrevious[exp.Category] = s.WeekCategoriesPrevious[exp.Category].Add(amount)
			if exp.IsWaste() {
				s.WeekWastePrevious = s.WeekWastePrevious.Add(amount)
			} else {
				s.WeekWorthPrevious = s.WeekWorthPrevious.Add(amount)
			}
		}

		if s.Month.InThisMonth(resolved) {
			s.MonthTotalCurrent = s.MonthTotalCurrent.Add(amount)
			categoryMonths(s, exp.Category).ThisMonth = categoryMonths(s, exp.Category).ThisMonth.Add(amount)
		}

		if s.Month.InLastMonth(resolved) {
			s.MonthTotalPrevious = s.MonthTotalPrevious.Add(amount)
			categoryMonths(s, exp.Category).LastMonth = categoryMonths(s, exp.Category).LastMonth.Add(amount)
		}
	}

	s.Days = make([]DayStat, 0, len(daily))
	for _, ds := range daily {
		s.Days = append(s.Days, *ds)
	}
	sort.Slice(s.Days, func(i, j int) bool { return s.Days[i].Day < s.Days[j].Day })
	s.DaysLogged = len(s.Days)

	return s
}

func categoryMonths(s *Stats, category string) *CategoryMonths {
	cm, ok := s.Categories[category]
	if !ok {
		cm = &CategoryMonths{}
		s.Categories[category] = cm
	}
	return cm
}
