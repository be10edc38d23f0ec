package analytics

import (
	"fmt"
	"sort"
	"time"

	"spender/internal/models"
)

// Pattern rule codes. Positional ids shift as rules come and go, so the code
// is the stable identifier clients should key styling or icons on.
const (
	PatternWorstDay         = "worst_day"
	PatternDominantCategory = "dominant_category"
	PatternWeekendSpending  = "weekend_concentration"
)

const weekendConcentrationMin = 50

// SpendingPattern is one detected habit, rendered as display text.
type SpendingPattern struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Text string `json:"text"`
}

type patternRule struct {
	code     string
	evaluate func(*Stats) (string, bool)
}

// patternRules are independent; each contributes at most one pattern and the
// output keeps this order.
var patternRules = []patternRule{
	{code: PatternWorstDay, evaluate: worstDayPattern},
	{code: PatternDominantCategory, evaluate: dominantCategoryPattern},
	{code: PatternWeekendSpending, evaluate: weekendPattern},
}

// DetectPatterns evaluates every pattern rule over an expense snapshot and
// returns the matches with positional ids.
func DetectPatterns(expenses []models.Expense, now time.Time) []SpendingPattern {
	stats := Aggregate(expenses, now)

	patterns := []SpendingPattern{}
	for _, rule := range patternRules {
		if text, ok := rule.evaluate(stats); ok {
			patterns = append(patterns, SpendingPattern{
				ID:   len(patterns) + 1,
				Code: rule.code,
				Text: text,
			})
		}
	}

	return patterns
}

// weekdayOrder fixes the scan order so ties resolve the same way every call.
var weekdayOrder = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// worstDayPattern names the weekday with the most waste records and that
// day's waste share.
func worstDayPattern(s *Stats) (string, bool) {
	var worst time.Weekday
	var worstCount *WeekdayCount

	for _, day := range weekdayOrder {
		wc, ok := s.Weekdays[day]
		if !ok {
			continue
		}
		if worstCount == nil || wc.Waste > worstCount.Waste {
			worst = day
			worstCount = wc
		}
	}

	if worstCount == nil || worstCount.Waste == 0 {
		return "", false
	}

	percent := roundPercent(float64(worstCount.Waste) / float64(worstCount.Total) * 100)
	return fmt.Sprintf("%s is your highest unnecessary spending day (+%d%%).", worst, percent), true
}

// dominantCategoryPattern names the category holding the largest share of
// waste records. Ties break on category name.
func dominantCategoryPattern(s *Stats) (string, bool) {
	if s.WasteCount == 0 {
		return "", false
	}

	categories := make([]string, 0, len(s.WasteByCategory))
	for category := range s.WasteByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	best := ""
	bestCount := 0
	for _, category := range categories {
		if count := s.WasteByCategory[category]; count > bestCount {
			best = category
			bestCount = count
		}
	}

	percent := roundPercent(float64(bestCount) / float64(s.WasteCount) * 100)
	return fmt.Sprintf("%d%% of your unnecessary spending comes from %s.", percent, best), true
}

// weekendPattern fires when at least half of dated waste records fall on
// Saturday or Sunday.
func weekendPattern(s *Stats) (string, bool) {
	if s.DatedWasteCount == 0 {
		return "", false
	}

	percent := roundPercent(float64(s.WeekendWasteCount) / float64(s.DatedWasteCount) * 100)
	if percent < weekendConcentrationMin {
		return "", false
	}

	return fmt.Sprintf("%d%% of your unnecessary spending occurs on weekends.", percent), true
}
