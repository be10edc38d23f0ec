package analytics

import (
	"fmt"
	"sort"
	"time"

	"spender/internal/models"
)

// Insight is the single weekly takeaway shown at the top of the insights page.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Thresholds for the insight rules. Percent thresholds compare week-over-week
// changes; amount thresholds keep tiny absolute movements from generating
// noise.
const (
	wasteRatioDropMin       = 0.05
	categoryPrevSpendMin    = 20.0
	categoryDropPercentMin  = 20
	totalDropAmountMin      = 20.0
	totalDropPercentMin     = 5
	spendingAlertMultiplier = 1.2
)

type insightRule struct {
	name     string
	evaluate func(*Stats) *Insight
}

// insightRules is evaluated in order; the first rule that produces an insight
// wins. The list ends with a rule that always matches, so selection never
// falls through.
var insightRules = []insightRule{
	{name: "waste_ratio_improvement", evaluate: wasteRatioImprovement},
	{name: "category_improvement", evaluate: categoryImprovement},
	{name: "total_spend_reduction", evaluate: totalSpendReduction},
	{name: "first_week", evaluate: firstWeek},
	{name: "spending_alert", evaluate: spendingAlert},
	{name: "steady_week", evaluate: steadyWeek},
}

// SelectInsight picks the insight of the week for an expense snapshot.
func SelectInsight(expenses []models.Expense, now time.Time) Insight {
	insight, _ := SelectInsightNamed(expenses, now)
	return insight
}

// SelectInsightNamed also reports which rule produced the insight, for
// logging and metrics.
func SelectInsightNamed(expenses []models.Expense, now time.Time) (Insight, string) {
	if len(expenses) == 0 {
		return Insight{
			Title:       "No data yet",
			Description: "Add some expenses to get your first insight.",
		}, "no_data"
	}

	stats := Aggregate(expenses, now)
	for _, rule := range insightRules {
		if insight := rule.evaluate(stats); insight != nil {
			return *insight, rule.name
		}
	}

	// Unreachable: steadyWeek always matches.
	return Insight{}, ""
}

// wasteRatioImprovement fires when the waste share of weekly spending dropped
// by at least five percentage points against last week.
func wasteRatioImprovement(s *Stats) *Insight {
	prevTotal := s.WeekTotalPrevious.InexactFloat64()
	if prevTotal <= 0 {
		return nil
	}

	prevRatio := s.WeekWastePrevious.InexactFloat64() / prevTotal

	curRatio := 0.0
	if curTotal := s.WeekTotalCurrent.InexactFloat64(); curTotal > 0 {
		curRatio = s.WeekWasteCurrent.InexactFloat64() / curTotal
	}

	drop := prevRatio - curRatio
	if drop < wasteRatioDropMin {
		return nil
	}

	return &Insight{
		Title:       "Better quality spending",
		Description: fmt.Sprintf("Your waste spending dropped by %d%% compared to last week.", roundPercent(drop*100)),
	}
}

// categoryImprovement fires for the category with the steepest week-over-week
// drop, provided last week's spend there was material and the drop is at
// least twenty percent. Ties break on category name to keep output stable.
func categoryImprovement(s *Stats) *Insight {
	bestCategory := ""
	bestDrop := 0

	categories := make([]string, 0, len(s.WeekCategoriesCurrent))
	for category := range s.WeekCategoriesCurrent {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		prev := s.WeekCategoriesPrevious[category].InexactFloat64()
		cur := s.WeekCategoriesCurrent[category].InexactFloat64()
		if prev < categoryPrevSpendMin || cur >= prev {
			continue
		}

		drop := roundPercent((prev - cur) / prev * 100)
		if drop < categoryDropPercentMin {
			continue
		}
		if drop > bestDrop {
			bestDrop = drop
			bestCategory = category
		}
	}

	if bestCategory == "" {
		return nil
	}

	return &Insight{
		Title:       fmt.Sprintf("%s looks better", bestCategory),
		Description: fmt.Sprintf("You cut %s spending by %d%% compared to last week.", bestCategory, bestDrop),
	}
}

// totalSpendReduction fires when the weekly total dropped by a meaningful
// absolute amount that is also a meaningful share of last week.
func totalSpendReduction(s *Stats) *Insight {
	prev := s.WeekTotalPrevious.InexactFloat64()
	cur := s.WeekTotalCurrent.InexactFloat64()
	if prev <= 0 || cur >= prev {
		return nil
	}

	diff := prev - cur
	diffPercent := roundPercent(diff / prev * 100)
	if diff < totalDropAmountMin || diffPercent < totalDropPercentMin {
		return nil
	}

	return &Insight{
		Title:       "You spent less this week",
		Description: fmt.Sprintf("You spent $%s less than last week.", s.WeekTotalPrevious.Sub(s.WeekTotalCurrent).Round(0)),
	}
}

func firstWeek(s *Stats) *Insight {
	if s.WeekTotalPrevious.Sign() > 0 || s.WeekTotalCurrent.Sign() <= 0 {
		return nil
	}

	return &Insight{
		Title:       "First week on Spender 🎉",
		Description: "Once we have two weeks of data, we'll start showing insights here.",
	}
}

func spendingAlert(s *Stats) *Insight {
	prev := s.WeekTotalPrevious.InexactFloat64()
	cur := s.WeekTotalCurrent.InexactFloat64()
	if prev <= 0 || cur <= prev*spendingAlertMultiplier {
		return nil
	}

	return &Insight{
		Title:       "Spending alert",
		Description: fmt.Sprintf("You spent about %d%% more than last week.", roundPercent((cur-prev)/prev*100)),
	}
}

func steadyWeek(s *Stats) *Insight {
	return &Insight{
		Title:       "Steady week",
		Description: "Your spending is similar to last week.",
	}
}
