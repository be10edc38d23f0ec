package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"spender/internal/models"
)

const (
	cleanStreakDays    = 3
	daysLoggedTarget   = 7
	monthTrackedTarget = 30
	necessaryShareMin  = 0.6
)

// totalDropFactor is the 10% reduction threshold shared by the weekly and
// monthly drop achievements; categoryDropFactor is the steeper 20% per-category
// threshold.
var (
	totalDropFactor    = decimal.NewFromFloat(0.9)
	categoryDropFactor = decimal.NewFromFloat(0.8)
)

type conditionFunc func(*Stats) bool

// conditionRegistry maps achievement condition keys to their predicates over
// the shared aggregates. Adding an achievement means adding a key here and a
// definition row in models; nothing else changes.
var conditionRegistry = map[string]conditionFunc{
	models.ConditionDayNoUnnecessary: dayWithoutWaste,
	models.ConditionStreak3Days:      cleanStreak,
	models.ConditionWeeklyDrop10:     weeklyDrop,
	models.ConditionMonthlyDrop10:    monthlyDrop,
	models.ConditionCategoryReduce20: categoryReduce,
	models.ConditionDaysLogged7:      daysLogged,
	models.ConditionNecessary60:      necessaryShare,
	models.ConditionMonthTracked30:   monthTracked,
}

// ValidateDefinitions checks that every definition's condition key is known to
// the registry. Call it at startup; an unknown key is a programming error and
// silently never unlocking would hide it.
func ValidateDefinitions(defs []models.AchievementDefinition) error {
	for _, def := range defs {
		if _, ok := conditionRegistry[def.Condition]; !ok {
			return fmt.Errorf("achievement %d (%s) has unknown condition %q", def.ID, def.Title, def.Condition)
		}
	}
	return nil
}

// CheckNewAchievements evaluates the built-in achievement table against an
// expense snapshot and returns the ids that are newly satisfied, in table
// order. Ids in unlockedIDs are never reported again, which makes the call
// idempotent once the caller persists its results.
func CheckNewAchievements(expenses []models.Expense, now time.Time, unlockedIDs []int) []int {
	return EvaluateAchievements(models.DefaultAchievements(), expenses, now, unlockedIDs)
}

// EvaluateAchievements is CheckNewAchievements over an explicit definition
// table. Definitions with unknown condition keys never unlock; run
// ValidateDefinitions first to surface those.
func EvaluateAchievements(defs []models.AchievementDefinition, expenses []models.Expense, now time.Time, unlockedIDs []int) []int {
	stats := Aggregate(expenses, now)

	unlocked := make(map[int]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = true
	}

	newly := []int{}
	for _, def := range defs {
		if unlocked[def.ID] {
			continue
		}
		condition, ok := conditionRegistry[def.Condition]
		if !ok {
			continue
		}
		if condition(stats) {
			newly = append(newly, def.ID)
		}
	}

	return newly
}

// dayWithoutWaste: some logged day has classified activity and no waste.
func dayWithoutWaste(s *Stats) bool {
	for _, day := range s.Days {
		if day.UnnecessaryCount == 0 && day.NecessaryCount > 0 {
			return true
		}
	}
	return false
}

// cleanStreak: three consecutive logged days without waste. Consecutive means
// adjacent entries in the day log, not adjacent calendar days, so a skipped
// day does not break the streak.
func cleanStreak(s *Stats) bool {
	streak := 0
	for _, day := range s.Days {
		if day.UnnecessaryCount == 0 {
			streak++
			if streak >= cleanStreakDays {
				return true
			}
		} else {
			streak = 0
		}
	}
	return false
}

// weeklyDrop: this week's total is at most 90% of last week's.
func weeklyDrop(s *Stats) bool {
	if s.WeekTotalPrevious.Sign() <= 0 {
		return false
	}
	return s.WeekTotalCurrent.LessThanOrEqual(s.WeekTotalPrevious.Mul(totalDropFactor))
}

// monthlyDrop: this month's total is at most 90% of last month's.
func monthlyDrop(s *Stats) bool {
	if s.MonthTotalPrevious.Sign() <= 0 {
		return false
	}
	return s.MonthTotalCurrent.LessThanOrEqual(s.MonthTotalPrevious.Mul(totalDropFactor))
}

// categoryReduce: some category spent at most 80% of its last-month total.
func categoryReduce(s *Stats) bool {
	for _, cm := range s.Categories {
		if cm.LastMonth.Sign() <= 0 {
			continue
		}
		if cm.ThisMonth.LessThanOrEqual(cm.LastMonth.Mul(categoryDropFactor)) {
			return true
		}
	}
	return false
}

func daysLogged(s *Stats) bool {
	return s.DaysLogged >= daysLoggedTarget
}

// necessaryShare: at least 60% of this week's classified spend is worth-tagged,
// by amount.
func necessaryShare(s *Stats) bool {
	classified := s.WeekWorthCurrent.Add(s.WeekWasteCurrent)
	if classified.Sign() <= 0 {
		return false
	}
	share := s.WeekWorthCurrent.InexactFloat64() / classified.InexactFloat64()
	return share >= necessaryShareMin
}

func monthTracked(s *Stats) bool {
	return s.DaysLogged >= monthTrackedTarget
}
