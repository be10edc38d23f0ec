package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spender/internal/models"
)

func TestDetectPatterns_NoWaste(t *testing.T) {
	expenses := []models.Expense{
		newExpense("2025-11-24", "Food", models.ExpenseTypeWorth, 30),
		newExpense("2025-11-25", "Rent", models.ExpenseTypeWorth, 500),
	}

	patterns := DetectPatterns(expenses, anchor)

	assert.Empty(t, patterns)
	assert.NotNil(t, patterns)
}

func TestDetectPatterns_WorstDayAndDominantCategory(t *testing.T) {
	// 2025-11-24 is a Monday; both waste records land there, alongside one
	// worth record, so Monday's waste share is 67%.
	expenses := []models.Expense{
		newExpense("2025-11-24", "Coffee", models.ExpenseTypeWaste, 5),
		newExpense("2025-11-24", "Coffee", models.ExpenseTypeWaste, 5),
		newExpense("2025-11-24", "Food", models.ExpenseTypeWorth, 30),
		newExpense("2025-11-25", "Games", models.ExpenseTypeWaste, 20),
	}

	patterns := DetectPatterns(expenses, anchor)

	assert.Len(t, patterns, 2)

	assert.Equal(t, 1, patterns[0].ID)
	assert.Equal(t, PatternWorstDay, patterns[0].Code)
	assert.Equal(t, "Monday is your highest unnecessary spending day (+67%).", patterns[0].Text)

	assert.Equal(t, 2, patterns[1].ID)
	assert.Equal(t, PatternDominantCategory, patterns[1].Code)
	assert.Equal(t, "67% of your unnecessary spending comes from Coffee.", patterns[1].Text)
}

func TestDetectPatterns_WeekendConcentration(t *testing.T) {
	// 2025-11-22 and 2025-11-23 are Saturday and Sunday. Every waste record
	// is on the weekend, so the concentration is 100%.
	expenses := []models.Expense{
		newExpense("2025-11-22", "Games", models.ExpenseTypeWaste, 25),
		newExpense("2025-11-23", "Coffee", models.ExpenseTypeWaste, 5),
		newExpense("2025-11-24", "Food", models.ExpenseTypeWorth, 30),
	}

	patterns := DetectPatterns(expenses, anchor)

	assert.Len(t, patterns, 3)
	assert.Equal(t, PatternWeekendSpending, patterns[2].Code)
	assert.Equal(t, 3, patterns[2].ID)
	assert.Equal(t, "100% of your unnecessary spending occurs on weekends.", patterns[2].Text)
}

func TestDetectPatterns_WeekdayWasteStaysBelowThreshold(t *testing.T) {
	expenses := []models.Expense{
		newExpense("2025-11-22", "Games", models.ExpenseTypeWaste, 25), // Saturday
		newExpense("2025-11-24", "Coffee", models.ExpenseTypeWaste, 5),
		newExpense("2025-11-25", "Coffee", models.ExpenseTypeWaste, 5),
	}

	patterns := DetectPatterns(expenses, anchor)

	for _, p := range patterns {
		assert.NotEqual(t, PatternWeekendSpending, p.Code)
	}
}

func TestDetectPatterns_UndatedWasteCountsForDominanceOnly(t *testing.T) {
	expenses := []models.Expense{
		newTextExpense("??? 3", "Coffee", models.ExpenseTypeWaste, 5),
		newTextExpense("??? 4", "Coffee", models.ExpenseTypeWaste, 5),
		newExpense("2025-11-24", "Games", models.ExpenseTypeWaste, 25),
	}

	patterns := DetectPatterns(expenses, anchor)

	assert.Len(t, patterns, 2)
	// Day-of-week grouping only sees the dated record.
	assert.Equal(t, "Monday is your highest unnecessary spending day (+100%).", patterns[0].Text)
	// Dominance counts every waste record, dated or not.
	assert.Equal(t, "67% of your unnecessary spending comes from Coffee.", patterns[1].Text)
}
