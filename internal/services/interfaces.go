package services

import (
	"context"
	"time"

	"spender/internal/dto"
	"spender/internal/models"

	"github.com/google/uuid"
)

// ExpenseServiceInterface defines expense CRUD and classification operations
type ExpenseServiceInterface interface {
	CreateExpense(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error)
	GetExpense(expenseID uuid.UUID) (*models.Expense, error)
	ListExpenses(userID uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, int64, error)
	ClassifyExpense(ctx context.Context, expenseID uuid.UUID, expenseType string) (*models.Expense, error)
	DeleteExpense(ctx context.Context, expenseID uuid.UUID) error
}

// InsightsServiceInterface composes the analytics engine outputs for a user
type InsightsServiceInterface interface {
	// GetInsights loads the user's full expense history, runs the engine
	// against it, persists any newly unlocked achievements, and returns the
	// composed payload.
	GetInsights(ctx context.Context, userID uuid.UUID) (*dto.InsightsResponse, error)

	// GetGraphs returns the chart payload alone.
	GetGraphs(ctx context.Context, userID uuid.UUID) (*dto.GraphsResponse, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// InsightsLoggerInterface provides structured logging for engine evaluations
type InsightsLoggerInterface interface {
	LogEvaluationStarted(ctx context.Context, userID uuid.UUID, expenseCount int)
	LogEvaluationCompleted(ctx context.Context, userID uuid.UUID, rule string, patternCount, newAchievements int, durationMs int64)
	LogEvaluationFailed(ctx context.Context, userID uuid.UUID, errorMsg string)
	LogAchievementsUnlocked(ctx context.Context, userID uuid.UUID, achievementIDs []int)
}
