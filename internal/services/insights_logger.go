package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// InsightsLogger provides structured logging for analytics evaluations
type InsightsLogger struct {
	logger *slog.Logger
}

// NewInsightsLogger creates a new insights logger
func NewInsightsLogger(logger *slog.Logger) InsightsLoggerInterface {
	return &InsightsLogger{
		logger: logger,
	}
}

// LogEvaluationStarted logs the start of an engine evaluation
func (il *InsightsLogger) LogEvaluationStarted(ctx context.Context, userID uuid.UUID, expenseCount int) {
	il.logger.InfoContext(ctx, "insight evaluation started",
		slog.String("event_type", "insight_evaluation_started"),
		slog.String("user_id", userID.String()),
		slog.Int("expense_count", expenseCount),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogEvaluationCompleted logs a finished evaluation with the selected rule
func (il *InsightsLogger) LogEvaluationCompleted(ctx context.Context, userID uuid.UUID, rule string, patternCount, newAchievements int, durationMs int64) {
	il.logger.InfoContext(ctx, "insight evaluation completed",
		slog.String("event_type", "insight_evaluation_completed"),
		slog.String("user_id", userID.String()),
		slog.String("rule", rule),
		slog.Int("pattern_count", patternCount),
		slog.Int("new_achievements", newAchievements),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogEvaluationFailed logs a failed evaluation
func (il *InsightsLogger) LogEvaluationFailed(ctx context.Context, userID uuid.UUID, errorMsg string) {
	il.logger.WarnContext(ctx, "insight evaluation failed",
		slog.String("event_type", "insight_evaluation_failed"),
		slog.String("user_id", userID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogAchievementsUnlocked logs newly unlocked achievement ids
func (il *InsightsLogger) LogAchievementsUnlocked(ctx context.Context, userID uuid.UUID, achievementIDs []int) {
	il.logger.InfoContext(ctx, "achievements unlocked",
		slog.String("event_type", "achievements_unlocked"),
		slog.String("user_id", userID.String()),
		slog.Any("achievement_ids", achievementIDs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}
	return ""
}
