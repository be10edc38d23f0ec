package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"spender/internal/analytics"
	"spender/internal/dto"
	"spender/internal/models"
	"spender/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInsightGeneration = errors.New("failed to generate insights")
	ErrAchievementUnlock = errors.New("failed to record unlocked achievements")
)

// InsightsService runs the analytics engine over a user's expense history.
// The engine itself is pure; this service owns the snapshot load, the clock,
// and the persistence of newly unlocked achievements.
type InsightsService struct {
	expenseRepo     repositories.ExpenseRepositoryInterface
	achievementRepo repositories.AchievementRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          InsightsLoggerInterface
	now             func() time.Time
}

// NewInsightsService creates a new insights service
func NewInsightsService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	achievementRepo repositories.AchievementRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger InsightsLoggerInterface,
) InsightsServiceInterface {
	return &InsightsService{
		expenseRepo:     expenseRepo,
		achievementRepo: achievementRepo,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// GetInsights composes the full insights payload from one expense snapshot:
// insight of the week, spending patterns, graphs, and achievement state. Newly
// unlocked achievements are persisted before the response is built so repeated
// calls only report genuinely new unlocks.
func (s *InsightsService) GetInsights(ctx context.Context, userID uuid.UUID) (*dto.InsightsResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	start := time.Now()

	expenses, err := s.expenseRepo.GetAllByUserID(userID)
	if err != nil {
		s.logger.LogEvaluationFailed(ctx, userID, err.Error())
		return nil, fmt.Errorf("%w: %v", ErrInsightGeneration, err)
	}

	unlockedIDs, err := s.achievementRepo.GetUnlockedIDs(userID)
	if err != nil {
		s.logger.LogEvaluationFailed(ctx, userID, err.Error())
		return nil, fmt.Errorf("%w: %v", ErrInsightGeneration, err)
	}

	s.logger.LogEvaluationStarted(ctx, userID, len(expenses))

	now := s.now()
	insight, rule := analytics.SelectInsightNamed(expenses, now)
	patterns := analytics.DetectPatterns(expenses, now)
	graphs := analytics.BuildGraphs(expenses)
	newIDs := analytics.CheckNewAchievements(expenses, now, unlockedIDs)

	if len(newIDs) > 0 {
		if err := s.achievementRepo.Unlock(userID, newIDs); err != nil {
			s.logger.LogEvaluationFailed(ctx, userID, err.Error())
			return nil, fmt.Errorf("%w: %v", ErrAchievementUnlock, err)
		}
		unlockedIDs = append(unlockedIDs, newIDs...)
		s.logger.LogAchievementsUnlocked(ctx, userID, newIDs)
		for _, id := range newIDs {
			s.metrics.IncrementCounter("achievement_unlocked", map[string]string{
				"achievement_id": strconv.Itoa(id),
			})
		}
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter("insight_generated", map[string]string{"rule": rule})
	s.metrics.RecordProcessingTime("insight_evaluation", duration)
	s.metrics.RecordGauge("tracked_expenses", float64(len(expenses)), nil)
	s.logger.LogEvaluationCompleted(ctx, userID, rule, len(patterns), len(newIDs), duration.Milliseconds())

	return &dto.InsightsResponse{
		Insight:      insight,
		Patterns:     patterns,
		Graphs:       graphs,
		Achievements: dto.BuildAchievementsSection(models.DefaultAchievements(), newIDs, unlockedIDs),
	}, nil
}

// GetGraphs returns the chart payload alone
func (s *InsightsService) GetGraphs(ctx context.Context, userID uuid.UUID) (*dto.GraphsResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	expenses, err := s.expenseRepo.GetAllByUserID(userID)
	if err != nil {
		s.logger.LogEvaluationFailed(ctx, userID, err.Error())
		return nil, fmt.Errorf("%w: %v", ErrInsightGeneration, err)
	}

	return &dto.GraphsResponse{
		Graphs: analytics.BuildGraphs(expenses),
	}, nil
}
