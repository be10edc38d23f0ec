package repositories

import (
	"fmt"
	"time"

	"spender/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// achievementRepository implements AchievementRepositoryInterface
type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new unlocked achievement repository
func NewAchievementRepository(db *gorm.DB) AchievementRepositoryInterface {
	return &achievementRepository{
		db: db,
	}
}

// GetUnlockedIDs retrieves the achievement ids a user has already unlocked,
// in ascending id order
func (r *achievementRepository) GetUnlockedIDs(userID uuid.UUID) ([]int, error) {
	var ids []int
	if err := r.db.Model(&models.UnlockedAchievement{}).
		Where("user_id = ?", userID).
		Order("achievement_id ASC").
		Pluck("achievement_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get unlocked achievement ids: %w", err)
	}
	return ids, nil
}

// GetUnlocked retrieves a user's unlocked achievement rows
func (r *achievementRepository) GetUnlocked(userID uuid.UUID) ([]models.UnlockedAchievement, error) {
	var unlocked []models.UnlockedAchievement
	if err := r.db.Where("user_id = ?", userID).
		Order("achievement_id ASC").
		Find(&unlocked).Error; err != nil {
		return nil, fmt.Errorf("failed to get unlocked achievements: %w", err)
	}
	return unlocked, nil
}

// Unlock records newly unlocked achievement ids for a user. Re-unlocking an
// already recorded id is a no-op thanks to the unique (user, achievement)
// index.
func (r *achievementRepository) Unlock(userID uuid.UUID, achievementIDs []int) error {
	if len(achievementIDs) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]models.UnlockedAchievement, 0, len(achievementIDs))
	for _, id := range achievementIDs {
		rows = append(rows, models.UnlockedAchievement{
			UserID:        userID,
			AchievementID: id,
			UnlockedAt:    now,
		})
	}

	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to record unlocked achievements: %w", err)
	}
	return nil
}
