package repositories

import (
	"spender/internal/models"

	"github.com/google/uuid"
)

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id uuid.UUID) (*models.Expense, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error)
	GetAllByUserID(userID uuid.UUID) ([]models.Expense, error)
	GetWithFilters(filters models.ExpenseFilters) ([]models.Expense, int64, error)
	Update(expense *models.Expense) error
	Delete(id uuid.UUID) error
	CountByUserID(userID uuid.UUID) (int64, error)
}

// AchievementRepositoryInterface defines the contract for unlocked achievement
// repository operations
type AchievementRepositoryInterface interface {
	GetUnlockedIDs(userID uuid.UUID) ([]int, error)
	GetUnlocked(userID uuid.UUID) ([]models.UnlockedAchievement, error)
	Unlock(userID uuid.UUID, achievementIDs []int) error
}
