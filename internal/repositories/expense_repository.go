package repositories

import (
	"errors"
	"fmt"

	"spender/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by ID
func (r *expenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	expense := &models.Expense{ID: id}
	if err := r.db.First(expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// GetByUserID retrieves a user's expenses with pagination, newest first
func (r *expenseRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	if err := r.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get expenses: %w", err)
	}

	return expenses, total, nil
}

// GetAllByUserID retrieves a user's full expense history, newest first. The
// analytics engine needs the whole snapshot, not a page.
func (r *expenseRepository) GetAllByUserID(userID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expense history: %w", err)
	}
	return expenses, nil
}

// GetWithFilters retrieves expenses with multiple filters
func (r *expenseRepository) GetWithFilters(filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	query := r.db.Model(&models.Expense{})

	if filters.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.StartDate != nil {
		query = query.Where("created_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("created_at <= ?", *filters.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered expenses: %w", err)
	}

	if err := query.Offset(filters.Offset).Limit(filters.Limit).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered expenses: %w", err)
	}

	return expenses, total, nil
}

// Update persists changes to an expense
func (r *expenseRepository) Update(expense *models.Expense) error {
	result := r.db.Save(expense)
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense
func (r *expenseRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Expense{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// CountByUserID counts a user's expenses
func (r *expenseRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var total int64
	if err := r.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return total, nil
}
