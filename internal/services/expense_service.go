package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"spender/internal/dto"
	"spender/internal/models"
	"spender/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

var (
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidExpenseID = errors.New("invalid expense ID")
	ErrExpenseNotFound  = errors.New("expense not found")
)

// ExpenseService handles expense CRUD and classification
type ExpenseService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repositories.ExpenseRepositoryInterface, metrics MetricsRecorderInterface, logger *slog.Logger) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateExpense records a new, unclassified expense for a user
func (s *ExpenseService) CreateExpense(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	expense := &models.Expense{
		UserID:   userID,
		Amount:   req.Amount,
		Category: req.Category,
		Type:     models.ExpenseTypeUnclassified,
		DateText: req.Date,
		DateISO:  req.DateISO,
		Payment:  req.Payment,
		Note:     req.Note,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.metrics.IncrementCounter("expense_created", map[string]string{"category": expense.Category})
	s.metrics.RecordGauge("expense_amount", expense.Amount.InexactFloat64(), nil)
	s.logger.InfoContext(ctx, "expense created",
		slog.String("expense_id", expense.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("category", expense.Category),
		slog.String("amount", expense.Amount.String()),
	)

	return expense, nil
}

// GetExpense retrieves a single expense by id
func (s *ExpenseService) GetExpense(expenseID uuid.UUID) (*models.Expense, error) {
	if expenseID == uuid.Nil {
		return nil, ErrInvalidExpenseID
	}

	expense, err := s.expenseRepo.GetByID(expenseID)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// ListExpenses retrieves a user's expenses with filters and pagination,
// newest first
func (s *ExpenseService) ListExpenses(userID uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	filters.UserID = userID
	if filters.Limit <= 0 {
		filters.Limit = DefaultListLimit
	}
	if filters.Limit > MaxListLimit {
		filters.Limit = MaxListLimit
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	expenses, total, err := s.expenseRepo.GetWithFilters(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, total, nil
}

// ClassifyExpense tags an expense as worth or waste. Reclassifying an already
// classified expense is allowed; the swipe UI lets users change their mind.
func (s *ExpenseService) ClassifyExpense(ctx context.Context, expenseID uuid.UUID, expenseType string) (*models.Expense, error) {
	if expenseID == uuid.Nil {
		return nil, ErrInvalidExpenseID
	}

	expense, err := s.expenseRepo.GetByID(expenseID)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if err := expense.Classify(expenseType); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Update(expense); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to classify expense: %w", err)
	}

	s.metrics.IncrementCounter("expense_classified", map[string]string{"type": expenseType})
	s.logger.InfoContext(ctx, "expense classified",
		slog.String("expense_id", expense.ID.String()),
		slog.String("user_id", expense.UserID.String()),
		slog.String("type", expenseType),
	)

	return expense, nil
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID uuid.UUID) error {
	if expenseID == uuid.Nil {
		return ErrInvalidExpenseID
	}

	if err := s.expenseRepo.Delete(expenseID); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.metrics.IncrementCounter("expense_deleted", nil)
	s.logger.InfoContext(ctx, "expense deleted",
		slog.String("expense_id", expenseID.String()),
	)

	return nil
}
