package repositories

import (
	"testing"
	"time"

	"spender/internal/database"
	"spender/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestExpenseRepository(t *testing.T) {
	suite.Run(t, new(ExpenseRepositorySuite))
}

type ExpenseRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   ExpenseRepositoryInterface
	userID uuid.UUID
}

func (s *ExpenseRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewExpenseRepository(s.db.DB)
	s.userID = uuid.New()
}

func (s *ExpenseRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ExpenseRepositorySuite) newExpense(category string, amount float64) *models.Expense {
	return &models.Expense{
		UserID:   s.userID,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		DateISO:  "2025-11-24",
	}
}

func (s *ExpenseRepositorySuite) TestExpenseRepository_Create() {
	expense := s.newExpense("Coffee", 4.50)

	err := s.repo.Create(expense)
	s.NoError(err)
	s.NotEqual(uuid.Nil, expense.ID)
	s.NotZero(expense.CreatedAt)
	s.Equal(models.ExpenseTypeUnclassified, expense.Type)
}

func (s *ExpenseRepositorySuite) TestExpenseRepository_Create_ValidationFails() {
	expense := s.newExpense("", 4.50)

	err := s.repo.Create(expense)
	s.Error(err)
	s.ErrorIs(err, models.ErrCategoryRequired)
}

func (s *ExpenseRepositorySuite) TestExpenseRepository_GetByID() {
	expense := s.newExpense("Food", 25)
	s.NoError(s.repo.Create(expense))

	found, err := s.repo.GetByID(expense.ID)
	s.NoError(err)
	s.Equal(expense.ID, found.ID)
	s.Equal("Food", found.Category)
	s.True(found.Amount.Equal(decimal.NewFromInt(25)))

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestExpenseRepository_GetByUserID() {
	for i := 0; i < 5; i++ {
		expense := s.newExpense("Food", float64(10+i))
		expense.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		s.NoError(s.repo.Create(expense))
	}
	// Another user's expense should not appear
	other := s.newExpense("Food", 99)
	other.UserID = uuid.New()
	s.NoError(s.repo.Create(other))

	expenses, total, err := s.repo.GetByUserID(s.userID, 0, 3)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(expenses, 3)
	// Newest first
	s.True(expenses[0].CreatedAt.After(expenses[1].CreatedAt))

	expenses, total, err = s.repo.GetByUserID(s.userID, 3, 3)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(expenses, 2)
}

func (s *ExpenseRepositorySuite) TestExpenseRepository_GetAllByUserID() {
	for i := 0; i < 4; i++ {
		s.NoError(s.repo.Create(s.newExpense("Food", float64(10+i))))
	}

	expenses, err := s.repo.GetAllByUserID(s.userID)
	s.NoError(err)
	s.Len(expenses, 4)

	expenses, err = s.repo.GetAllByUserID(uuid.New())
	s.NoError(err)
	s.Empty(expenses)
}

func (s *ExpenseRepositorySuite) TestExpenseRepository_GetWithFilters() {
	coffee := s.newExpense("Coffee", 5)
	s.NoError(coffee.Classify(models.ExpenseTypeWaste))
	s.NoError(s.repo.Create(coffee))

	food := s.newExpense("Food", 30)
	s.NoError(food.Classify(models.ExpenseTypeWorth))
	s.NoError(s.repo.Create(food))

	untagged := s.newExpense("Games", 20)
	s.NoError(s.repo.Create(untagged))

	// Category filter
	expenses, total, err := s.repo.GetWithFilters(models.ExpenseFilters{
		UserID: s.userID, Category: "Coffee", Limit: 10,
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Coffee", expenses[0].Category)

	// Type filter
	waste := models.ExpenseTypeWaste
	expenses, total, err = s.repo.GetWithFilters(models.ExpenseFilters{
		UserID: s.userID, Type: &waste, Limit: 10,
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(coffee.ID, expenses[0].ID)

	// Explicit unclassified filter
	unclassified := models.ExpenseTypeUnclassified
	expenses, total, err = s.repo.GetWithFilters(models.ExpenseFilters{
		UserID: s.userID, Type: &unclassified, Limit: 10,
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(untagged.ID, expenses[0].ID)

	// No type filter returns everything
	_, total, err = s.repo.GetWithFilters(models.ExpenseFilters{
		UserID: s.userID, Limit: 10,
	})
	s.NoError(err)
	s.Equal(int64(3), total)
}

func (s *ExpenseRepositorySuite) TestExpenseRepository_GetWithFilters_DateRange() {
	old := s.newExpense("Food", 10)
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	s.NoError(s.repo.Create(old))

	recent := s.newExpense("Food", 20)
	s.NoError(s.repo.Create(recent))

	start := time.Now().Add(-time.Hour)
	expenses, total, err := s.repo.GetWithFilters(models.ExpenseFilters{
		UserID: s.userID, StartDate: &start, Limit: 10,
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(recent.ID, expenses[0].ID)
}

func (s *ExpenseRepositorySuite) TestExpenseRepository_Update() {
	expense := s.newExpense("Coffee", 5)
	s.NoError(s.repo.Create(expense))

	s.NoError(expense.Classify(models.ExpenseTypeWaste))
	s.NoError(s.repo.Update(expense))

	found, err := s.repo.GetByID(expense.ID)
	s.NoError(err)
	s.Equal(models.ExpenseTypeWaste, found.Type)
	s.True(found.IsClassified())
}

func (s *ExpenseRepositorySuite) TestExpenseRepository_Delete() {
	expense := s.newExpense("Coffee", 5)
	s.NoError(s.repo.Create(expense))

	s.NoError(s.repo.Delete(expense.ID))

	_, err := s.repo.GetByID(expense.ID)
	s.ErrorIs(err, ErrExpenseNotFound)

	err = s.repo.Delete(uuid.New())
	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestExpenseRepository_CountByUserID() {
	for i := 0; i < 3; i++ {
		s.NoError(s.repo.Create(s.newExpense("Food", 10)))
	}

	total, err := s.repo.CountByUserID(s.userID)
	s.NoError(err)
	s.Equal(int64(3), total)

	total, err = s.repo.CountByUserID(uuid.New())
	s.NoError(err)
	s.Equal(int64(0), total)
}
