package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ExpenseTypeWorth = "worth"
	ExpenseTypeWaste = "waste"

	// ExpenseTypeUnclassified is the state of a freshly logged expense, before
	// the user has swiped it into worth or waste.
	ExpenseTypeUnclassified = ""

	// MaxCategoryLength bounds the free-form category label.
	MaxCategoryLength = 100
)

var (
	ErrInvalidExpenseType = errors.New("invalid expense type")
	ErrNegativeAmount     = errors.New("expense amount must not be negative")
	ErrCategoryRequired   = errors.New("expense category is required")
	ErrCategoryTooLong    = errors.New("expense category too long")
	ErrMissingDate        = errors.New("expense requires a date or an ISO date")
)

// Expense is a single logged spend. The date may arrive in two shapes: DateISO
// (RFC 3339) or DateText, the short "Mon D" form the mobile client produces
// (e.g. "Nov 23", no year). CreatedAt is an ordering fallback only; window
// membership is always derived from the date fields.
type Expense struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category  string          `gorm:"type:varchar(100);not null" json:"category"`
	Type      string          `gorm:"type:varchar(10);not null;default:''" json:"type"`
	DateText  string          `gorm:"type:varchar(20)" json:"date,omitempty"`
	DateISO   string          `gorm:"type:varchar(40)" json:"date_iso,omitempty"`
	Payment   string          `gorm:"type:varchar(20)" json:"payment,omitempty"`
	Note      string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

// BeforeUpdate hook for Expense
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if e.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidExpenseType(e.Type) {
		return ErrInvalidExpenseType
	}

	if e.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	category := strings.TrimSpace(e.Category)
	if category == "" {
		return ErrCategoryRequired
	}
	if len(category) > MaxCategoryLength {
		return ErrCategoryTooLong
	}

	if e.DateText == "" && e.DateISO == "" {
		return ErrMissingDate
	}

	return nil
}

// IsClassified returns true once the user has tagged the expense
func (e *Expense) IsClassified() bool {
	return e.Type == ExpenseTypeWorth || e.Type == ExpenseTypeWaste
}

// IsWaste returns true for waste-tagged expenses
func (e *Expense) IsWaste() bool {
	return e.Type == ExpenseTypeWaste
}

// IsWorth returns true for worth-tagged expenses
func (e *Expense) IsWorth() bool {
	return e.Type == ExpenseTypeWorth
}

// Classify tags the expense as worth or waste
func (e *Expense) Classify(expenseType string) error {
	if expenseType != ExpenseTypeWorth && expenseType != ExpenseTypeWaste {
		return ErrInvalidExpenseType
	}
	e.Type = expenseType
	return nil
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}

// IsValidExpenseType checks if the expense type is valid
func IsValidExpenseType(expenseType string) bool {
	switch expenseType {
	case ExpenseTypeWorth, ExpenseTypeWaste, ExpenseTypeUnclassified:
		return true
	default:
		return false
	}
}
