package dto

import (
	"time"

	"spender/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest represents the request to record a new expense
type CreateExpenseRequest struct {
	Amount   decimal.Decimal `json:"amount" validate:"non_negative_amount"`
	Category string          `json:"category" validate:"required,category_label"`
	Date     string          `json:"date" validate:"omitempty,max=50"`
	DateISO  string          `json:"date_iso" validate:"omitempty,datetime=2006-01-02"`
	Payment  string          `json:"payment" validate:"omitempty,max=50"`
	Note     string          `json:"note" validate:"omitempty,max=500"`
}

// ClassifyExpenseRequest represents the worth/waste classification of an expense
type ClassifyExpenseRequest struct {
	Type string `json:"type" validate:"required,expense_type"`
}

// ListExpensesRequest represents the query parameters for listing expenses
type ListExpensesRequest struct {
	Category  string `query:"category" validate:"omitempty,max=100"`
	Type      string `query:"type" validate:"omitempty,oneof=worth waste unclassified"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=200"`
}

// ExpenseResponse represents a single expense in API responses
type ExpenseResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Type      string          `json:"type"`
	Date      string          `json:"date,omitempty"`
	DateISO   string          `json:"date_iso,omitempty"`
	Payment   string          `json:"payment,omitempty"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ListExpensesResponse represents a page of expenses
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// ToExpenseResponse converts an expense model into its API representation
func ToExpenseResponse(expense *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        expense.ID,
		UserID:    expense.UserID,
		Amount:    expense.Amount,
		Category:  expense.Category,
		Type:      expense.Type,
		Date:      expense.DateText,
		DateISO:   expense.DateISO,
		Payment:   expense.Payment,
		Note:      expense.Note,
		CreatedAt: expense.CreatedAt,
		UpdatedAt: expense.UpdatedAt,
	}
}

// ToExpenseResponses converts a slice of expense models
func ToExpenseResponses(expenses []models.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, ToExpenseResponse(&expenses[i]))
	}
	return responses
}
