package handlers

import (
	"errors"
	"net/http"
	"time"

	"spender/internal/dto"
	apierrors "spender/internal/errors"
	"spender/internal/models"
	"spender/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// CreateExpense records a new expense for a user
//
// Method: POST /api/v1/users/:userId/expenses
//
// Request body:
//   - amount: Decimal amount (zero or positive)
//   - category: String label (required)
//   - date: String short textual date, e.g. "Nov 23" (optional)
//   - date_iso: String YYYY-MM-DD (optional; one of date/date_iso required)
//   - payment: String payment method (optional)
//   - note: String free text (optional)
//
// Success Response: 201 Created with the stored expense
//
// Error Responses:
//   - 400: Invalid userId or request body
//   - 422: Missing date, invalid category
//   - 500: Internal server error
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return SendError(c, apierrors.UserInvalidID, apierrors.WithDetails(err.Error()))
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	expense, err := h.expenseService.CreateExpense(c.Request().Context(), userID, &req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.ToExpenseResponse(expense),
	})
}

// ListExpenses retrieves a user's expenses, newest first
//
// Method: GET /api/v1/users/:userId/expenses
//
// Query parameters:
//   - category: String category filter (optional)
//   - type: "worth", "waste" or "unclassified" (optional)
//   - start_date, end_date: YYYY-MM-DD creation-time range (optional)
//   - offset, limit: pagination (optional)
//
// Success Response: 200 OK with expenses, total and pagination echo
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return SendError(c, apierrors.UserInvalidID, apierrors.WithDetails(err.Error()))
	}

	var req dto.ListExpensesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid query parameters"))
	}

	if err := c.Validate(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	filters := models.ExpenseFilters{
		Category: req.Category,
		Offset:   req.Offset,
		Limit:    req.Limit,
	}

	switch req.Type {
	case "":
	case "unclassified":
		unclassified := models.ExpenseTypeUnclassified
		filters.Type = &unclassified
	default:
		expenseType := req.Type
		filters.Type = &expenseType
	}

	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("invalid start_date format, expected YYYY-MM-DD"))
		}
		filters.StartDate = &parsed
	}

	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("invalid end_date format, expected YYYY-MM-DD"))
		}
		end := parsed.Add(24*time.Hour - time.Nanosecond)
		filters.EndDate = &end
	}

	expenses, total, err := h.expenseService.ListExpenses(userID, filters)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = services.DefaultListLimit
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ListExpensesResponse{
			Expenses: dto.ToExpenseResponses(expenses),
			Total:    total,
			Limit:    limit,
			Offset:   filters.Offset,
		},
	})
}

// ClassifyExpense tags an expense as worth or waste
//
// Method: PATCH /api/v1/expenses/:id/classification
//
// Request body:
//   - type: "worth" or "waste"
//
// Success Response: 200 OK with the updated expense
//
// Error Responses:
//   - 400: Invalid expense id
//   - 404: Expense not found
//   - 422: Invalid classification type
//   - 500: Internal server error
func (h *ExpenseHandler) ClassifyExpense(c echo.Context) error {
	expenseID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID, apierrors.WithDetails(err.Error()))
	}

	var req dto.ClassifyExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ExpenseInvalidType)
	}

	expense, err := h.expenseService.ClassifyExpense(c.Request().Context(), expenseID, req.Type)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToExpenseResponse(expense),
	})
}

// DeleteExpense removes an expense
//
// Method: DELETE /api/v1/expenses/:id
//
// Success Response: 200 OK with a confirmation message
//
// Error Responses:
//   - 400: Invalid expense id
//   - 404: Expense not found
//   - 500: Internal server error
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	expenseID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID, apierrors.WithDetails(err.Error()))
	}

	if err := h.expenseService.DeleteExpense(c.Request().Context(), expenseID); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "expense deleted",
	})
}

func (h *ExpenseHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		switch first.Tag() {
		case "non_negative_amount":
			return SendError(c, apierrors.ExpenseInvalidAmount)
		case "category_label":
			return SendError(c, apierrors.ExpenseInvalidCategory)
		case "expense_type":
			return SendError(c, apierrors.ExpenseInvalidType)
		case "datetime":
			return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(first.Field()+" must be YYYY-MM-DD"))
		}
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("validation failed on "+first.Field()))
	}
	return SendError(c, apierrors.ValidationGeneral)
}

func (h *ExpenseHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidUserID):
		return SendError(c, apierrors.UserInvalidID)
	case errors.Is(err, services.ErrInvalidExpenseID):
		return SendError(c, apierrors.ExpenseInvalidID)
	case errors.Is(err, services.ErrExpenseNotFound):
		return SendError(c, apierrors.ExpenseNotFound)
	case errors.Is(err, models.ErrInvalidExpenseType):
		return SendError(c, apierrors.ExpenseInvalidType)
	case errors.Is(err, models.ErrNegativeAmount):
		return SendError(c, apierrors.ExpenseInvalidAmount)
	case errors.Is(err, models.ErrCategoryRequired), errors.Is(err, models.ErrCategoryTooLong):
		return SendError(c, apierrors.ExpenseInvalidCategory)
	case errors.Is(err, models.ErrMissingDate):
		return SendError(c, apierrors.ExpenseMissingDate)
	}
	return SendSystemError(c, err)
}
