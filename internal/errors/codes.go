package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// User error codes (USER_*)
const (
	UserInvalidID ErrorCode = "USER_001"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound        ErrorCode = "EXPENSE_001"
	ExpenseInvalidID       ErrorCode = "EXPENSE_002"
	ExpenseInvalidAmount   ErrorCode = "EXPENSE_003"
	ExpenseInvalidType     ErrorCode = "EXPENSE_004"
	ExpenseInvalidCategory ErrorCode = "EXPENSE_005"
	ExpenseMissingDate     ErrorCode = "EXPENSE_006"
)

// Insight error codes (INSIGHT_*)
const (
	InsightGenerationFailed ErrorCode = "INSIGHT_001"
)

// Achievement error codes (ACHIEVEMENT_*)
const (
	AchievementUnlockFailed ErrorCode = "ACHIEVEMENT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// User errors
	UserInvalidID: "Invalid user ID format",

	// Expense errors
	ExpenseNotFound:        "Expense not found",
	ExpenseInvalidID:       "Invalid expense ID format",
	ExpenseInvalidAmount:   "Expense amount must be a non-negative number",
	ExpenseInvalidType:     "Expense type must be worth or waste",
	ExpenseInvalidCategory: "Expense category is missing or too long",
	ExpenseMissingDate:     "Expense requires a date or an ISO date",

	// Insight errors
	InsightGenerationFailed: "Unable to generate insights for this user",

	// Achievement errors
	AchievementUnlockFailed: "Unable to record unlocked achievements",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
