package validation

import (
	"reflect"
	"strings"

	"spender/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("expense_type", validateExpenseType)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("category_label", validateCategoryLabel)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateExpenseType validates that a classification is worth or waste
func validateExpenseType(fl validator.FieldLevel) bool {
	expenseType := fl.Field().String()
	return expenseType == models.ExpenseTypeWorth || expenseType == models.ExpenseTypeWaste
}

// validateNonNegativeAmount validates that an amount is zero or positive.
// Handles decimal.Decimal fields as well as numeric kinds.
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	if amount, ok := fl.Field().Interface().(decimal.Decimal); ok {
		return !amount.IsNegative()
	}

	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() >= 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() >= 0
	default:
		return false
	}
}

// validateCategoryLabel validates the free-form category label: non-blank and
// within the stored column width
func validateCategoryLabel(fl validator.FieldLevel) bool {
	category := strings.TrimSpace(fl.Field().String())
	if category == "" {
		return false
	}
	return len(category) <= models.MaxCategoryLength
}
