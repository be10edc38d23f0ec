package models

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseFilters captures the optional query parameters for listing a user's
// expenses. Type is a pointer so the zero value means "any type" while an
// explicit empty string selects unclassified records.
type ExpenseFilters struct {
	UserID    uuid.UUID
	Category  string
	Type      *string
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}
