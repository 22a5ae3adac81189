package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/budget"
)

// Budget represents a budget in the service layer.
type Budget struct {
	ID        uuid.UUID
	Category  string
	Limit     decimal.Decimal
	Month     string
	CreatedAt time.Time
}

// BudgetCreate is the candidate record for creating a budget.
type BudgetCreate struct {
	Category string
	Limit    decimal.Decimal
	Month    string
}

// BudgetUpdate is a partial field set to merge onto an existing budget.
// Unset fields are left unchanged.
type BudgetUpdate struct {
	Category omit.Val[string]
	Limit    omit.Val[decimal.Decimal]
	Month    omit.Val[string]
}

func budgetFromStorage(row *budget.Budget) Budget {
	return Budget{
		ID:        row.ID,
		Category:  row.Category,
		Limit:     row.Limit,
		Month:     row.Month,
		CreatedAt: row.CreatedAt,
	}
}
