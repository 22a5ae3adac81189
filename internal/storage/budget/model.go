package budget

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no budget exists for the given id.
var ErrNotFound = errors.New("budget not found")

// Budget represents a budget record.
type Budget struct {
	ID        uuid.UUID       `db:"id"`
	Category  string          `db:"category"`
	Limit     decimal.Decimal `db:"monthly_limit"`
	Month     string          `db:"month"`
	CreatedAt time.Time       `db:"created_at"`
}

// BudgetCreate is the input for creating a new budget.
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

// IsEmpty reports whether the update sets no fields at all.
func (u *BudgetUpdate) IsEmpty() bool {
	return !u.Category.IsValue() && !u.Limit.IsValue() && !u.Month.IsValue()
}

// IBudgetTable defines the interface for budget storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IBudgetTable interface {
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	List(ctx context.Context) ([]*Budget, error)
	Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) (*Budget, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
