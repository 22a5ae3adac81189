package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	storage *storage.Storage
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store}
}

// ListBudgets returns every budget. No ordering is guaranteed.
func (s *BudgetService) ListBudgets(ctx context.Context) ([]Budget, error) {
	rows, err := s.storage.Budgets.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Budget, len(rows))
	for i, row := range rows {
		converted[i] = budgetFromStorage(row)
	}
	return converted, nil
}

// CreateBudget validates the candidate and persists it. Multiple budgets
// for the same category and month may coexist; no uniqueness is enforced.
func (s *BudgetService) CreateBudget(ctx context.Context, create BudgetCreate) (*Budget, error) {
	if err := validateRequired("category", create.Category); err != nil {
		return nil, err
	}
	if err := validateRequired("month", create.Month); err != nil {
		return nil, err
	}
	if err := validateNonNegative("limit", create.Limit); err != nil {
		return nil, err
	}

	row, err := s.storage.Budgets.Insert(ctx, &budget.BudgetCreate{
		Category: create.Category,
		Limit:    create.Limit,
		Month:    create.Month,
	})
	if err != nil {
		return nil, err
	}

	converted := budgetFromStorage(row)
	return &converted, nil
}

// UpdateBudget merges the set fields onto the budget with the given id
// and returns the updated record. Set fields go through the same
// validation as CreateBudget; unset fields are left unchanged. Returns
// budget.ErrNotFound when no budget has that id; nothing is ever
// created on update of a missing id.
func (s *BudgetService) UpdateBudget(ctx context.Context, id uuid.UUID, update BudgetUpdate) (*Budget, error) {
	if update.Category.IsValue() {
		if err := validateRequired("category", update.Category.MustGet()); err != nil {
			return nil, err
		}
	}
	if update.Month.IsValue() {
		if err := validateRequired("month", update.Month.MustGet()); err != nil {
			return nil, err
		}
	}
	if update.Limit.IsValue() {
		if err := validateNonNegative("limit", update.Limit.MustGet()); err != nil {
			return nil, err
		}
	}

	row, err := s.storage.Budgets.Update(ctx, id, &budget.BudgetUpdate{
		Category: update.Category,
		Limit:    update.Limit,
		Month:    update.Month,
	})
	if err != nil {
		return nil, err
	}

	converted := budgetFromStorage(row)
	return &converted, nil
}

// DeleteBudget removes the budget with the given id. Returns
// budget.ErrNotFound when no budget has that id.
func (s *BudgetService) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	return s.storage.Budgets.Delete(ctx, id)
}
