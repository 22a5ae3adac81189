package budget

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
	storagebudget "github.com/carson-networks/finance-tracker/internal/storage/budget"
)

// Budget is the API response model for a budget.
// It is used only for responses, not for request bodies.
type Budget struct {
	ID        string `json:"id" doc:"Budget UUID"`
	Category  string `json:"category" doc:"Spending category"`
	Limit     string `json:"limit" doc:"Decimal spending limit, always non-negative"`
	Month     string `json:"month" doc:"Month the limit applies to, e.g. 2024-03"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func toAPIBudget(b service.Budget) Budget {
	return Budget{
		ID:        b.ID.String(),
		Category:  b.Category,
		Limit:     b.Limit.String(),
		Month:     b.Month,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func mapServiceError(message string, err error) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return huma.NewError(http.StatusBadRequest, vErr.Error())
	case errors.Is(err, storagebudget.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "Budget not found")
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
