package budget

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateBudgetBody is the request body for updating a budget. All fields
// are optional; absent fields are left unchanged on the stored record.
type UpdateBudgetBody struct {
	Category *string `json:"category,omitempty" doc:"New spending category"`
	Limit    *string `json:"limit,omitempty" doc:"New decimal spending limit"`
	Month    *string `json:"month,omitempty" doc:"New month, e.g. 2024-03"`
}

// UpdateBudgetInput is the Huma input for updating a budget.
type UpdateBudgetInput struct {
	ID   string `path:"id" doc:"Budget UUID"`
	Body UpdateBudgetBody
}

// UpdateBudgetOutput is the Huma output for updating a budget.
type UpdateBudgetOutput struct {
	Body Budget
}

// budgetUpdater is the interface for updating budgets.
type budgetUpdater interface {
	UpdateBudget(ctx context.Context, id uuid.UUID, update service.BudgetUpdate) (*service.Budget, error)
}

// UpdateBudgetHandler handles PUT /v1/budget/{id}.
type UpdateBudgetHandler struct {
	BudgetService budgetUpdater
}

// NewUpdateBudgetHandler creates a new UpdateBudgetHandler.
func NewUpdateBudgetHandler(svc budgetUpdater) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc}
}

// Register registers the update budget endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budget/{id}",
		Summary:     "Update budget",
		Description: "Merges the provided fields onto an existing budget.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseUpdateBudgetInput(input *UpdateBudgetInput) (uuid.UUID, service.BudgetUpdate, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return uuid.Nil, service.BudgetUpdate{}, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}

	var update service.BudgetUpdate
	if input.Body.Category != nil {
		update.Category = omit.From(*input.Body.Category)
	}
	if input.Body.Limit != nil {
		limit, err := decimal.NewFromString(*input.Body.Limit)
		if err != nil {
			return uuid.Nil, service.BudgetUpdate{}, huma.NewError(http.StatusBadRequest, "invalid limit", err)
		}
		update.Limit = omit.From(limit)
	}
	if input.Body.Month != nil {
		update.Month = omit.From(*input.Body.Month)
	}

	return id, update, nil
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	id, update, err := parseUpdateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateBudgetMs")
	}
	updated, err := h.BudgetService.UpdateBudget(ctx, id, update)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, mapServiceError("failed to update budget", err)
	}

	if logData != nil {
		logData.AddData("budgetID", id.String())
	}

	return &UpdateBudgetOutput{Body: toAPIBudget(*updated)}, nil
}
