package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	Category string `json:"category" required:"true" doc:"Spending category"`
	Limit    string `json:"limit" required:"true" doc:"Decimal spending limit"`
	Month    string `json:"month" required:"true" doc:"Month the limit applies to, e.g. 2024-03"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Status int
	Body   Budget
}

// budgetCreator is the interface for creating budgets.
type budgetCreator interface {
	CreateBudget(ctx context.Context, create service.BudgetCreate) (*service.Budget, error)
}

// CreateBudgetHandler handles POST /v1/budget.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/v1/budget",
		Summary:     "Create budget",
		Description: "Creates a new per-category monthly spending limit.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseCreateBudgetInput(input *CreateBudgetInput) (service.BudgetCreate, error) {
	limit, err := decimal.NewFromString(input.Body.Limit)
	if err != nil {
		return service.BudgetCreate{}, huma.NewError(http.StatusBadRequest, "invalid limit", err)
	}

	return service.BudgetCreate{
		Category: input.Body.Category,
		Limit:    limit,
		Month:    input.Body.Month,
	}, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createBudgetMs")
	}
	created, err := h.BudgetService.CreateBudget(ctx, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, mapServiceError("failed to create budget", err)
	}

	if logData != nil {
		logData.AddData("budgetID", created.ID.String())
	}

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body:   toAPIBudget(*created),
	}, nil
}
