package transaction

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Type        string `json:"type" doc:"Transaction type: income or expense"`
	Category    string `json:"category" doc:"Spending or income category"`
	Amount      string `json:"amount" doc:"Decimal amount, always non-negative"`
	Date        string `json:"date" doc:"Calendar date as sent by the client"`
	Description string `json:"description" doc:"Free-form description"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func toAPITransaction(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Type:        tx.Type,
		Category:    tx.Category,
		Amount:      tx.Amount.String(),
		Date:        tx.Date,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}

func mapServiceError(message string, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return huma.NewError(http.StatusBadRequest, vErr.Error())
	}
	return huma.NewError(http.StatusInternalServerError, message, err)
}
