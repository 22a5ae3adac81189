package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	Type        string
	Category    string
	Amount      decimal.Decimal
	Date        string
	Description string
	CreatedAt   time.Time
}

// TransactionCreate is the candidate record for creating a transaction.
type TransactionCreate struct {
	Type        string
	Category    string
	Amount      decimal.Decimal
	Date        string
	Description string
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Type:        row.Type,
		Category:    row.Category,
		Amount:      row.Amount,
		Date:        row.Date,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}
