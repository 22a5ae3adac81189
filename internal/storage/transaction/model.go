package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction type tokens as stored in the type column.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Types lists the allowed transaction type tokens, in order.
var Types = []string{TypeIncome, TypeExpense}

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	Type        string          `db:"type"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	Date        string          `db:"date"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Type        string
	Category    string
	Amount      decimal.Decimal
	Date        string
	Description string
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context) ([]*Transaction, error)
}
