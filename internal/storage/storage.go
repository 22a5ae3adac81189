package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Storage is the durable store handle shared by every operation. It is
// opened once at startup and closed on shutdown; callers receive it as
// an explicit dependency, never through package state.
type Storage struct {
	DB           *sql.DB
	Transactions transaction.ITransactionTable
	Budgets      budget.IBudgetTable
}

// NewStorage opens the database connection and wires the entity tables.
func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, err
	}

	bobDB := bob.NewDB(db)

	return &Storage{
		DB:           db,
		Transactions: transaction.NewTransactionsTable(bobDB),
		Budgets:      budget.NewBudgetsTable(bobDB),
	}, nil
}

// Ping checks that the store is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the database connection.
func (s *Storage) Close() error {
	return s.DB.Close()
}
