package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns every transaction, ordered by date descending
// with creation time descending as a tie-break.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted, nil
}

// CreateTransaction validates the candidate and persists it, returning
// the stored record with its assigned id and creation time. Validation
// runs in full before any write: a ValidationError means nothing was
// persisted.
func (s *TransactionService) CreateTransaction(ctx context.Context, create TransactionCreate) (*Transaction, error) {
	if err := validateOneOf("type", create.Type, transaction.Types); err != nil {
		return nil, err
	}
	if err := validateRequired("category", create.Category); err != nil {
		return nil, err
	}
	if err := validateRequired("date", create.Date); err != nil {
		return nil, err
	}
	if err := validateNonNegative("amount", create.Amount); err != nil {
		return nil, err
	}

	row, err := s.storage.Transactions.Insert(ctx, &transaction.TransactionCreate{
		Type:        create.Type,
		Category:    create.Category,
		Amount:      create.Amount,
		Date:        create.Date,
		Description: create.Description,
	})
	if err != nil {
		return nil, err
	}

	converted := transactionFromStorage(row)
	return &converted, nil
}
