package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context) ([]*transaction.Transaction, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

func newTransactionTestService(t *testing.T) (*TransactionService, *mockTransactionTable) {
	t.Helper()
	mockTable := new(mockTransactionTable)
	store := &storage.Storage{Transactions: mockTable}
	svc := NewTransactionService(store)
	return svc, mockTable
}

// -- CreateTransaction tests --

func TestCreateTransaction_Success(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	id := uuid.Must(uuid.NewV4())
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("42.5")

	mockTable.On("Insert", mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.Type == transaction.TypeExpense &&
			c.Category == "food" &&
			c.Amount.Equal(amount) &&
			c.Date == "2024-03-01" &&
			c.Description == "lunch"
	})).Return(&transaction.Transaction{
		ID:          id,
		Type:        transaction.TypeExpense,
		Category:    "food",
		Amount:      amount,
		Date:        "2024-03-01",
		Description: "lunch",
		CreatedAt:   createdAt,
	}, nil)

	created, err := svc.CreateTransaction(context.Background(), TransactionCreate{
		Type:        "expense",
		Category:    "food",
		Amount:      amount,
		Date:        "2024-03-01",
		Description: "lunch",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.Equal(t, "lunch", created.Description)
	mockTable.AssertExpectations(t)
}

func TestCreateTransaction_InvalidType(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	created, err := svc.CreateTransaction(context.Background(), TransactionCreate{
		Type:     "transfer",
		Category: "food",
		Amount:   decimal.RequireFromString("10"),
		Date:     "2024-03-01",
	})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "type", vErr.Field)
	assert.Nil(t, created)
	mockTable.AssertNotCalled(t, "Insert")
}

func TestCreateTransaction_MissingCategory(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	_, err := svc.CreateTransaction(context.Background(), TransactionCreate{
		Type:   "income",
		Amount: decimal.RequireFromString("10"),
		Date:   "2024-03-01",
	})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "category", vErr.Field)
	mockTable.AssertNotCalled(t, "Insert")
}

func TestCreateTransaction_MissingDate(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	_, err := svc.CreateTransaction(context.Background(), TransactionCreate{
		Type:     "income",
		Category: "salary",
		Amount:   decimal.RequireFromString("10"),
	})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date", vErr.Field)
	mockTable.AssertNotCalled(t, "Insert")
}

func TestCreateTransaction_NegativeAmount(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	_, err := svc.CreateTransaction(context.Background(), TransactionCreate{
		Type:     "expense",
		Category: "food",
		Amount:   decimal.RequireFromString("-0.01"),
		Date:     "2024-03-01",
	})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "amount", vErr.Field)
	mockTable.AssertNotCalled(t, "Insert")
}

func TestCreateTransaction_ZeroAmountAllowed(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	mockTable.On("Insert", mock.Anything, mock.Anything).Return(&transaction.Transaction{
		ID:   uuid.Must(uuid.NewV4()),
		Type: transaction.TypeIncome,
	}, nil)

	_, err := svc.CreateTransaction(context.Background(), TransactionCreate{
		Type:     "income",
		Category: "misc",
		Amount:   decimal.Zero,
		Date:     "2024-03-01",
	})

	assert.NoError(t, err)
	mockTable.AssertExpectations(t)
}

func TestCreateTransaction_StorageError(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	mockTable.On("Insert", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	created, err := svc.CreateTransaction(context.Background(), TransactionCreate{
		Type:     "expense",
		Category: "food",
		Amount:   decimal.RequireFromString("10"),
		Date:     "2024-03-01",
	})

	assert.Error(t, err)
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr), "storage failures are not validation failures")
	assert.Nil(t, created)
}

// -- ListTransactions tests --

func TestListTransactions_Success(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	createdAt := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	rows := []*transaction.Transaction{
		{
			ID:        uuid.Must(uuid.NewV4()),
			Type:      transaction.TypeExpense,
			Category:  "food",
			Amount:    decimal.RequireFromString("9.99"),
			Date:      "2024-03-05",
			CreatedAt: createdAt,
		},
		{
			ID:        uuid.Must(uuid.NewV4()),
			Type:      transaction.TypeIncome,
			Category:  "salary",
			Amount:    decimal.RequireFromString("2500"),
			Date:      "2024-03-01",
			CreatedAt: createdAt,
		},
	}
	mockTable.On("List", mock.Anything).Return(rows, nil)

	txs, err := svc.ListTransactions(context.Background())

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, rows[0].ID, txs[0].ID)
	assert.Equal(t, "2024-03-05", txs[0].Date)
	assert.True(t, rows[0].Amount.Equal(txs[0].Amount))
	assert.Equal(t, rows[0].CreatedAt, txs[0].CreatedAt)
}

func TestListTransactions_Empty(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	mockTable.On("List", mock.Anything).Return([]*transaction.Transaction{}, nil)

	txs, err := svc.ListTransactions(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, txs)
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	mockTable.On("List", mock.Anything).Return(nil, errors.New("database unavailable"))

	txs, err := svc.ListTransactions(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, txs)
}
