package transaction

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable over the given executor.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// Insert creates a new transaction and returns the persisted row.
// id and created_at come from the database.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into("transactions", "type", "category", "amount", "date", "description"),
		im.Values(psql.Arg(create.Type, create.Category, create.Amount, create.Date, create.Description)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, err
	}
	return row, nil
}

// List returns every transaction ordered by date descending, then
// created_at descending for equal dates.
func (t *TransactionsTable) List(ctx context.Context) ([]*Transaction, error) {
	q := psql.Select(
		sm.From("transactions"),
		sm.OrderBy("date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)

	return bob.All(ctx, t.exec, q, scan.StructMapper[*Transaction]())
}
