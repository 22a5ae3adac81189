package budget

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IBudgetTable = (*BudgetsTable)(nil)

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	db bob.DB
}

// NewBudgetsTable creates a BudgetsTable over the given database.
func NewBudgetsTable(db bob.DB) *BudgetsTable {
	return &BudgetsTable{db: db}
}

// Insert creates a new budget and returns the persisted row.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	q := psql.Insert(
		im.Into("budgets", "category", "monthly_limit", "month"),
		im.Values(psql.Arg(create.Category, create.Limit, create.Month)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, t.db, q, scan.StructMapper[*Budget]())
	if err != nil {
		return nil, err
	}
	return row, nil
}

// List returns every budget in storage order.
func (t *BudgetsTable) List(ctx context.Context) ([]*Budget, error) {
	q := psql.Select(sm.From("budgets"))

	return bob.All(ctx, t.db, q, scan.StructMapper[*Budget]())
}

// Update merges the set fields onto the budget with the given id and
// returns the updated row. The lookup and write run in one transaction
// with the row locked, so the merge is atomic at record granularity.
// Returns ErrNotFound if no budget has that id.
func (t *BudgetsTable) Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) (*Budget, error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	// Rollback is a no-op once the tx has committed.
	defer tx.Rollback(ctx)

	findQuery := psql.Select(
		sm.From("budgets"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	existing, err := bob.One(ctx, tx, findQuery, scan.StructMapper[*Budget]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if update.IsEmpty() {
		if err := tx.Commit(ctx); err != nil {
			return nil, err
		}
		return existing, nil
	}

	var setMods []bob.Mod[*dialect.UpdateQuery]
	if update.Category.IsValue() {
		setMods = append(setMods, um.SetCol("category").ToArg(update.Category.MustGet()))
	}
	if update.Limit.IsValue() {
		setMods = append(setMods, um.SetCol("monthly_limit").ToArg(update.Limit.MustGet()))
	}
	if update.Month.IsValue() {
		setMods = append(setMods, um.SetCol("month").ToArg(update.Month.MustGet()))
	}

	queryMods := append(setMods,
		um.Table("budgets"),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning("*"),
	)
	updated, err := bob.One(ctx, tx, psql.Update(queryMods...), scan.StructMapper[*Budget]())
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the budget with the given id.
// Returns ErrNotFound if no budget has that id.
func (t *BudgetsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("budgets"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, t.db, q)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
