package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"toolbox/pkg/domain"
	"toolbox/pkg/storage"
)

const (
	calculationsTable = "calculations"
)

func (p *PgSQL) StoreCalculations(ctx context.Context,
	calculations ...domain.Calculation) ([]domain.Calculation, error) {
	if len(calculations) == 0 {
		return nil, nil
	}

	var result []PgCalculation
	if err := p.Builder.Insert(calculationsTable).
		Rows(domainCalculationsToPg(calculations)).
		Returning(&PgCalculation{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store calculations into pg: %w", err)
	}

	return pgCalculationsToDomain(result), nil
}

// UpdateCalculationByID applies the non-zero fields of updates to a live
// calculation. updated_at is always set.
func (p *PgSQL) UpdateCalculationByID(ctx context.Context,
	id domain.CalculationID,
	updates storage.CalculationUpdates) (*domain.Calculation, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.Result != nil {
		rec["result"] = []byte(updates.Result)
	}
	if updates.IncrementAttempts {
		rec["attempts"] = goqu.L("attempts + 1")
	}
	setNullable(rec, "error_code", updates.ErrorCode)
	setNullable(rec, "last_error", updates.LastError)

	var row PgCalculation
	found, err := p.Builder.Update(calculationsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgCalculation{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update calculation in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	c := row.ToDomain()

	return &c, nil
}

// setNullable sets col to *v, or NULL when v points to an empty string.
func setNullable(rec goqu.Record, col string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		rec[col] = goqu.L("NULL")

		return
	}
	rec[col] = *v
}

// DeleteCalculation performs a soft delete by setting deleted_at.
func (p *PgSQL) DeleteCalculation(ctx context.Context,
	userID domain.UserID,
	id domain.CalculationID) (*domain.Calculation, error) {
	var row PgCalculation
	found, err := p.Builder.Update(calculationsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgCalculation{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete calculation in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	c := row.ToDomain()

	return &c, nil
}

// UserCalculations returns a page of the user's calculations ordered by
// created_at DESC, id DESC.
func (p *PgSQL) UserCalculations(ctx context.Context,
	userID domain.UserID,
	status domain.CalculationStatus,
	cursor time.Time,
	limit uint) (storage.UserCalculations, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// one extra row tells whether there is a next page
	ds := p.Builder.From(calculationsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgCalculation
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserCalculations{}, fmt.Errorf("could not fetch user calculations from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	return storage.UserCalculations{
		Calculations: pgCalculationsToDomain(rows),
		NextCursor:   nextCursor,
	}, nil
}

// CalculationByID returns a live calculation owned by userID.
func (p *PgSQL) CalculationByID(ctx context.Context,
	userID domain.UserID,
	id domain.CalculationID) (*domain.Calculation, error) {
	return p.selectOne(ctx, p.Builder.From(calculationsTable).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	))
}

// PendingCalculation returns a live pending calculation regardless of owner.
// Within a transaction the row is locked FOR UPDATE.
func (p *PgSQL) PendingCalculation(ctx context.Context, id domain.CalculationID) (*domain.Calculation, error) {
	ds := p.Builder.From(calculationsTable).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(domain.CalculationStatusPending)),
		goqu.I("deleted_at").IsNull(),
	)
	if p.inTx() {
		ds = ds.ForUpdate(exp.Wait)
	}

	return p.selectOne(ctx, ds)
}

func (p *PgSQL) selectOne(ctx context.Context, ds *goqu.SelectDataset) (*domain.Calculation, error) {
	var row PgCalculation
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch calculation from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	c := row.ToDomain()

	return &c, nil
}
