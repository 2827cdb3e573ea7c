package postgres

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"toolbox/pkg/domain"
)

// PgCalculation is the row layout of the calculations table.
type PgCalculation struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Operation string          `db:"operation"`
	Input     json.RawMessage `db:"input"`
	Status    string          `db:"status"`
	Result    json.RawMessage `db:"result"    goqu:"skipinsert"`

	ErrorCode sql.NullString `db:"error_code" goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`
	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgCalculation) ToDomain() domain.Calculation {
	return domain.Calculation{
		ID:        domain.CalculationID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Operation: p.Operation,
		Input:     p.Input,
		Status:    domain.CalculationStatus(p.Status),
		Result:    p.Result,
		ErrorCode: p.ErrorCode.String,
		LastError: p.LastError.String,
		Attempts:  p.Attempts,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}
}

func (p *PgCalculation) FromDomain(c domain.Calculation) {
	input := c.Input
	if len(input) == 0 {
		input = json.RawMessage("{}")
	}

	*p = PgCalculation{
		ID:        uuid.UUID(c.ID),
		UserID:    uuid.UUID(c.UserID),
		Operation: c.Operation,
		Input:     input,
		Status:    string(c.Status),
		Result:    c.Result,
		ErrorCode: sql.NullString{String: c.ErrorCode, Valid: c.ErrorCode != ""},
		LastError: sql.NullString{String: c.LastError, Valid: c.LastError != ""},
		Attempts:  c.Attempts,
		CreatedAt: c.CreatedAt,
		UpdatedAt: sql.NullTime{Time: c.UpdatedAt, Valid: !c.UpdatedAt.IsZero()},
		DeletedAt: sql.NullTime{Time: c.DeletedAt, Valid: !c.DeletedAt.IsZero()},
	}
}

func domainCalculationsToPg(calculations []domain.Calculation) []PgCalculation {
	out := make([]PgCalculation, len(calculations))
	for i := range out {
		out[i].FromDomain(calculations[i])
	}

	return out
}

func pgCalculationsToDomain(rows []PgCalculation) []domain.Calculation {
	out := make([]domain.Calculation, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
