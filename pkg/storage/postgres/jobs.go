package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob inserts a River job through an insert-only client. Inside a
// transaction the job is inserted with InsertTx, so it only becomes visible
// to workers when the calculation row it refers to is committed as well.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var res *rivertype.JobInsertResult

	switch db := p.DB.(type) {
	case *sql.Tx:
		client, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river queue client: %w", err)
		}
		if res, err = client.InsertTx(ctx, db, args, opts); err != nil {
			return false, fmt.Errorf("could not insert job: %w", err)
		}
	case *sql.DB:
		client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river queue client: %w", err)
		}
		if res, err = client.Insert(ctx, args, opts); err != nil {
			return false, fmt.Errorf("could not insert job: %w", err)
		}
	default:
		return false, fmt.Errorf("unsupported db handle %T", p.DB)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
