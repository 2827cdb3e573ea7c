package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"

	"toolbox/pkg/storage"
)

// MigrationReport describes what Migrate changed.
type MigrationReport struct {
	// Applied lists the schema versions applied by this run, in order.
	Applied []int64
	// SchemaVersion is the schema version after the run.
	SchemaVersion int64
	// QueueVersions lists the job queue migrations applied by this run.
	QueueVersions []int
}

// MigrationState is the state of a single schema migration.
type MigrationState struct {
	Version int64
	Path    string
	Applied bool
}

func (p *PgSQL) sqlDB() (*sql.DB, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	return db, nil
}

func (p *PgSQL) provider(fsys fs.FS) (*goose.Provider, error) {
	db, err := p.sqlDB()
	if err != nil {
		return nil, err
	}
	provider, err := goose.NewProvider(database.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("could not create goose provider: %w", err)
	}

	return provider, nil
}

// Migrate applies the SQL migrations found at the root of fsys and then
// brings the job queue tables to their latest version.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS) (*MigrationReport, error) {
	provider, err := p.provider(fsys)
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not apply schema migrations: %w", err)
	}
	report := &MigrationReport{}
	for _, res := range results {
		report.Applied = append(report.Applied, res.Source.Version)
	}
	if report.SchemaVersion, err = provider.GetDBVersion(ctx); err != nil {
		return nil, fmt.Errorf("could not read schema version: %w", err)
	}

	db, _ := p.sqlDB()
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create queue migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return nil, fmt.Errorf("could not migrate queue tables: %w", err)
	}
	for _, v := range res.Versions {
		report.QueueVersions = append(report.QueueVersions, v.Version)
	}

	return report, nil
}

// MigrationStatus lists every schema migration in fsys and whether it has
// been applied.
func (p *PgSQL) MigrationStatus(ctx context.Context, fsys fs.FS) ([]MigrationState, error) {
	provider, err := p.provider(fsys)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not read migration status: %w", err)
	}
	states := make([]MigrationState, 0, len(statuses))
	for _, s := range statuses {
		states = append(states, MigrationState{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}

	return states, nil
}
