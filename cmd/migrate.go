package main

import (
	"context"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	root "toolbox"
	"toolbox/internal/config"
	"toolbox/pkg/logger"
)

// migrationsFS is the embedded migrations directory rooted at its SQL files.
func migrationsFS(ctx context.Context) fs.FS {
	fsys, err := fs.Sub(root.Migrations, "migrations")
	if err != nil {
		logger.Fatal(ctx, "could not open embedded migrations", zap.Error(err))
	}

	return fsys
}

// migrateCommand constructs the 'migrate' subcommand that brings the
// calculations schema and the job queue tables to their latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if status {
				states, err := strg.MigrationStatus(ctx, migrationsFS(ctx))
				if err != nil {
					logger.Fatal(ctx, "could not read migration status", zap.Error(err))
				}
				for _, s := range states {
					logger.Info(ctx, "migration",
						zap.Int64("version", s.Version), zap.String("path", s.Path), zap.Bool("applied", s.Applied))
				}

				return
			}

			report, err := strg.Migrate(ctx, migrationsFS(ctx))
			if err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			logger.Info(ctx, "database migrated",
				zap.Int64s("applied", report.Applied),
				zap.Int64("schemaVersion", report.SchemaVersion),
				zap.Ints("queueVersions", report.QueueVersions))
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "list schema migrations and whether they are applied")

	return cmd
}
