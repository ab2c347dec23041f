package postgres

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies all pending schema migrations.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgres.Migrate"

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: set dialect: %w", op, err)
	}

	if err := goose.UpContext(ctx, s.DB, "migrations"); err != nil {
		return fmt.Errorf("%s: apply migrations: %w", op, err)
	}

	return nil
}

// Version reports the schema version currently applied.
func (s *Storage) Version(ctx context.Context) (int64, error) {
	const op = "storage.postgres.Version"

	version, err := goose.GetDBVersionContext(ctx, s.DB)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return version, nil
}
