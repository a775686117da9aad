package db

import (
	"context"
	"fmt"
	"log/slog"

	"pet-adoption/migrations"
)

// Migrate applies the embedded schema files in order. Every statement is
// written to be re-runnable.
func Migrate(ctx context.Context, dbtx DBTX) error {
	for _, name := range migrations.Files {
		sql, err := migrations.FS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := dbtx.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
		slog.Debug("applied migration", "file", name)
	}
	return nil
}
