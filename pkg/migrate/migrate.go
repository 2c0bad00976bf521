package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// DefaultDir directorio por defecto de las migraciones SQL.
const DefaultDir = "internal/infrastructure/postgres/migrations"

// Run ejecuta un comando goose estándar (up, down, status, ...) contra la DB.
func Run(ctx context.Context, db *sql.DB, dir string, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db es requerida")
	}
	if dir == "" {
		return fmt.Errorf("dir es requerido")
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
