package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Migrate creates the members, events and rsvps tables if they do not exist.
// It is safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	var name string
	switch dialect {
	case Postgres:
		name = "schema/postgres.sql"
	case SQLite:
		name = "schema/sqlite.sql"
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		return err
	}
	for _, stmt := range splitStatements(string(raw)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func splitStatements(script string) []string {
	var stmts []string
	for _, s := range strings.Split(script, ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
