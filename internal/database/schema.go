package database

import (
	"context"
	"database/sql"
	_ "embed"
	"strings"
	"time"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the application tables when they do not exist yet.
// Statements in schema.sql are separated by semicolons and executed one by
// one, since the MySQL driver rejects multi-statement queries by default.
func EnsureSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
