package compile

import (
	"fmt"
	"strings"
)

// PostgresDialect implements Dialect for PostgreSQL.
type PostgresDialect struct{}

func (d *PostgresDialect) Name() string { return "postgres" }

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index)
}

func (d *PostgresDialect) WriteMatch(b *strings.Builder, column, placeholder string) {
	// Postgres has native ILIKE
	b.WriteString(column)
	b.WriteString(" ILIKE ")
	b.WriteString(placeholder)
}
