package compile

import "strings"

// Dialect defines the SQL dialect-specific behavior for compilation.
// Each dialect (Postgres, MySQL, SQLite) customizes parameter placeholders
// and the case-insensitive substring match predicate.
type Dialect interface {
	// Name returns the dialect name for debugging/logging.
	Name() string

	// Placeholder returns the parameter placeholder for the given index (1-based).
	// Postgres uses $1, $2, etc. MySQL and SQLite use ?.
	Placeholder(index int) string

	// WriteMatch writes a case-insensitive substring match of column against
	// the given placeholder. Postgres has native ILIKE, others need
	// LOWER() LIKE LOWER().
	WriteMatch(b *strings.Builder, column, placeholder string)
}

// Dialect singletons. Postgres is the production dialect.
var (
	Postgres Dialect = &PostgresDialect{}
	MySQL    Dialect = &MySQLDialect{}
	SQLite   Dialect = &SQLiteDialect{}
)

// compilerState holds the mutable state during one compilation: the running
// placeholder count and the flat argument list aligned with it.
type compilerState struct {
	paramCount int
	args       []any
}

// writeMatchWithLower is the shared helper for dialects without native ILIKE.
func writeMatchWithLower(b *strings.Builder, column, placeholder string) {
	b.WriteString("LOWER(")
	b.WriteString(column)
	b.WriteString(") LIKE LOWER(")
	b.WriteString(placeholder)
	b.WriteString(")")
}
