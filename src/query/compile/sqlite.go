package compile

import "strings"

// SQLiteDialect implements Dialect for SQLite.
type SQLiteDialect struct{}

func (d *SQLiteDialect) Name() string { return "sqlite" }

func (d *SQLiteDialect) Placeholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) WriteMatch(b *strings.Builder, column, placeholder string) {
	// SQLite LIKE is only case-insensitive for ASCII; LOWER() on both sides
	// keeps behavior consistent with the other dialects.
	writeMatchWithLower(b, column, placeholder)
}
