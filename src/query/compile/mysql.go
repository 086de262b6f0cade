package compile

import "strings"

// MySQLDialect implements Dialect for MySQL.
type MySQLDialect struct{}

func (d *MySQLDialect) Name() string { return "mysql" }

func (d *MySQLDialect) Placeholder(index int) string {
	return "?"
}

func (d *MySQLDialect) WriteMatch(b *strings.Builder, column, placeholder string) {
	// MySQL doesn't have native ILIKE, use LOWER() LIKE LOWER()
	writeMatchWithLower(b, column, placeholder)
}
