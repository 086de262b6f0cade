// Package store opens and holds the relational database connection.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/sumble/jobsearch/dburl"
	"github.com/sumble/jobsearch/src/query/compile"
)

// Querier is the interface for executing queries.
// Both *sql.DB and *sql.Tx implement this interface.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time checks that *sql.DB and *sql.Tx implement Querier
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// Pool sizing mirrors the service's historical asyncpg pool (min 10 / max 20).
const (
	maxOpenConns    = 20
	maxIdleConns    = 10
	connMaxIdleTime = 5 * time.Minute
)

// Store is an open database handle plus the compile dialect matching it.
type Store struct {
	DB      *sql.DB
	Dialect compile.Dialect
}

// driverNames maps a dburl dialect to the registered database/sql driver.
var driverNames = map[string]string{
	dburl.DialectPostgres: "pgx",
	dburl.DialectMySQL:    "mysql",
	dburl.DialectSQLite:   "sqlite",
}

// compileDialects maps a dburl dialect to its SQL compilation dialect.
var compileDialects = map[string]compile.Dialect{
	dburl.DialectPostgres: compile.Postgres,
	dburl.DialectMySQL:    compile.MySQL,
	dburl.DialectSQLite:   compile.SQLite,
}

// Open connects to the database named by URL, infers the dialect from the
// scheme, applies bounded pool settings, and verifies connectivity.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	dialect, err := dburl.Infer(databaseURL)
	if err != nil {
		return nil, err
	}

	dsn, err := dburl.DataSource(databaseURL, dialect)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverNames[dialect], dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", dialect, err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", dialect, err)
	}

	return &Store{DB: db, Dialect: compileDialects[dialect]}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.DB.Close()
}

// Ping verifies the database is reachable. Used by the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}
