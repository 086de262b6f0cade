package search

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/sumble/jobsearch/src/query"
	"github.com/sumble/jobsearch/src/query/compile"
)

// failingQuerier returns a fixed error from every query method.
type failingQuerier struct {
	err error
}

func (q *failingQuerier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, q.err
}

func (q *failingQuerier) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, q.err
}

func (q *failingQuerier) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

// recordingQuerier captures the statement it was asked to run, then fails.
type recordingQuerier struct {
	failingQuerier
	sql  string
	args []any
}

func (q *recordingQuerier) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	q.sql = query
	q.args = args
	return nil, q.err
}

func TestSearchWrapsDatabaseErrors(t *testing.T) {
	dbErr := errors.New("connection refused")
	s := New(&failingQuerier{err: dbErr}, compile.Postgres)

	_, err := s.Search(context.Background(), query.Condition{
		Field: query.FieldTechnology,
		Value: "go",
	}, 10)

	if !errors.Is(err, ErrQueryExecution) {
		t.Fatalf("expected ErrQueryExecution, got %v", err)
	}
}

func TestSearchRejectsMalformedTreeBeforeExecution(t *testing.T) {
	q := &recordingQuerier{failingQuerier: failingQuerier{err: errors.New("should not run")}}
	s := New(q, compile.Postgres)

	_, err := s.Search(context.Background(), query.Combinator{Op: query.OpAnd}, 10)
	if !errors.Is(err, query.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if q.sql != "" {
		t.Errorf("malformed tree must never reach the database, ran: %s", q.sql)
	}
}

func TestSearchSendsClampedLimitAndBoundArgs(t *testing.T) {
	q := &recordingQuerier{failingQuerier: failingQuerier{err: errors.New("stop here")}}
	s := New(q, compile.Postgres)

	tree := query.Combinator{Op: query.OpAnd, Children: []query.Node{
		query.Condition{Field: query.FieldOrganization, Value: "apple"},
		query.Condition{Field: query.FieldTechnology, Value: ".net"},
	}}

	s.Search(context.Background(), tree, 9999)

	if q.sql == "" {
		t.Fatal("expected a statement to be issued")
	}
	if want := "LIMIT 100"; q.sql[len(q.sql)-len(want):] != want {
		t.Errorf("limit should be clamped in the statement: %s", q.sql)
	}
	if len(q.args) != 2 || q.args[0] != "%apple%" || q.args[1] != "%.net%" {
		t.Errorf("unexpected args: %v", q.args)
	}
}
