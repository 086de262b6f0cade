// Package search executes compiled boolean queries against the job-posting
// store and shapes the matching rows.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sumble/jobsearch/src/query"
	"github.com/sumble/jobsearch/src/query/compile"
	"github.com/sumble/jobsearch/store"
)

// ErrQueryExecution marks database client failures: connectivity, timeouts,
// statement errors. The searcher does not retry; transient faults are the
// execution layer's concern and a structurally bad statement will not succeed
// on a second attempt.
var ErrQueryExecution = errors.New("query execution failed")

// JobPost is one matched posting. Each post appears at most once per search.
type JobPost struct {
	ID             int64     `json:"id"`
	DateTimePulled time.Time `json:"datetime_pulled"`
}

// Searcher compiles query trees and runs them. It holds no per-request state
// and is safe for concurrent use.
type Searcher struct {
	db      store.Querier
	dialect compile.Dialect
}

// New creates a Searcher over the given connection and dialect.
func New(db store.Querier, dialect compile.Dialect) *Searcher {
	return &Searcher{db: db, dialect: dialect}
}

// Search compiles the tree and returns the distinct matching posts, capped at
// the clamped limit. Either a complete result set or an error; never partial
// results.
func (s *Searcher) Search(ctx context.Context, tree query.Node, limit int) ([]JobPost, error) {
	result, err := compile.Build(s.dialect, tree, limit)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, result.SQL, result.Args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	defer rows.Close()

	var posts []JobPost
	for rows.Next() {
		var p JobPost
		if err := rows.Scan(&p.ID, &p.DateTimePulled); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	return posts, nil
}
