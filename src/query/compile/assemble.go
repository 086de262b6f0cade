package compile

import (
	"strconv"
	"strings"

	"github.com/sumble/jobsearch/src/query"
)

// Result caps. A limit of zero or below falls back to DefaultLimit; anything
// above MaxLimit is clamped so a single query cannot force an unbounded scan.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// JoinSet records which optional join paths a query needs. Technology and
// job function reach their name columns through junction tables; organization
// joins directly via a foreign key.
type JoinSet struct {
	Organization bool
	Technology   bool
	JobFunction  bool
}

// RequiredJoins walks the tree once and returns the joins its conditions need.
// Any validated tree resolves; combinators contribute only by recursion.
func RequiredJoins(n query.Node) JoinSet {
	var s JoinSet
	for field := range query.Fields(n) {
		switch field {
		case query.FieldOrganization:
			s.Organization = true
		case query.FieldTechnology:
			s.Technology = true
		case query.FieldJobFunction:
			s.JobFunction = true
		}
	}
	return s
}

// Result is a finished statement plus its positional arguments, ready for the
// database client.
type Result struct {
	SQL  string
	Args []any
}

// Build compiles a query tree into one executable SELECT for the dialect.
// The statement selects distinct job post identities, joins only the tables
// the tree's conditions reference, and carries the clamped result cap. Trees
// built in code are validated first; a validation failure wraps
// query.ErrMalformed.
func Build(dialect Dialect, tree query.Node, limit int) (Result, error) {
	if err := query.Validate(tree); err != nil {
		return Result{}, err
	}

	joins := RequiredJoins(tree)

	clause, err := NewCompiler(dialect).CompileClause(tree)
	if err != nil {
		return Result{}, err
	}

	var b strings.Builder

	// DISTINCT is mandatory, not an optimization: the technology and
	// job_function joins are many-to-many, so one post can match several
	// junction rows.
	b.WriteString("SELECT DISTINCT jp.id, jp.datetime_pulled FROM job_posts AS jp")

	if joins.Organization {
		b.WriteString(" INNER JOIN organizations AS o ON jp.organization_id = o.id")
	}
	if joins.Technology {
		b.WriteString(" INNER JOIN job_posts_tech AS jpt ON jp.id = jpt.job_post_id")
		b.WriteString(" INNER JOIN tech AS t ON jpt.tech_id = t.id")
	}
	if joins.JobFunction {
		b.WriteString(" INNER JOIN job_posts_job_functions AS jpjf ON jp.id = jpjf.job_post_id")
		b.WriteString(" INNER JOIN job_functions AS jf ON jpjf.job_function_id = jf.id")
	}

	b.WriteString(" WHERE ")
	b.WriteString(clause.Text)

	// The cap is a server-clamped integer, never caller-supplied text.
	b.WriteString(" LIMIT ")
	b.WriteString(strconv.Itoa(ClampLimit(limit)))

	return Result{SQL: b.String(), Args: clause.Args}, nil
}

// ClampLimit bounds a caller-supplied result cap to [1, MaxLimit], applying
// DefaultLimit when the caller passes zero or a negative value.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
