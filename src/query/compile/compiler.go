// Package compile lowers validated query trees into parameterized SQL.
//
// The compiler never interpolates user-supplied values into statement text:
// only positional placeholders appear there, and raw values travel solely
// through the argument list. Placeholder numbering threads left-to-right
// through the whole tree so the flat argument list lines up positionally with
// every placeholder, for trees of arbitrary shape and depth.
package compile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sumble/jobsearch/src/query"
)

// ErrCompilerFault marks an internal invariant violation: a node variant the
// compiler does not recognize. Unreachable for trees that passed validation.
var ErrCompilerFault = errors.New("compiler fault")

// Clause holds a compiled WHERE expression and its bound arguments in
// placeholder order. The highest placeholder index referenced in Text equals
// len(Args).
type Clause struct {
	Text string
	Args []any
}

// Compiler compiles query trees to SQL boolean expressions for one dialect.
// A Compiler carries per-compilation state; create one per call and do not
// share across goroutines. CompileClause resets the state, so reuse within a
// goroutine is fine.
type Compiler struct {
	dialect Dialect
	state   *compilerState
}

// NewCompiler creates a new compiler for the given dialect.
func NewCompiler(dialect Dialect) *Compiler {
	return &Compiler{
		dialect: dialect,
		state:   &compilerState{},
	}
}

// CompileClause lowers the tree into a SQL boolean expression with positional
// placeholders starting at 1 and the matching argument list.
func (c *Compiler) CompileClause(n query.Node) (Clause, error) {
	// Reset state once at the top level
	c.state.paramCount = 0
	c.state.args = nil

	var b strings.Builder
	if err := c.compileNode(n, &b); err != nil {
		return Clause{}, err
	}

	return Clause{Text: b.String(), Args: c.state.args}, nil
}

// compileNode does NOT reset state, so nested calls share the parent's
// placeholder numbering.
func (c *Compiler) compileNode(n query.Node, b *strings.Builder) error {
	switch e := n.(type) {
	case query.Condition:
		column, err := matchColumn(e.Field)
		if err != nil {
			return err
		}
		c.state.paramCount++
		c.state.args = append(c.state.args, "%"+e.Value+"%")
		c.dialect.WriteMatch(b, column, c.dialect.Placeholder(c.state.paramCount))
		return nil

	case query.Combinator:
		if e.Op == query.OpNot {
			// Negation binds no parameter of its own.
			b.WriteString("NOT (")
			if err := c.compileNode(e.Children[0], b); err != nil {
				return err
			}
			b.WriteString(")")
			return nil
		}

		// AND/OR: compile children left to right. Each child picks up the
		// placeholder count where the previous one left off, and each child's
		// text is parenthesized to preserve precedence at any nesting depth.
		for i, child := range e.Children {
			if i > 0 {
				fmt.Fprintf(b, " %s ", e.Op)
			}
			b.WriteString("(")
			if err := c.compileNode(child, b); err != nil {
				return err
			}
			b.WriteString(")")
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown node type %T", ErrCompilerFault, n)
	}
}

// matchColumn maps a field to the column its conditions match against.
// Aliases line up with the join fragments in assemble.go.
func matchColumn(f query.Field) (string, error) {
	switch f {
	case query.FieldTechnology:
		return "t.name", nil
	case query.FieldJobFunction:
		return "jf.name", nil
	case query.FieldOrganization:
		return "o.name", nil
	default:
		return "", fmt.Errorf("%w: no column mapping for field %q", ErrCompilerFault, f)
	}
}
