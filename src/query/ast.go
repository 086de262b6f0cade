// Package query defines the boolean expression tree for job-posting searches.
//
// A query is either a Condition (one field tested against one value) or a
// Combinator (AND/OR/NOT over child queries). Trees are built once per request,
// validated up front, and never mutated after construction.
package query

import (
	"errors"
	"fmt"
	"strings"
)

// Field identifies a searchable attribute of a job posting.
type Field string

const (
	FieldTechnology   Field = "technology"
	FieldJobFunction  Field = "job_function"
	FieldOrganization Field = "organization"
)

// ParseField converts a wire-format field name to a Field.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldTechnology, FieldJobFunction, FieldOrganization:
		return Field(s), nil
	default:
		return "", fmt.Errorf("%w: unknown field %q", ErrMalformed, s)
	}
}

// Op is a boolean combinator operator.
type Op string

const (
	OpAnd Op = "AND"
	OpOr  Op = "OR"
	OpNot Op = "NOT"
)

// ParseOp converts a wire-format operator name to an Op.
func ParseOp(s string) (Op, error) {
	switch Op(s) {
	case OpAnd, OpOr, OpNot:
		return Op(s), nil
	default:
		return "", fmt.Errorf("%w: unknown operator %q", ErrMalformed, s)
	}
}

// ErrMalformed marks user input errors: unknown fields or operators, empty
// values, and combinators with the wrong number of children. Errors returned
// by Parse and Validate wrap it.
var ErrMalformed = errors.New("malformed query")

// Node is a node in the expression tree: either a Condition or a Combinator.
type Node interface {
	node()
}

// Condition is a leaf testing one field against one value.
// The value is matched case-insensitively as a substring.
type Condition struct {
	Field Field
	Value string
}

// Combinator applies a boolean operator to one or more child nodes.
// NOT takes exactly one child; AND and OR take one or more.
type Combinator struct {
	Op       Op
	Children []Node
}

func (Condition) node()  {}
func (Combinator) node() {}

// Validate checks the tree invariants: known fields and operators, non-empty
// values after trimming, NOT with exactly one child, AND/OR with at least one.
// Trees produced by Parse always validate; this exists for trees built in code.
func Validate(n Node) error {
	switch e := n.(type) {
	case Condition:
		if _, err := ParseField(string(e.Field)); err != nil {
			return err
		}
		if strings.TrimSpace(e.Value) == "" {
			return fmt.Errorf("%w: condition value is empty", ErrMalformed)
		}
		return nil

	case Combinator:
		if _, err := ParseOp(string(e.Op)); err != nil {
			return err
		}
		if e.Op == OpNot && len(e.Children) != 1 {
			return fmt.Errorf("%w: NOT requires exactly one child, got %d", ErrMalformed, len(e.Children))
		}
		if len(e.Children) == 0 {
			return fmt.Errorf("%w: %s requires at least one child", ErrMalformed, e.Op)
		}
		for _, child := range e.Children {
			if child == nil {
				return fmt.Errorf("%w: nil child node", ErrMalformed)
			}
			if err := Validate(child); err != nil {
				return err
			}
		}
		return nil

	case nil:
		return fmt.Errorf("%w: empty query", ErrMalformed)

	default:
		return fmt.Errorf("%w: unknown node type %T", ErrMalformed, n)
	}
}
