package query

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// nodeJSON is the wire shape of a query node:
//
//	{"type": "condition", "condition": {"field": "technology", "value": ".net"}}
//	{"type": "operator", "operator": "AND", "children": [...]}
type nodeJSON struct {
	Type      string         `json:"type"`
	Operator  string         `json:"operator,omitempty"`
	Condition *conditionJSON `json:"condition,omitempty"`
	Children  []nodeJSON     `json:"children,omitempty"`
}

type conditionJSON struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Parse decodes a JSON query tree and validates it. On any invariant violation
// it returns an error wrapping ErrMalformed and no tree.
func Parse(data []byte) (Node, error) {
	var raw nodeJSON
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return fromJSON(raw)
}

// Decode reads a JSON query tree from r and validates it.
func Decode(r io.Reader) (Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Parse(data)
}

func fromJSON(raw nodeJSON) (Node, error) {
	switch raw.Type {
	case "condition":
		if raw.Condition == nil {
			return nil, fmt.Errorf("%w: condition node missing condition body", ErrMalformed)
		}
		field, err := ParseField(raw.Condition.Field)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(raw.Condition.Value) == "" {
			return nil, fmt.Errorf("%w: condition value is empty", ErrMalformed)
		}
		return Condition{Field: field, Value: raw.Condition.Value}, nil

	case "operator":
		op, err := ParseOp(raw.Operator)
		if err != nil {
			return nil, err
		}
		if op == OpNot && len(raw.Children) != 1 {
			return nil, fmt.Errorf("%w: NOT requires exactly one child, got %d", ErrMalformed, len(raw.Children))
		}
		if len(raw.Children) == 0 {
			return nil, fmt.Errorf("%w: %s requires at least one child", ErrMalformed, op)
		}
		children := make([]Node, 0, len(raw.Children))
		for _, rawChild := range raw.Children {
			child, err := fromJSON(rawChild)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return Combinator{Op: op, Children: children}, nil

	case "":
		return nil, fmt.Errorf("%w: node missing type", ErrMalformed)

	default:
		return nil, fmt.Errorf("%w: unknown node type %q", ErrMalformed, raw.Type)
	}
}
