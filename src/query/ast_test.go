package query

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tree    Node
		wantErr bool
	}{
		{
			name: "single condition",
			tree: Condition{Field: FieldTechnology, Value: "go"},
		},
		{
			name: "nested combinators",
			tree: Combinator{Op: OpAnd, Children: []Node{
				Combinator{Op: OpNot, Children: []Node{
					Condition{Field: FieldOrganization, Value: "apple"},
				}},
				Combinator{Op: OpOr, Children: []Node{
					Condition{Field: FieldJobFunction, Value: "statistician"},
					Condition{Field: FieldTechnology, Value: "psql"},
				}},
			}},
		},
		{
			name: "single-child AND is allowed",
			tree: Combinator{Op: OpAnd, Children: []Node{
				Condition{Field: FieldTechnology, Value: "go"},
			}},
		},
		{
			name:    "unknown field",
			tree:    Condition{Field: "salary", Value: "100"},
			wantErr: true,
		},
		{
			name:    "empty value",
			tree:    Condition{Field: FieldTechnology, Value: ""},
			wantErr: true,
		},
		{
			name:    "whitespace-only value",
			tree:    Condition{Field: FieldTechnology, Value: "   "},
			wantErr: true,
		},
		{
			name:    "unknown operator",
			tree:    Combinator{Op: "XOR", Children: []Node{Condition{Field: FieldTechnology, Value: "go"}}},
			wantErr: true,
		},
		{
			name:    "zero-child AND",
			tree:    Combinator{Op: OpAnd},
			wantErr: true,
		},
		{
			name:    "zero-child OR",
			tree:    Combinator{Op: OpOr},
			wantErr: true,
		},
		{
			name: "NOT with two children",
			tree: Combinator{Op: OpNot, Children: []Node{
				Condition{Field: FieldTechnology, Value: "go"},
				Condition{Field: FieldTechnology, Value: "rust"},
			}},
			wantErr: true,
		},
		{
			name:    "NOT with zero children",
			tree:    Combinator{Op: OpNot},
			wantErr: true,
		},
		{
			name:    "nil tree",
			tree:    nil,
			wantErr: true,
		},
		{
			name: "invalid child deep in the tree",
			tree: Combinator{Op: OpAnd, Children: []Node{
				Condition{Field: FieldTechnology, Value: "go"},
				Combinator{Op: OpOr, Children: []Node{
					Condition{Field: FieldOrganization, Value: ""},
				}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.tree)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("error should wrap ErrMalformed, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
		})
	}
}

func TestParseField(t *testing.T) {
	for _, valid := range []string{"technology", "job_function", "organization"} {
		if _, err := ParseField(valid); err != nil {
			t.Errorf("ParseField(%q) failed: %v", valid, err)
		}
	}

	if _, err := ParseField("TECHNOLOGY"); err == nil {
		t.Error("field names are case-sensitive on the wire; expected error")
	}
	if _, err := ParseField(""); err == nil {
		t.Error("expected error for empty field")
	}
}

func TestParseOp(t *testing.T) {
	for _, valid := range []string{"AND", "OR", "NOT"} {
		if _, err := ParseOp(valid); err != nil {
			t.Errorf("ParseOp(%q) failed: %v", valid, err)
		}
	}

	if _, err := ParseOp("and"); err == nil {
		t.Error("operators are upper-case on the wire; expected error")
	}
}
