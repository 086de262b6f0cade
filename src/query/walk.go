package query

// Visitor is called for each node during a walk.
// Return false to stop walking the current branch.
type Visitor func(n Node) bool

// Walk traverses the tree depth-first, calling the visitor for each node.
// If the visitor returns false for a Combinator, its children are not visited.
func Walk(n Node, visit Visitor) {
	if n == nil {
		return
	}

	if !visit(n) {
		return
	}

	if c, ok := n.(Combinator); ok {
		for _, child := range c.Children {
			Walk(child, visit)
		}
	}
}

// Fields returns the set of fields referenced by any Condition in the tree.
func Fields(n Node) map[Field]bool {
	fields := make(map[Field]bool)
	Walk(n, func(n Node) bool {
		if c, ok := n.(Condition); ok {
			fields[c.Field] = true
		}
		return true
	})
	return fields
}
