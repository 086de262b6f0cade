package proptest

// OneOf returns a random element from the provided values.
// Panics if values is empty.
func OneOf[T any](g *Generator, values ...T) T {
	if len(values) == 0 {
		panic("proptest: OneOf called with no values")
	}
	return values[g.Intn(len(values))]
}

// OneOfFunc calls a random generator function from the provided functions.
// Panics if fns is empty.
func OneOfFunc[T any](g *Generator, fns ...func(*Generator) T) T {
	if len(fns) == 0 {
		panic("proptest: OneOfFunc called with no functions")
	}
	return fns[g.Intn(len(fns))](g)
}

// SliceN returns a slice of random length in [minLen, maxLen] whose elements
// come from gen.
func SliceN[T any](g *Generator, minLen, maxLen int, gen func(*Generator) T) []T {
	n := g.IntRange(minLen, maxLen)
	out := make([]T, n)
	for i := range out {
		out[i] = gen(g)
	}
	return out
}
