package go124

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// Set is a generic type alias, legal since Go 1.24. Unlike a defined type,
// Set[string] and map[string]struct{} are interchangeable without
// conversion.
type Set[T comparable] = map[T]struct{}

// StringSet aliases a full instantiation.
type StringSet = Set[string]

// NewSet builds a Set from the given values.
//
//	NewSet("a", "b", "a") => set of 2
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Union merges two sets into a new one.
func Union[T comparable](a, b Set[T]) Set[T] {
	out := maps.Clone(a)
	if out == nil {
		out = make(Set[T])
	}
	for v := range b {
		out[v] = struct{}{}
	}
	return out
}

// Elements returns the sorted members of a set of ordered values.
func Elements(s StringSet) []string {
	return slices.Sorted(maps.Keys(s))
}

// DemoGenericAliases narrates generic type aliases: naming a shape without
// creating a new type, so plain map values flow in and out freely.
func DemoGenericAliases(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.24: Generic Type Aliases ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. Set[T] = map[T]struct{} is an alias, not a new type:")
	s := NewSet("a", "b", "a")
	fmt.Fprintf(w, "   -> NewSet(\"a\", \"b\", \"a\") has %d members\n", len(s))

	var raw map[string]struct{} = s // no conversion needed
	fmt.Fprintf(w, "   -> assigns straight to map[string]struct{}: %d members\n", len(raw))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Aliasing a full instantiation (StringSet = Set[string]):")
	var ss StringSet = NewSet("go", "gopher")
	fmt.Fprintf(w, "   -> Elements(ss): %v\n", Elements(ss))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. Generic helpers work across the alias:")
	u := Union(NewSet(1, 2), NewSet(2, 3))
	fmt.Fprintf(w, "   -> Union({1 2}, {2 3}) has %d members\n", len(u))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
